// Package dotenv locates and parses the application's .env file.
//
// The file name is ".env" or ".env.<suffix>", where the suffix comes from the
// buildpack metadata unless an override is set (see Filename and ResolveSuffix).
//
// Parsing rules:
//
//   - Blank lines and lines starting with # are ignored
//   - Each other line is one NAME=VALUE assignment, parsed with godotenv
//     conventions (quotes stripped, escapes unescaped inside double quotes,
//     optional "export " prefix, trailing " # comment" on unquoted values)
//   - Values are literal: $NAME and ${NAME} are kept as written
//   - Names must be usable as file names, so "." and ".." are rejected
//   - Malformed lines are skipped and reported in Result.Skipped; they never
//     fail the parse
//
// Only failing to open or read the file is an error.
package dotenv
