package dotenv

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Entry is one parsed NAME=VALUE pair.
type Entry struct {
	Name  string `yaml:"name" toml:"name"`
	Value string `yaml:"value" toml:"value"`
}

// SkippedLine is a line that could not be parsed as an assignment.
type SkippedLine struct {
	Number int
	Text   string
	Err    error
}

// Result holds the entries of one file in file order, duplicates included.
type Result struct {
	Entries []Entry
	Skipped []SkippedLine
}

// Map collapses the entries into a map, later duplicates winning.
func (r Result) Map() map[string]string {
	m := make(map[string]string, len(r.Entries))
	for _, e := range r.Entries {
		m[e.Name] = e.Value
	}
	return m
}

// ParseFile opens and parses path. The file is closed on every path out.
func ParseFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, &UnreadableError{Path: path, Err: err}
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return Result{}, &UnreadableError{Path: path, Err: err}
	}
	return res, nil
}

// maxLineLength bounds a single line; longer lines are skipped.
const maxLineLength = 1024 * 1024

// Parse reads assignments line by line. Values are taken literally: $NAME and
// ${NAME} are never expanded. Only a read error from r is returned.
func Parse(r io.Reader) (Result, error) {
	var res Result

	br := bufio.NewReader(r)
	lineNum := 0
	for {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, err
		}
		lineNum++

		if tooLong {
			res.Skipped = append(res.Skipped, SkippedLine{Number: lineNum, Text: line, Err: errLineTooLong})
			continue
		}
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name, value, err := parseLine(line)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedLine{Number: lineNum, Text: line, Err: err})
			continue
		}
		res.Entries = append(res.Entries, Entry{Name: name, Value: value})
	}
	return res, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineLength is consumed and reported as tooLong, with only its head kept.
func readLine(br *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && (len(buf) > 0 || tooLong) {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		switch {
		case tooLong:
		case len(buf)+len(chunk) > maxLineLength:
			tooLong = true
			buf = buf[:min(len(buf), 80)]
		default:
			buf = append(buf, chunk...)
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// parseLine parses one line on its own with godotenv. Every '$' is swapped for
// a stand-in rune first so godotenv has nothing to expand, then restored.
func parseLine(line string) (string, string, error) {
	standIn, ok := dollarStandIn(line)
	if !ok {
		return "", "", errUnsupportedCharacters
	}
	vars, err := godotenv.Unmarshal(strings.ReplaceAll(line, "$", standIn))
	if err != nil {
		return "", "", err
	}
	if len(vars) > 1 {
		return "", "", errMultipleAssignments
	}
	for name, value := range vars {
		if name == "" {
			break
		}
		if name == "." || name == ".." {
			return "", "", errInvalidName
		}
		return name, strings.ReplaceAll(value, standIn, "$"), nil
	}
	return "", "", errNoAssignment
}

// dollarStandIn picks a private-use rune that does not occur in line.
func dollarStandIn(line string) (string, bool) {
	for r := rune(0xE000); r <= 0xF8FF; r++ {
		if !strings.ContainsRune(line, r) {
			return string(r), true
		}
	}
	return "", false
}
