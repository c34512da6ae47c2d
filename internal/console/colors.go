package console

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeUnderline = "\033[4m"

	// Foreground
	CodeBlack   = "\033[30m"
	CodeRed     = "\033[31m"
	CodeGreen   = "\033[32m"
	CodeYellow  = "\033[33m"
	CodeBlue    = "\033[34m"
	CodeMagenta = "\033[35m"
	CodeCyan    = "\033[36m"
	CodeWhite   = "\033[37m"

	// Background
	CodeRedBg = "\033[41m"
)

// semanticMap maps lower-cased semantic tag names to their ANSI sequence.
var semanticMap = map[string]string{
	// Log levels
	"timestamp": CodeReset,
	"trace":     CodeBlue,
	"debug":     CodeBlue,
	"info":      CodeBlue,
	"notice":    CodeGreen,
	"warn":      CodeYellow,
	"error":     CodeRed,
	"fatal":     CodeRedBg + CodeWhite,

	// Log content
	"fatalfooter":            CodeReset,
	"applicationname":        CodeCyan + CodeBold,
	"version":                CodeCyan,
	"file":                   CodeCyan + CodeBold,
	"folder":                 CodeCyan + CodeBold,
	"layer":                  CodeCyan,
	"capability":             CodeCyan,
	"var":                    CodeMagenta,
	"value":                  CodeGreen,
	"scope":                  CodeYellow,
	"phase":                  CodeGreen + CodeBold,
	"usercommand":            CodeYellow + CodeBold,
	"usercommanderror":       CodeRed + CodeUnderline,
	"usercommanderrormarker": CodeRed,
	"skipped":                CodeYellow,
	"unittestpass":           CodeGreen,
	"unittestfail":           CodeRed,
}

// directMap maps {{|code|}} values to ANSI sequences.
var directMap = map[string]string{
	"-":       CodeReset,
	"reset":   CodeReset,
	"b":       CodeBold,
	"d":       CodeDim,
	"u":       CodeUnderline,
	"black":   CodeBlack,
	"red":     CodeRed,
	"green":   CodeGreen,
	"yellow":  CodeYellow,
	"blue":    CodeBlue,
	"magenta": CodeMagenta,
	"cyan":    CodeCyan,
	"white":   CodeWhite,
}
