package console

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct style codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)

	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// Parse renders semantic {{_Tag_}} and direct {{|code|}} tags for the current output.
// Tags become ANSI sequences when colors are enabled and are stripped otherwise.
func Parse(text string) string {
	if !ColorEnabled() {
		return Strip(text)
	}
	return ToANSI(text)
}

// ToANSI converts all tags to ANSI escape sequences regardless of TTY state.
// Unknown tags are dropped.
func ToANSI(text string) string {
	text = semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := strings.ToLower(match[3 : len(match)-3]) // Strip "{{_" and "_}}"
		return semanticMap[content]
	})
	text = directRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := strings.ToLower(match[3 : len(match)-3]) // Strip "{{|" and "|}}"
		var codes strings.Builder
		for _, part := range strings.Split(content, ":") {
			codes.WriteString(directMap[part])
		}
		return codes.String()
	})
	return text
}

// Strip removes all semantic and direct tags from text, as well as ANSI escape sequences
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return StripANSI(text)
}

// StripANSI removes ANSI color sequences.
func StripANSI(text string) string {
	return ansiRegex.ReplaceAllString(text, "")
}

// Sprintf formats according to a format specifier and renders tags.
func Sprintf(format string, a ...any) string {
	return Parse(fmt.Sprintf(format, a...))
}

// Println prints a line with tags rendered.
func Println(a ...any) {
	fmt.Println(Parse(fmt.Sprint(a...)))
}
