// Package inifile repairs and edits loosely formatted INI files written by
// other tools. Files are normalized before parsing so that a byte order
// mark, Windows line endings or a missing section header never reach the
// parser.
package inifile

import (
	"regexp"
	"strings"
)

const bom = "\ufeff"

var sectionHeader = regexp.MustCompile(`(?m)^[ \t]*\[[^\[\]\n]+\][ \t]*$`)

// Normalize returns raw as text with every leading byte order mark removed,
// CRLF and lone CR converted to LF, and "[defaultSection]" prepended when no
// line is a section header. Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw []byte, defaultSection string) string {
	text := string(raw)
	for strings.HasPrefix(text, bom) {
		text = strings.TrimPrefix(text, bom)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if !HasSectionHeader(text) {
		text = "[" + defaultSection + "]\n" + text
	}
	return text
}

// HasSectionHeader reports whether any line of text is a section header
func HasSectionHeader(text string) bool {
	return sectionHeader.MatchString(text)
}
