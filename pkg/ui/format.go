package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks term or text from the output stream
	FormatAuto Format = iota
	// FormatTerminal is styled output with glamour changelogs
	FormatTerminal
	// FormatText is the plain layout, safe for pipes and logs
	FormatText
	// FormatJSON writes results to stdout and errors to stderr as JSON
	FormatJSON
)

// formatNames lists canonical names first, then accepted aliases
var formatNames = []struct {
	name   string
	format Format
	alias  bool
}{
	{"auto", FormatAuto, false},
	{"term", FormatTerminal, false},
	{"text", FormatText, false},
	{"json", FormatJSON, false},
	{"terminal", FormatTerminal, true},
	{"plain", FormatText, true},
}

// Formats returns the canonical format names accepted by --format
func Formats() []string {
	var names []string
	for _, n := range formatNames {
		if !n.alias {
			names = append(names, n.name)
		}
	}
	return names
}

func (f Format) String() string {
	for _, n := range formatNames {
		if n.format == f {
			return n.name
		}
	}
	return "unknown"
}

// ParseFormat maps a --format value to a Format. The empty string is auto.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatAuto, nil
	}
	for _, n := range formatNames {
		if n.name == s {
			return n.format, nil
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want one of %s)", s, strings.Join(Formats(), ", ")).
		WithDetail("format", s)
}

// fdWriter is the part of *os.File format detection needs
type fdWriter interface {
	Fd() uintptr
}

// DetectFormat resolves FormatAuto for output. Only a color-capable
// terminal with NO_COLOR unset gets FormatTerminal.
func DetectFormat(output fdWriter) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
