// Package confirmations asks the user to approve destructive operations.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/modkeeper/pkg/errors"
)

// ConsoleDialog prompts on a console
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog reading answers from in
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm asks question and returns the answer. An empty answer or end of
// input selects def.
func (d *ConsoleDialog) Confirm(question string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	if _, err := fmt.Fprintf(d.out, "%s %s: ", question, marker); err != nil {
		return false, err
	}

	line, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to read user input")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
