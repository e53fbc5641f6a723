// Package prompt asks the operator for the scan root and depth level.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidInteger is matched by answers that are not integers.
var ErrInvalidInteger = errors.New("input is not an integer")

// Prompter is the interactive surface of a run.
type Prompter interface {
	// ChooseDirectory returns the selected directory, or "" when the
	// operator cancelled.
	ChooseDirectory(ctx context.Context, title string) (string, error)
	// ReadInteger blocks until the operator answers label with a line of text.
	ReadInteger(ctx context.Context, label string) (int, error)
}

// InputError reports an answer that could not be used.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidInteger) match parse failures.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInteger
}

// ParseInteger converts one answer line to an integer, ignoring surrounding
// whitespace.
func ParseInteger(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, &InputError{Input: input, Err: err}
	}
	return n, nil
}

// readInteger prints label to out and parses the next line from in.
func readInteger(in *bufio.Reader, out io.Writer, label string) (int, error) {
	if _, err := fmt.Fprint(out, label); err != nil {
		return 0, err
	}

	line, err := in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("failed to read answer: %w", err)
		}
		// a final line without a newline still counts
		if line == "" {
			return 0, fmt.Errorf("no answer to %q: %w", strings.TrimSpace(label), io.ErrUnexpectedEOF)
		}
	}
	return ParseInteger(strings.TrimRight(line, "\r\n"))
}

// Overrides answers ChooseDirectory with a fixed directory when one is set
// and delegates everything else to Base.
type Overrides struct {
	Base      Prompter
	Directory string
}

// ChooseDirectory returns o.Directory when set.
func (o Overrides) ChooseDirectory(ctx context.Context, title string) (string, error) {
	if o.Directory != "" {
		return o.Directory, nil
	}
	return o.Base.ChooseDirectory(ctx, title)
}

// ReadInteger delegates to Base.
func (o Overrides) ReadInteger(ctx context.Context, label string) (int, error) {
	return o.Base.ReadInteger(ctx, label)
}
