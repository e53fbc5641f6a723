package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ncruces/zenity"
)

// pickDirectory opens the platform folder chooser.
type pickDirectory func(ctx context.Context, title string) (string, error)

func zenityPicker(ctx context.Context, title string) (string, error) {
	return zenity.SelectFile(
		zenity.Title(title),
		zenity.Directory(),
		zenity.Context(ctx),
	)
}

// Dialog uses a native folder chooser and a blocking line prompt.
type Dialog struct {
	in   *bufio.Reader
	out  io.Writer
	pick pickDirectory
}

// NewDialog creates a Dialog reading answers from in and printing labels to out.
func NewDialog(in io.Reader, out io.Writer) *Dialog {
	return &Dialog{
		in:   bufio.NewReader(in),
		out:  out,
		pick: zenityPicker,
	}
}

// ChooseDirectory shows the folder chooser. Cancelling returns "".
func (d *Dialog) ChooseDirectory(ctx context.Context, title string) (string, error) {
	dir, err := d.pick(ctx, title)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("folder dialog failed (pass --root to skip it): %w", err)
	}
	return dir, nil
}

// ReadInteger prints label and reads one line from the input.
func (d *Dialog) ReadInteger(_ context.Context, label string) (int, error) {
	return readInteger(d.in, d.out, label)
}
