package scraper

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// console prints human status lines for the operator.
type console struct {
	out io.Writer
}

func (c console) line(format string, args ...interface{}) {
	fmt.Fprintln(c.out, fmt.Sprintf(format, args...))
}

func (c console) heading(format string, args ...interface{}) {
	fmt.Fprintln(c.out, color.Bold.Sprintf(format, args...))
}

func (c console) success(format string, args ...interface{}) {
	fmt.Fprintln(c.out, color.Green.Sprintf(format, args...))
}

func (c console) failure(format string, args ...interface{}) {
	fmt.Fprintln(c.out, color.Red.Sprintf(format, args...))
}

// summaryRow is one label/value pair of the closing summary.
type summaryRow struct {
	label string
	value string
}

// summary prints rows with values aligned by display width, so labels with
// emoji line up in a terminal.
func (c console) summary(title string, rows []summaryRow) {
	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.label); w > width {
			width = w
		}
	}

	fmt.Fprintln(c.out)
	c.heading("%s", title)
	for _, r := range rows {
		fmt.Fprintf(c.out, "  %s  %s\n", runewidth.FillRight(r.label, width), color.Cyan.Sprint(r.value))
	}
}
