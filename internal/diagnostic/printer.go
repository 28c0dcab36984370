package diagnostic

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer renders diagnostics to a writer, colorizing severities when the
// writer is a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a Printer for w. Color is enabled only when w is a TTY.
func NewPrinter(w io.Writer) *Printer {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Printer{w: w, color: enabled}
}

var severityColors = map[Severity]*color.Color{
	SeverityInfo:    color.New(color.FgCyan),
	SeverityWarning: color.New(color.FgYellow),
	SeverityError:   color.New(color.FgRed, color.Bold),
}

// Print writes every diagnostic, one per line, errors first.
func (p *Printer) Print(d *Diagnostics) {
	for _, diag := range d.All() {
		p.printOne(diag)
	}
}

func (p *Printer) printOne(d Diagnostic) {
	line := d.String()
	if !p.color {
		fmt.Fprintln(p.w, line)

		return
	}

	sev := d.Severity.String() + ":"

	c, ok := severityColors[d.Severity]
	if ok && strings.Contains(line, sev) {
		line = strings.Replace(line, sev, c.Sprint(sev), 1)
	}

	fmt.Fprintln(p.w, line)
}
