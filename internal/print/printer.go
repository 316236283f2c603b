package print

import (
	"fmt"
	"io"
	"os"

	"github.com/nvandessel/droidconf/internal/ui"
)

// Printer writes styled status lines to a writer.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Success prints a success message (green tick)
func (p *Printer) Success(format string, a ...interface{}) {
	p.line(ui.SuccessStyle.Render("✓"), format, a...)
}

// Error prints an error message (red cross)
func (p *Printer) Error(format string, a ...interface{}) {
	p.line(ui.ErrorStyle.Render("✖"), format, a...)
}

// Warning prints a warning message (yellow triangle)
func (p *Printer) Warning(format string, a ...interface{}) {
	p.line(ui.WarningStyle.Render("⚠"), format, a...)
}

// Info prints an informational message
func (p *Printer) Info(format string, a ...interface{}) {
	p.line(ui.TitleStyle.UnsetMarginBottom().Render("ℹ"), format, a...)
}

// Section prints a section header
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, ui.TitleStyle.Render(title))
}

// KeyValue prints an aligned "key  value" row. Empty values print as "-".
func (p *Printer) KeyValue(key string, value interface{}) {
	v := fmt.Sprint(value)
	if v == "" {
		v = ui.SubtleStyle.Render("-")
	}
	fmt.Fprintf(p.w, "  %s %s\n", ui.KeyStyle.Render(key), v)
}

func (p *Printer) line(icon, format string, a ...interface{}) {
	fmt.Fprintf(p.w, "%s %s\n", icon, fmt.Sprintf(format, a...))
}
