// Package ui provides terminal output helpers for the substridx CLI:
// styled output on a TTY, plain text when redirected.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes formatted CLI output, styled when the destination is a
// terminal and plain otherwise.
type Printer struct {
	w      io.Writer
	styled bool
	styles Styles
}

// NewPrinter creates a printer for w, auto-detecting TTY support.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styled: IsTerminal(w),
		styles: DefaultStyles(),
	}
}

// NewPlainPrinter creates a printer that never styles its output.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: DefaultStyles()}
}

// Header prints a section heading.
func (p *Printer) Header(text string) {
	if p.styled {
		fmt.Fprintln(p.w, p.styles.Header.Render(text))
		return
	}
	fmt.Fprintln(p.w, text)
}

// Success prints a positive result line.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.styles.Success, format, args...)
}

// Warning prints a cautionary line.
func (p *Printer) Warning(format string, args ...any) {
	p.line(p.styles.Warning, format, args...)
}

// Error prints a failure line.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.styles.Error, format, args...)
}

// KeyValue prints an aligned "key: value" row.
func (p *Printer) KeyValue(key string, format string, args ...any) {
	value := fmt.Sprintf(format, args...)
	if p.styled {
		fmt.Fprintf(p.w, "  %s %s\n", p.styles.Dim.Render(key+":"), p.styles.Value.Render(value))
		return
	}
	fmt.Fprintf(p.w, "  %s: %s\n", key, value)
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) line(style interface{ Render(...string) string }, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if p.styled {
		fmt.Fprintln(p.w, style.Render(text))
		return
	}
	fmt.Fprintln(p.w, text)
}
