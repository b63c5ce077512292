package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/sportsdash/internal/document"
)

// Printer writes CLI reports. Output that is not a terminal gets plain
// text with no escape sequences, so reports can be piped and diffed.
type Printer struct {
	out   io.Writer
	width int
	plain bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	plain := true
	if f, ok := w.(*os.File); ok {
		plain = !IsTerminal(f)
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
		plain: plain,
	}
}

// SetPlain forces plain output on or off
func (p *Printer) SetPlain(plain bool) *Printer {
	p.plain = plain
	return p
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Plain reports whether output is rendered without styling
func (p *Printer) Plain() bool {
	return p.plain
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a report header
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	h := NewHeader(title, command, params...).SetWidth(p.width)
	h.Plain = p.plain
	p.Println(h.Render())
	p.Newline()
}

// PrintDocument renders every line of elems, not just one screenful
func (p *Printer) PrintDocument(elems []document.Element) {
	p.Println(RenderDocument(elems, p.width, p.styles()))
}

// PrintError prints a failure box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting ...string) {
	r := NewFailureResult(title, err, troubleshooting...).SetWidth(p.width)
	r.Plain = p.plain
	p.Println(r.Render())
}

// PrintWarning prints a warning box
func (p *Printer) PrintWarning(title, detail string) {
	r := NewWarningResult(title, detail).SetWidth(p.width)
	r.Plain = p.plain
	p.Println(r.Render())
}

func (p *Printer) styles() *document.Styles {
	if p.plain {
		return document.PlainStyles()
	}
	return DocumentStyles()
}

// RenderDocument lays elems out at their full height with no focus
func RenderDocument(elems []document.Element, width int, styles *document.Styles) string {
	h := max(document.Height(elems), 1)
	return document.NewFocusManager(document.NewViewport(h), elems).View(width, styles)
}
