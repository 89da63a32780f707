package theme

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shaharia-lab/reskin/internal/resource"
)

// Style represents a named color style
type Style struct {
	printer *color.Color
	writer  io.Writer
}

var _ Writer = (*Style)(nil)

// NewStyle creates a new style with foreground, background and attributes
func NewStyle(fg, bg color.Attribute, attrs ...color.Attribute) *Style {
	c := color.New(fg)

	if bg != 0 {
		c.Add(bg)
	}

	if len(attrs) > 0 {
		c.Add(attrs...)
	}

	return &Style{
		printer: c,
		writer:  os.Stdout,
	}
}

// NewColorStyle creates a true-color style from a resolved color
func NewColorStyle(fg resource.Color, attrs ...color.Attribute) *Style {
	r, g, b := fg.RGB()
	c := color.RGB(int(r), int(g), int(b))
	if len(attrs) > 0 {
		c.Add(attrs...)
	}

	return &Style{
		printer: c,
		writer:  os.Stdout,
	}
}

// WithWriter sets a custom writer for the style
func (s *Style) WithWriter(w io.Writer) *Style {
	s.writer = w
	return s
}

// Print prints text using the style
func (s *Style) Print(a ...interface{}) {
	if s.writer == os.Stdout {
		s.printer.Print(a...)
	} else {
		fmt.Fprint(s.writer, s.printer.Sprint(a...))
	}
}

// Printf prints formatted text using the style
func (s *Style) Printf(format string, a ...interface{}) {
	if s.writer == os.Stdout {
		s.printer.Printf(format, a...)
	} else {
		fmt.Fprint(s.writer, s.printer.Sprintf(format, a...))
	}
}

// Println prints text using the style followed by a newline
func (s *Style) Println(a ...interface{}) {
	if s.writer == os.Stdout {
		s.printer.Println(a...)
	} else {
		fmt.Fprintln(s.writer, s.printer.Sprint(a...))
	}
}

// Sprint returns styled text as string
func (s *Style) Sprint(a ...interface{}) string {
	return s.printer.Sprint(a...)
}
