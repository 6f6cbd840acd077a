package argvio

import (
	"io"
	"os"
	"strings"
)

// ANSI escape sequences used by the help renderer and logger.
const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiItalic = "\x1b[3m"

	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// ColorMode controls whether styled output is emitted.
type ColorMode int

const (
	// ColorAuto enables styling when the writer is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways emits styling unconditionally.
	ColorAlways
	// ColorNever strips all styling.
	ColorNever
)

// Styler renders ANSI-styled text, degrading to plain text when styling is
// disabled for the destination writer.
type Styler struct {
	enabled bool
}

// NewStyler returns a styler for the given writer under the given mode.
func NewStyler(w io.Writer, mode ColorMode) *Styler {
	return &Styler{enabled: styleEnabled(w, mode)}
}

func styleEnabled(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Enabled reports whether the styler emits escape sequences.
func (s *Styler) Enabled() bool { return s.enabled }

func (s *Styler) wrap(code, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return code + text + ansiReset
}

// Bold renders text in bold.
func (s *Styler) Bold(text string) string { return s.wrap(ansiBold, text) }

// Italic renders text in italics.
func (s *Styler) Italic(text string) string { return s.wrap(ansiItalic, text) }

// Dim renders text dimmed.
func (s *Styler) Dim(text string) string { return s.wrap(ansiDim, text) }

// Red, Green, Yellow and Blue render colored text for logger tags.
func (s *Styler) Red(text string) string    { return s.wrap(ansiRed, text) }
func (s *Styler) Green(text string) string  { return s.wrap(ansiGreen, text) }
func (s *Styler) Yellow(text string) string { return s.wrap(ansiYellow, text) }
func (s *Styler) Blue(text string) string   { return s.wrap(ansiBlue, text) }

// StripANSI removes escape sequences so column widths can be computed on the
// visible text.
func StripANSI(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inEscape:
			// CSI sequences end on a byte in the @..~ range.
			if c >= '@' && c <= '~' && c != '[' {
				inEscape = false
			}
		case c == '\x1b':
			inEscape = true
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// VisibleWidth returns the display width of s with escape sequences removed.
func VisibleWidth(s string) int {
	return len(StripANSI(s))
}
