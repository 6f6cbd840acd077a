// Package argvio centralizes terminal output concerns for go-argv: ANSI
// styling with terminal detection, visible-width measurement for aligned
// tables, and a small leveled logger used by the middleware package and the
// example programs.
package argvio

import (
	stdio "io"
	"os"
)

// Manager binds output writers to a color policy. The zero value is not
// usable; construct one with New.
type Manager struct {
	out  stdio.Writer
	err  stdio.Writer
	mode ColorMode
}

// New returns a manager bound to process stdout/stderr with automatic color
// detection.
func New() *Manager {
	return &Manager{out: os.Stdout, err: os.Stderr, mode: ColorAuto}
}

// WithOut replaces the standard output writer.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr replaces the error writer.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// ForceColor emits styling regardless of the destination.
func (m *Manager) ForceColor() *Manager { m.mode = ColorAlways; return m }

// NoColor disables styling regardless of the destination.
func (m *Manager) NoColor() *Manager { m.mode = ColorNever; return m }

// Out returns the standard output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the error writer.
func (m *Manager) Err() stdio.Writer { return m.err }

// Styler returns a styler for the standard output writer.
func (m *Manager) Styler() *Styler { return NewStyler(m.out, m.mode) }

// Logger returns a leveled logger writing through the manager's writers.
func (m *Manager) Logger() *Logger {
	return NewLogger(m.out, m.err).withStyler(NewStyler(m.err, m.mode))
}
