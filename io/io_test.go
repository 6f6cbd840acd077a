package argvio

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestStylerDisabledForPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyler(&buf, ColorAuto)

	if s.Enabled() {
		t.Error("Expected styling disabled for a non-terminal writer")
	}
	if got := s.Bold("usage"); got != "usage" {
		t.Errorf("Expected plain text, got %q", got)
	}
}

func TestStylerForced(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyler(&buf, ColorAlways)

	got := s.Italic("FILE")
	if !strings.Contains(got, "\x1b[3m") || !strings.HasSuffix(got, "\x1b[0m") {
		t.Errorf("Expected italic escape sequence, got %q", got)
	}
}

func TestStripANSI(t *testing.T) {
	styled := "\x1b[1mUsage:\x1b[0m prog \x1b[3mFILE\x1b[0m"
	if got := StripANSI(styled); got != "Usage: prog FILE" {
		t.Errorf("Expected stripped text, got %q", got)
	}
	if got := StripANSI("no escapes"); got != "no escapes" {
		t.Errorf("Expected identity on plain text, got %q", got)
	}
}

func TestVisibleWidth(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, ColorAlways)
	styled := s.Bold("--help")
	if got := VisibleWidth(styled); got != len("--help") {
		t.Errorf("Expected width %d, got %d", len("--help"), got)
	}
}

func TestLoggerRoutesByLevel(t *testing.T) {
	var out, errw bytes.Buffer
	l := NewLogger(&out, &errw)

	l.Infof("parsed %d tokens", 3)
	l.Warnf("slow completer")
	l.Errorf("boom")

	if !strings.Contains(out.String(), "[INFO] parsed 3 tokens") {
		t.Errorf("Expected info on out writer, got %q", out.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Errorf("Expected errors on err writer only, got %q", out.String())
	}
	if !strings.Contains(errw.String(), "[WARN] slow completer") ||
		!strings.Contains(errw.String(), "[ERROR] boom") {
		t.Errorf("Expected warn and error on err writer, got %q", errw.String())
	}
}

func TestLoggerMinimumLevel(t *testing.T) {
	var out, errw bytes.Buffer
	l := NewLogger(&out, &errw)

	l.Debugf("hidden")
	if out.Len() != 0 {
		t.Errorf("Expected debug suppressed at default level, got %q", out.String())
	}

	l.SetLevel(LevelDebug)
	l.Debugf("visible")
	if !strings.Contains(out.String(), "[DEBUG] visible") {
		t.Errorf("Expected debug emitted, got %q", out.String())
	}
}

func TestLoggerTimestamp(t *testing.T) {
	var out, errw bytes.Buffer
	l := NewLogger(&out, &errw).WithTime()
	l.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC) }

	l.Infof("hello")
	if !strings.HasPrefix(out.String(), "09:30:15 ") {
		t.Errorf("Expected timestamp prefix, got %q", out.String())
	}
}

func TestManagerWiring(t *testing.T) {
	var out, errw bytes.Buffer
	m := New().WithOut(&out).WithErr(&errw).NoColor()

	if m.Out() != &out || m.Err() != &errw {
		t.Error("Expected manager to return injected writers")
	}
	if m.Styler().Enabled() {
		t.Error("Expected NoColor to disable styling")
	}

	m.Logger().Errorf("oops")
	if !strings.Contains(errw.String(), "[ERROR] oops") {
		t.Errorf("Expected logger bound to err writer, got %q", errw.String())
	}
}
