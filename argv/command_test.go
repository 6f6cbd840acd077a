package argv

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultiCommandSelectsAndRoutes(t *testing.T) {
	var flag string
	run := func() Commander {
		c := &Command{Summary: "run a thing"}
		c.AddFlag(&Flag{Long: "flag", Labels: []string{"v"}, Arity: 1, Handler: StoreString(&flag)})
		return c
	}
	build := func() Commander {
		return &Command{Summary: "build a thing"}
	}

	m := NewMultiCommand(Commands{"run": run, "build": build})
	if err := m.ParseCommandLine([]string{"run", "--flag", "v"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	name, _, ok := m.Selected()
	if !ok || name != "run" {
		t.Fatalf("Expected run selected, got %q ok=%v", name, ok)
	}
	if flag != "v" {
		t.Errorf("Expected flag routed to sub-command, got %q", flag)
	}
}

func TestMultiCommandParentFlagsTakePrecedence(t *testing.T) {
	var parentSeen, childSeen bool
	child := func() Commander {
		c := &Command{}
		c.AddFlag(&Flag{Long: "verbose", Handler: StoreTrue(&childSeen)})
		return c
	}

	m := NewMultiCommand(Commands{"child": child})
	m.AddFlag(&Flag{Long: "verbose", Handler: StoreTrue(&parentSeen)})

	if err := m.ParseCommandLine([]string{"child", "--verbose"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !parentSeen || childSeen {
		t.Errorf("Expected parent registry tried first, got parent=%v child=%v", parentSeen, childSeen)
	}
}

func TestMultiCommandPositionalsFlowToSelected(t *testing.T) {
	var target string
	build := func() Commander {
		c := &Command{}
		c.ExpectArg("target", &target)
		return c
	}

	m := NewMultiCommand(Commands{"build": build})
	if err := m.ParseCommandLine([]string{"build", "all"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if target != "all" {
		t.Errorf("Expected target=all, got %q", target)
	}
}

func TestMultiCommandWithoutCommandIsAllowed(t *testing.T) {
	m := NewMultiCommand(Commands{"build": func() Commander { return &Command{} }})
	if err := m.ParseCommandLine(nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, _, ok := m.Selected(); ok {
		t.Error("Expected no selection")
	}
}

func TestMultiCommandUnknownCommandSuggests(t *testing.T) {
	m := NewMultiCommand(Commands{
		"build": func() Commander { return &Command{} },
		"run":   func() Commander { return &Command{} },
	})

	err := m.ParseCommandLine([]string{"biuld"})
	var ue *UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("Expected UsageError, got %v", err)
	}
	if ue.Type != ErrorTypeUnknownCommand || ue.Command != "biuld" {
		t.Errorf("Unexpected error fields: %+v", ue)
	}
	if ue.Message != "'biuld' is not a recognised command" {
		t.Errorf("Unexpected message: %q", ue.Message)
	}
	if ue.Suggestion != "build" {
		t.Errorf("Expected suggestion build, got %q", ue.Suggestion)
	}
}

func TestMultiCommandCompletesCommandNames(t *testing.T) {
	m := NewMultiCommand(Commands{
		"build":  func() Commander { return &Command{} },
		"bundle": func() Commander { return &Command{} },
		"run":    func() Commander { return &Command{} },
	})

	comp, err := m.ParseForCompletion([]string{"bu"}, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []string{"build", "bundle"}
	if diff := cmp.Diff(want, comp.Values()); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
	if _, _, ok := m.Selected(); ok {
		t.Error("Expected completion not to select a command")
	}
}

func TestMultiCommandCompletesSubCommandFlags(t *testing.T) {
	run := func() Commander {
		c := &Command{}
		c.AddFlag(&Flag{Long: "jobs", Labels: []string{"n"}, Arity: 1})
		c.AddFlag(&Flag{Long: "quiet"})
		return c
	}

	m := NewMultiCommand(Commands{"run": run})
	comp, err := m.ParseForCompletion([]string{"run", "--"}, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []string{"--jobs", "--quiet"}
	if diff := cmp.Diff(want, comp.Values()); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiCommandNests(t *testing.T) {
	var root string
	gc := func() Commander {
		c := &Command{Summary: "collect garbage"}
		c.ExpectOptionalArg("root", &root)
		return c
	}
	store := func() Commander {
		return NewMultiCommand(Commands{"gc": gc})
	}

	m := NewMultiCommand(Commands{"store": store})
	if err := m.ParseCommandLine([]string{"store", "gc", "/tmp/root"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, inner, ok := m.Selected()
	if !ok {
		t.Fatal("Expected outer selection")
	}
	innerMC, ok := inner.(*MultiCommand)
	if !ok {
		t.Fatalf("Expected nested MultiCommand, got %T", inner)
	}
	if name, _, ok := innerMC.Selected(); !ok || name != "gc" {
		t.Fatalf("Expected gc selected, got %q ok=%v", name, ok)
	}
	if root != "/tmp/root" {
		t.Errorf("Expected root argument routed to leaf, got %q", root)
	}
}

func TestMultiCommandSecondSelectionPanics(t *testing.T) {
	m := NewMultiCommand(Commands{
		"build": func() Commander { return &Command{} },
		"run":   func() Commander { return &Command{} },
	})
	if err := m.ParseCommandLine([]string{"build"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on second selection")
		}
	}()
	_ = m.selectCommand(newContext(nil), "run")
}

func TestCommandExecuteRunsMiddlewareAndRun(t *testing.T) {
	ran := false
	c := &Command{Run: func(context.Context) error {
		ran = true
		return nil
	}}
	if err := c.Execute(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ran {
		t.Error("Expected Run to be invoked")
	}

	// A command without a Run step executes as a no-op.
	if err := (&Command{}).Execute(context.Background()); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
