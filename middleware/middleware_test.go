package middleware

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	argvio "github.com/davrn/go-argv/io"
)

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next Runner) Runner {
			return func(ctx context.Context) error {
				order = append(order, name+":in")
				err := next(ctx)
				order = append(order, name+":out")
				return err
			}
		}
	}

	run := Chain(tag("outer"), tag("inner"))(func(context.Context) error {
		order = append(order, "run")
		return nil
	})
	if err := run(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"outer:in", "inner:in", "run", "inner:out", "outer:out"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

func TestChainEmptyIsIdentity(t *testing.T) {
	called := false
	run := Chain()(func(context.Context) error {
		called = true
		return nil
	})
	if err := run(context.Background()); err != nil || !called {
		t.Errorf("Expected plain pass-through, called=%v err=%v", called, err)
	}
}

func TestRecovery(t *testing.T) {
	run := Chain(Recovery())(func(context.Context) error {
		panic("boom")
	})

	err := run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Expected panic converted to error, got %v", err)
	}
}

func TestLoggerOutcomes(t *testing.T) {
	var out, errw bytes.Buffer
	l := argvio.NewLogger(&out, &errw)

	ok := Chain(Logger(l, "build"))(func(context.Context) error { return nil })
	if err := ok(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "build finished in") {
		t.Errorf("Expected success log, got %q", out.String())
	}

	fail := Chain(Logger(l, "deploy"))(func(context.Context) error {
		return errors.New("no such host")
	})
	if err := fail(context.Background()); err == nil {
		t.Fatal("Expected error to propagate through logger middleware")
	}
	if !strings.Contains(errw.String(), "deploy failed after") {
		t.Errorf("Expected failure log, got %q", errw.String())
	}
}
