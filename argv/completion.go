package argv

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// completionMarker is appended to the token under completion before
// expansion, so compound-option splitting carries it onto the right
// sub-token. It never appears in handler values: dispatchers strip it.
const completionMarker = "___COMPLETE___"

// Completions collects completion candidates for one designated in-progress
// token. Duplicates collapse; Values returns a sorted snapshot.
type Completions struct {
	target int
	paths  bool
	seen   map[string]struct{}
}

// NewCompletions returns an active candidate collector targeting the 1-based
// token index target.
func NewCompletions(target int) *Completions {
	return &Completions{
		target: target,
		seen:   make(map[string]struct{}),
	}
}

// Target returns the 1-based index of the token under completion.
func (c *Completions) Target() int { return c.target }

// Add records candidate strings.
func (c *Completions) Add(values ...string) {
	for _, v := range values {
		c.seen[v] = struct{}{}
	}
}

// Len returns the number of distinct candidates collected so far.
func (c *Completions) Len() int { return len(c.seen) }

// Values returns the collected candidates in sorted order.
func (c *Completions) Values() []string {
	out := make([]string, 0, len(c.seen))
	for v := range c.seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// MarkPaths flags the candidates as filesystem paths so shells can apply
// file-style quoting and suffixing.
func (c *Completions) MarkPaths() { c.paths = true }

// Paths reports whether the candidates are filesystem paths.
func (c *Completions) Paths() bool { return c.paths }

// Context threads per-parse state through every dispatcher, handler and
// completer invocation. There is no process-global completion state; each
// parse owns its context.
type Context struct {
	completions *Completions
}

func newContext(comp *Completions) *Context {
	return &Context{completions: comp}
}

// Completions returns the candidate collector, or nil outside completion mode.
func (c *Context) Completions() *Completions {
	if c == nil {
		return nil
	}
	return c.completions
}

// CompletionMode reports whether this parse collects completion candidates.
func (c *Context) CompletionMode() bool {
	return c != nil && c.completions != nil
}

// Completing reports whether s is the token under completion and, if so,
// returns the text the user has typed before the cursor.
func (c *Context) Completing(s string) (prefix string, ok bool) {
	if !c.CompletionMode() {
		return "", false
	}
	i := strings.Index(s, completionMarker)
	if i < 0 {
		return "", false
	}
	return s[:i], true
}

func completionContext(tokens []string, target int) (*Completions, *Context, error) {
	if target < 1 || target > len(tokens) {
		return nil, nil, usagef(ErrorTypeInvalidValue,
			"completion index %d out of range for %d argument(s)", target, len(tokens))
	}
	comp := NewCompletions(target)
	return comp, newContext(comp), nil
}

// CompletePath is a Completer that expands prefix against the filesystem and
// feeds the matches into the completion channel. Glob failures yield no
// candidates; completion never reports errors.
func CompletePath(ctx *Context, _ int, prefix string) {
	comp := ctx.Completions()
	if comp == nil {
		return
	}
	pattern := expandTilde(prefix) + "*"
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}
	comp.MarkPaths()
	comp.Add(matches...)
}

func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
