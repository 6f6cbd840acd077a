package argv

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/davrn/go-argv/internal/fuzzy"
	"github.com/davrn/go-argv/middleware"
)

// Example is one worked invocation shown in a command's help.
type Example struct {
	Description string
	Command     string
}

// Commander is a named parsing scope registered with a MultiCommand. Both
// Command and MultiCommand satisfy it, so multi-commands nest.
type Commander interface {
	scope

	// Info exposes the command's descriptive surface for help rendering.
	Info() *Command
	// PrintHelp renders the command's usage, read-only over its registries.
	PrintHelp(program string, w io.Writer)
}

// Command is a parsing scope that is also one unit of the application's
// feature surface: a summary, a help category, worked examples, and an
// optional Run step executed after a successful parse.
type Command struct {
	Args

	Summary  string
	Category Category
	Examples []Example

	Run func(ctx context.Context) error
}

// Info implements Commander.
func (c *Command) Info() *Command { return c }

// Execute runs the command's Run step through the given middleware chain.
// Commands without a Run step execute as a no-op.
func (c *Command) Execute(ctx context.Context, mw ...middleware.Middleware) error {
	run := c.Run
	if run == nil {
		run = func(context.Context) error { return nil }
	}
	return middleware.Chain(mw...)(middleware.Runner(run))(ctx)
}

// CommandFactory produces a fresh command instance. Factories keep command
// construction lazy: help rendering and selection instantiate on demand.
type CommandFactory func() Commander

// Commands maps command names to their factories.
type Commands map[string]CommandFactory

// Selection is the one sub-command a MultiCommand has resolved.
type Selection struct {
	Name    string
	Command Commander
}

// MultiCommand is a command that dispatches to named sub-commands. Its own
// flags are tried first on every token; once its leading positional argument
// has selected a sub-command, everything unmatched flows to that scope.
type MultiCommand struct {
	Command

	commands       Commands
	categoryTitles map[Category]string
	selected       *Selection
}

// NewMultiCommand returns a multi-command over the given registry. The
// command-name argument is optional so that an invocation without a
// sub-command can still, say, print top-level help.
func NewMultiCommand(commands Commands) *MultiCommand {
	m := &MultiCommand{
		commands: commands,
		categoryTitles: map[Category]string{
			CategoryDefault: "Available commands",
		},
	}
	m.Expect(ExpectedArg{
		Label:    "command",
		Arity:    1,
		Optional: true,
		Handler: func(ctx *Context, values []string) error {
			return m.selectCommand(ctx, values[0])
		},
	})
	return m
}

// SetCategoryTitle names a command category in rendered help.
func (m *MultiCommand) SetCategoryTitle(c Category, title string) {
	m.categoryTitles[c] = title
}

// Selected returns the resolved sub-command, if any.
func (m *MultiCommand) Selected() (string, Commander, bool) {
	if m.selected == nil {
		return "", nil, false
	}
	return m.selected.Name, m.selected.Command, true
}

// selectCommand is the handler behind the leading positional argument. In
// completion mode it offers the registered names matching the typed prefix;
// otherwise it resolves the factory and records the selection, which happens
// at most once per MultiCommand instance.
func (m *MultiCommand) selectCommand(ctx *Context, name string) error {
	if m.selected != nil {
		panic("argv: sub-command already selected")
	}
	if prefix, ok := ctx.Completing(name); ok {
		for candidate := range m.commands {
			if strings.HasPrefix(candidate, prefix) {
				ctx.Completions().Add(candidate)
			}
		}
		return nil
	}
	factory, ok := m.commands[name]
	if !ok {
		e := usagef(ErrorTypeUnknownCommand, "'%s' is not a recognised command", name)
		e.Command = name
		if best := fuzzy.FindBestCommand(name, m.commandNames(), suggestionDistance); best != "" {
			e.Suggestion = best
		}
		return e
	}
	m.selected = &Selection{Name: name, Command: factory()}
	return nil
}

func (m *MultiCommand) commandNames() []string {
	names := make([]string, 0, len(m.commands))
	for name := range m.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseCommandLine parses with the multi-command's delegating dispatchers.
func (m *MultiCommand) ParseCommandLine(tokens []string) error {
	return parseCommandLine(m, newContext(nil), tokens)
}

// ParseForCompletion is ParseCommandLine in completion mode; see
// Args.ParseForCompletion.
func (m *MultiCommand) ParseForCompletion(tokens []string, target int) (*Completions, error) {
	comp, ctx, err := completionContext(tokens, target)
	if err != nil {
		return nil, err
	}
	return comp, parseCommandLine(m, ctx, tokens)
}

// processFlag tries the multi-command's own registry first, then the selected
// sub-command's.
func (m *MultiCommand) processFlag(ctx *Context, tokens []string, pos *int) (bool, error) {
	handled, err := m.Args.processFlag(ctx, tokens, pos)
	if handled || err != nil {
		return handled, err
	}
	if m.selected != nil {
		return m.selected.Command.processFlag(ctx, tokens, pos)
	}
	return false, nil
}

// processArgs belongs wholly to the selected sub-command once selection has
// happened; before that the base queue (holding the command-name argument)
// applies.
func (m *MultiCommand) processArgs(ctx *Context, values []string, finish bool) (bool, error) {
	if m.selected != nil {
		return m.selected.Command.processArgs(ctx, values, finish)
	}
	return m.Args.processArgs(ctx, values, finish)
}

func (m *MultiCommand) flagCandidates() []string {
	names := m.Args.flagCandidates()
	if m.selected != nil {
		names = append(names, m.selected.Command.flagCandidates()...)
	}
	return names
}
