// Package argv is a command-line parsing and dispatch engine: it converts a
// raw token sequence into typed flag and positional-argument invocations,
// supports nested multi-command dispatch, and threads a shell-completion
// protocol through every parsing decision.
package argv

import (
	"fmt"
	"strings"
)

// scope is one parsing unit: a flag registry plus a positional-argument
// queue. MultiCommand overrides both dispatchers to delegate to the selected
// sub-command.
type scope interface {
	processFlag(ctx *Context, tokens []string, pos *int) (bool, error)
	processArgs(ctx *Context, values []string, finish bool) (bool, error)
	flagCandidates() []string
}

// Args owns the flag registry and positional-argument queue for one parsing
// scope. The zero value is ready to use.
type Args struct {
	long     map[string]*Flag
	short    map[rune]*Flag
	expected []ExpectedArg
	hiddenCategories map[Category]struct{}
}

// AddFlag registers a flag. Registering the same long name twice overwrites
// the prior registration (last write wins). Structural mistakes are
// programmer errors and panic: an empty long name, a negative fixed arity, or
// a label count that disagrees with a fixed arity.
func (a *Args) AddFlag(f *Flag) {
	if f.Long == "" {
		panic("argv: flag long name must not be empty")
	}
	if f.Arity < ArityAny {
		panic(fmt.Sprintf("argv: flag --%s has negative arity %d", f.Long, f.Arity))
	}
	if f.Arity != ArityAny && f.Arity != len(f.Labels) {
		panic(fmt.Sprintf("argv: flag --%s declares %d label(s) for arity %d",
			f.Long, len(f.Labels), f.Arity))
	}
	if a.long == nil {
		a.long = make(map[string]*Flag)
		a.short = make(map[rune]*Flag)
	}
	a.long[f.Long] = f
	if f.Short != 0 {
		a.short[f.Short] = f
	}
}

// HideCategory excludes a category's flags from rendered help and from
// flag-name completion.
func (a *Args) HideCategory(c Category) {
	if a.hiddenCategories == nil {
		a.hiddenCategories = make(map[Category]struct{})
	}
	a.hiddenCategories[c] = struct{}{}
}

func (a *Args) hidden(c Category) bool {
	_, ok := a.hiddenCategories[c]
	return ok
}

// ParseCommandLine parses the argument vector (program name already stripped)
// against the scope's registries, invoking flag and positional handlers as
// tokens are matched.
func (a *Args) ParseCommandLine(tokens []string) error {
	return parseCommandLine(a, newContext(nil), tokens)
}

// ParseForCompletion parses in completion mode: target is the 1-based index
// of the token under completion. Candidates collected up to the point the
// parse stopped are returned even when the parse itself failed.
func (a *Args) ParseForCompletion(tokens []string, target int) (*Completions, error) {
	comp, ctx, err := completionContext(tokens, target)
	if err != nil {
		return nil, err
	}
	return comp, parseCommandLine(a, ctx, tokens)
}

// processFlag matches the token at *pos against the registry and, on a match,
// consumes the flag and its values, advancing *pos past everything consumed.
// It reports false for tokens that are not recognized flags.
func (a *Args) processFlag(ctx *Context, tokens []string, pos *int) (bool, error) {
	tok := tokens[*pos]

	if strings.HasPrefix(tok, "--") {
		name := tok[2:]
		if prefix, ok := ctx.Completing(tok); ok {
			stem := strings.TrimPrefix(prefix, "--")
			for long, f := range a.long {
				if !a.hidden(f.Category) && strings.HasPrefix(long, stem) {
					ctx.Completions().Add("--" + long)
				}
			}
			// Dispatch proceeds on the text typed so far.
			name = stem
		}
		f, found := a.long[name]
		if !found {
			return false, nil
		}
		return a.consumeFlag(ctx, "--"+name, f, tokens, pos)
	}

	if len(tok) == 2 && tok[0] == '-' {
		if f, found := a.short[rune(tok[1])]; found {
			return a.consumeFlag(ctx, tok, f, tokens, pos)
		}
		return false, nil
	}

	// A lone dash under completion: seed the channel with the flag syntax the
	// user could continue with, purely as a discovery aid.
	if prefix, ok := ctx.Completing(tok); ok && prefix == "-" {
		ctx.Completions().Add("--")
		for r, f := range a.short {
			if !a.hidden(f.Category) {
				ctx.Completions().Add("-" + string(r))
			}
		}
	}

	return false, nil
}

// consumeFlag pulls the flag's values from the stream and invokes its handler
// exactly once with the full ordered list.
func (a *Args) consumeFlag(ctx *Context, name string, f *Flag, tokens []string, pos *int) (bool, error) {
	*pos++

	var values []string
	for n := 0; f.Arity == ArityAny || n < f.Arity; n++ {
		if *pos >= len(tokens) {
			if f.Arity == ArityAny {
				break
			}
			return true, usagef(ErrorTypeMissingValue,
				"flag '%s' requires %d argument(s)", name, f.Arity)
		}
		v := tokens[*pos]
		if prefix, ok := ctx.Completing(v); ok {
			if f.Completer != nil {
				f.Completer(ctx, n, prefix)
			}
			v = prefix
		}
		values = append(values, v)
		*pos++
	}

	if f.Handler != nil {
		if err := f.Handler(ctx, values); err != nil {
			return true, err
		}
	}
	return true, nil
}

// processArgs feeds accumulated positional tokens to the front entry of the
// queue. finish signals end of input: consume-all entries are satisfied, and
// a remaining non-optional entry is a usage error. It reports whether the
// accumulator was consumed.
func (a *Args) processArgs(ctx *Context, values []string, finish bool) (bool, error) {
	if len(a.expected) == 0 {
		if len(values) != 0 {
			return false, usagef(ErrorTypeUnexpectedArgument,
				"unexpected argument '%s'", values[0])
		}
		return true, nil
	}

	exp := &a.expected[0]
	consumed := false

	if (exp.Arity == 0 && finish) || (exp.Arity > 0 && len(values) == exp.Arity) {
		vs := make([]string, len(values))
		copy(vs, values)
		if exp.Handler != nil {
			if err := exp.Handler(ctx, vs); err != nil {
				return false, err
			}
		}
		a.expected = a.expected[1:]
		consumed = true
	}

	if finish && len(a.expected) > 0 && !a.expected[0].Optional {
		return consumed, usagef(ErrorTypeMissingArgument, "more arguments are required")
	}

	return consumed, nil
}

func (a *Args) flagCandidates() []string {
	names := make([]string, 0, len(a.long))
	for name := range a.long {
		names = append(names, name)
	}
	return names
}
