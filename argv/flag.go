package argv

import (
	"strconv"
	"strings"
)

// ArityAny marks a flag that consumes values until the token stream runs out.
const ArityAny = -1

// Category groups flags (and commands) for help rendering. Flags in a hidden
// category are excluded from rendered help and from flag-name completion.
type Category int

// CategoryDefault is the category flags and commands belong to unless told
// otherwise.
const CategoryDefault Category = 0

// Handler receives the values consumed for a flag or positional argument, in
// original order and without the completion marker. It may reject the values
// with a UsageError.
type Handler func(ctx *Context, values []string) error

// Completer supplies completion candidates for one in-progress value. index
// is the value's position within the flag's argument list, prefix the text
// typed so far. Completers populate the channel and never fail.
type Completer func(ctx *Context, index int, prefix string)

// Flag is one registered option.
type Flag struct {
	// Long is the unique long name ("--long"); it must not be empty.
	Long string
	// Short is an optional single-character alias ("-x").
	Short rune

	Description string
	Category    Category

	// Labels name the flag's value placeholders in help output. For a fixed
	// arity, len(Labels) must equal Arity.
	Labels []string
	// Arity is the number of value tokens the flag consumes, or ArityAny.
	Arity int

	Handler   Handler
	Completer Completer
}

// Handler helpers for the common flag shapes.

// StoreString returns an arity-1 handler storing the value into dest.
func StoreString(dest *string) Handler {
	return func(_ *Context, values []string) error {
		*dest = values[0]
		return nil
	}
}

// StoreStrings returns a handler appending every value to dest.
func StoreStrings(dest *[]string) Handler {
	return func(_ *Context, values []string) error {
		*dest = append(*dest, values...)
		return nil
	}
}

// StoreTrue returns an arity-0 handler setting dest.
func StoreTrue(dest *bool) Handler {
	return func(_ *Context, _ []string) error {
		*dest = true
		return nil
	}
}

// StoreInt returns an arity-1 handler parsing a decimal integer into dest.
func StoreInt(dest *int) Handler {
	return func(_ *Context, values []string) error {
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return usagef(ErrorTypeInvalidValue, "'%s' is not an integer", values[0])
		}
		*dest = n
		return nil
	}
}

// ChoiceFlag builds a flag whose single value must be one of choices. The
// handler rejects anything else with a usage error and the completer offers
// the choices matching the typed prefix.
func ChoiceFlag(long, description string, dest *string, choices ...string) *Flag {
	return &Flag{
		Long:        long,
		Description: description + " ('" + strings.Join(choices, "', '") + "')",
		Labels:      []string{long},
		Arity:       1,
		Handler: func(_ *Context, values []string) error {
			for _, c := range choices {
				if values[0] == c {
					*dest = values[0]
					return nil
				}
			}
			return usagef(ErrorTypeInvalidValue, "unknown %s '%s'", long, values[0])
		},
		Completer: func(ctx *Context, _ int, prefix string) {
			for _, c := range choices {
				if strings.HasPrefix(c, prefix) {
					ctx.Completions().Add(c)
				}
			}
		},
	}
}
