package argv

// ExpectedArg is one entry in a scope's positional-argument queue.
type ExpectedArg struct {
	// Label names the argument in usage lines.
	Label string
	// Arity 0 consumes all remaining positional tokens (satisfied only at end
	// of input); a positive arity is satisfied the instant that many tokens
	// have accumulated.
	Arity int
	// Optional is only meaningful for the final unmatched entry at end of
	// input: it suppresses the "more arguments are required" error.
	Optional bool
	// Handler receives the matched values.
	Handler Handler
}

// Expect appends a raw entry to the positional-argument queue.
func (a *Args) Expect(arg ExpectedArg) {
	a.expected = append(a.expected, arg)
}

// ExpectArg registers a required single-value positional argument stored into
// dest.
func (a *Args) ExpectArg(label string, dest *string) {
	a.expectOne(label, dest, false)
}

// ExpectOptionalArg registers a single-value positional argument that may be
// omitted at end of input.
func (a *Args) ExpectOptionalArg(label string, dest *string) {
	a.expectOne(label, dest, true)
}

func (a *Args) expectOne(label string, dest *string, optional bool) {
	a.Expect(ExpectedArg{
		Label:    label,
		Arity:    1,
		Optional: optional,
		Handler: func(ctx *Context, values []string) error {
			*dest = unmark(ctx, values[0])
			return nil
		},
	})
}

// ExpectArgs registers a trailing multi-value positional argument consuming
// everything left at end of input (possibly nothing).
func (a *Args) ExpectArgs(label string, dest *[]string) {
	a.Expect(ExpectedArg{
		Label: label,
		Arity: 0,
		Handler: func(ctx *Context, values []string) error {
			out := make([]string, len(values))
			for i, v := range values {
				out[i] = unmark(ctx, v)
			}
			*dest = out
			return nil
		},
	})
}

// ExpectPathArg is ExpectArg for filesystem paths: in completion mode the
// in-progress value is glob-expanded into the completion channel.
func (a *Args) ExpectPathArg(label string, dest *string, optional bool) {
	a.Expect(ExpectedArg{
		Label:    label,
		Arity:    1,
		Optional: optional,
		Handler: func(ctx *Context, values []string) error {
			*dest = completeAndUnmark(ctx, values[0])
			return nil
		},
	})
}

// ExpectPathArgs is ExpectArgs for filesystem paths.
func (a *Args) ExpectPathArgs(label string, dest *[]string) {
	a.Expect(ExpectedArg{
		Label: label,
		Arity: 0,
		Handler: func(ctx *Context, values []string) error {
			out := make([]string, len(values))
			for i, v := range values {
				out[i] = completeAndUnmark(ctx, v)
			}
			*dest = out
			return nil
		},
	})
}

// unmark strips the completion marker so stored values stay clean even during
// a completion parse.
func unmark(ctx *Context, value string) string {
	if prefix, ok := ctx.Completing(value); ok {
		return prefix
	}
	return value
}

func completeAndUnmark(ctx *Context, value string) string {
	if prefix, ok := ctx.Completing(value); ok {
		CompletePath(ctx, 0, prefix)
		return prefix
	}
	return value
}
