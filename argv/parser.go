package argv

import (
	"strings"

	"github.com/davrn/go-argv/internal/fuzzy"
)

// suggestionDistance is the edit-distance cutoff for "did you mean" hints.
const suggestionDistance = 2

// parser walks the expanded token stream once, left to right. At each step
// exactly one of three things happens: a literal `--` flips the stream into
// positional-only mode, a flag is dispatched past all its consumed tokens, or
// one positional token is accumulated and offered to the queue.
type parser struct {
	scope  scope
	ctx    *Context
	tokens []string

	pos            int
	pending        []string
	positionalOnly bool
}

func parseCommandLine(s scope, ctx *Context, cmdline []string) error {
	p := &parser{
		scope:  s,
		ctx:    ctx,
		tokens: expandTokens(cmdline, ctx.Completions()),
	}

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]

		switch {
		case !p.positionalOnly && tok == "--":
			p.positionalOnly = true
			p.pos++

		case !p.positionalOnly && len(tok) > 0 && tok[0] == '-':
			handled, err := s.processFlag(ctx, p.tokens, &p.pos)
			if err != nil {
				return err
			}
			if handled {
				continue
			}
			if _, completing := ctx.Completing(tok); completing {
				// Candidates were seeded for the in-progress token; it is not
				// an error that it matches nothing yet.
				p.pos++
				continue
			}
			return p.unrecognisedFlag(tok)

		default:
			p.pending = append(p.pending, tok)
			p.pos++
			consumed, err := s.processArgs(ctx, p.pending, false)
			if err != nil {
				return err
			}
			if consumed {
				p.pending = p.pending[:0]
			}
		}
	}

	_, err := s.processArgs(ctx, p.pending, true)
	return err
}

func (p *parser) unrecognisedFlag(tok string) error {
	e := usagef(ErrorTypeUnknownFlag, "unrecognised flag '%s'", tok)
	e.Flag = tok
	stem := strings.TrimLeft(tok, "-")
	if best := fuzzy.FindBestFlag(stem, p.scope.flagCandidates(), suggestionDistance); best != "" {
		e.Suggestion = "--" + best
	}
	return e
}
