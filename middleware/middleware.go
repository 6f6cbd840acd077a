// Package middleware decorates the run step of a parsed command. The argv
// engine itself only parses and dispatches; executing the selected command is
// the caller's job, and middleware wraps that execution.
package middleware

import "context"

// Runner is one command execution step.
type Runner func(ctx context.Context) error

// Middleware wraps a Runner with behavior before and/or after it.
type Middleware func(next Runner) Runner

// Chain composes middleware so the first one listed is the outermost wrapper.
// An empty chain is the identity.
func Chain(mw ...Middleware) Middleware {
	return func(next Runner) Runner {
		for i := len(mw) - 1; i >= 0; i-- {
			next = mw[i](next)
		}
		return next
	}
}
