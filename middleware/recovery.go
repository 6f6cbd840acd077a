package middleware

import (
	"context"
	"fmt"
)

// Recovery converts a panic in the wrapped Runner into an error so one broken
// command cannot take the whole process down.
func Recovery() Middleware {
	return func(next Runner) Runner {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("command panicked: %v", r)
				}
			}()
			return next(ctx)
		}
	}
}
