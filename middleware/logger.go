package middleware

import (
	"context"
	"time"

	argvio "github.com/davrn/go-argv/io"
)

// Logger logs the start, duration and outcome of a command run.
func Logger(l *argvio.Logger, name string) Middleware {
	return func(next Runner) Runner {
		return func(ctx context.Context) error {
			l.Debugf("running %s", name)
			start := time.Now()
			err := next(ctx)
			elapsed := time.Since(start).Round(time.Millisecond)
			if err != nil {
				l.Errorf("%s failed after %s: %v", name, elapsed, err)
				return err
			}
			l.Infof("%s finished in %s", name, elapsed)
			return nil
		}
	}
}
