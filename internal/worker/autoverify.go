package worker

import (
	"context"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// AutoVerifier runs the auto-verification sweep on a fixed interval. It is
// owned by process lifecycle: it stops when the context is cancelled, and
// the first sweep runs one full interval after startup.
type AutoVerifier struct {
	Command  *command.AutoVerifyUsers
	Interval time.Duration
}

func (w *AutoVerifier) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		resp, err := w.Command.Execute(ctx, command.AutoVerifyUsersRequest{})
		if err != nil {
			// The next tick retries; a failed sweep never stops the worker.
			logger.ErrorContext(ctx, "auto-verification sweep failed", "error", err)
			continue
		}

		logger.InfoContext(ctx, "auto-verification sweep completed",
			"evaluated", resp.Evaluated,
			"verified", resp.Verified,
			"notify_failures", len(resp.NotifyFailures),
		)
	}
}
