package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Purger removes expired state. kv.PostgresStore implements it; Redis and the
// in-memory store expire keys on their own.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StartCleanupWorker purges expired rows every interval until ctx is done.
// The returned channel is closed when the worker exits.
func StartCleanupWorker(ctx context.Context, purger Purger, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cleanupExpired(ctx, purger, logger)
			case <-ctx.Done():
				return
			}
		}
	}()

	return done
}

func cleanupExpired(ctx context.Context, purger Purger, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	n, err := purger.PurgeExpired(ctx)
	if err != nil {
		logger.Error("failed to purge expired state", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged expired state", zap.Int64("rows", n))
	}
}
