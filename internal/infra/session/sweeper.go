package session

import (
	"context"
	"time"

	repo "storefront/internal/repository"

	"go.uber.org/zap"
)

// interval ごとに無操作セッションを掃除する。ctxキャンセルで終了。
func RunSweeper(ctx context.Context, store repo.SessionStore, ttl, interval time.Duration, logger *zap.Logger) error {
	if ttl <= 0 {
		<-ctx.Done()
		return nil
	}
	if interval <= 0 {
		interval = ttl / 2
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if n := store.Sweep(ctx, now, ttl); n > 0 {
				logger.Info("expired sessions swept", zap.Int("count", n))
			}
		}
	}
}
