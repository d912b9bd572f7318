package catalog

import (
	"context"
	"time"
)

// RunRefresher reloads sourceURL every interval until ctx is done. Failures
// are already logged by Load and keep the previous snapshot.
func (c *Catalog) RunRefresher(ctx context.Context, sourceURL string, every time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_, _ = c.Load(ctx, sourceURL)
		}
	}
}
