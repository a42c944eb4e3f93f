package workers

import (
	"context"
	"log"
	"time"

	"github.com/dewrapsquare/dewrap-api/services"
)

// CleanupWorker prunes carts nobody has touched in a while and
// recovery records past their TTL. Expiry is also checked on load, so
// this only bounds storage, it is not load-bearing for correctness.
type CleanupWorker struct {
	carts    *services.CartService
	recovery *services.RecoveryService
	interval time.Duration
	maxIdle  time.Duration
}

func NewCleanupWorker(carts *services.CartService, recovery *services.RecoveryService) *CleanupWorker {
	return &CleanupWorker{
		carts:    carts,
		recovery: recovery,
		interval: 15 * time.Minute,
		maxIdle:  6 * time.Hour,
	}
}

func (w *CleanupWorker) Start(ctx context.Context) {
	log.Println("starting cleanup worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *CleanupWorker) sweep(ctx context.Context) {
	if pruned := w.carts.PruneIdle(w.maxIdle); pruned > 0 {
		log.Printf("pruned %d idle carts", pruned)
	}

	removed, err := w.recovery.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Printf("failed to delete expired order records: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("deleted %d expired order records", removed)
	}
}
