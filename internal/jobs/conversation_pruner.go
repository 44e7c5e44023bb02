package jobs

import (
	"context"
	"log"
	"log/slog"
	"time"

	"mindhub/internal/metrics"
)

// ConversationStore is the part of the conversation store the pruner needs.
type ConversationStore interface {
	PruneIdle(ctx context.Context, cutoff time.Time) int
}

// ConversationPruner evicts chat conversations that have been idle too long.
type ConversationPruner struct {
	store    ConversationStore
	interval time.Duration
	maxIdle  time.Duration
	now      func() time.Time
}

// NewConversationPruner creates a new pruner.
func NewConversationPruner(store ConversationStore, interval, maxIdle time.Duration) *ConversationPruner {
	return &ConversationPruner{
		store:    store,
		interval: interval,
		maxIdle:  maxIdle,
		now:      time.Now,
	}
}

// Start runs the prune loop until ctx is cancelled.
func (p *ConversationPruner) Start(ctx context.Context) {
	log.Printf("Conversation pruner started (interval: %v, maxIdle: %v)", p.interval, p.maxIdle)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Conversation pruner stopped")
			return
		case <-ticker.C:
			p.PruneOnce(ctx)
		}
	}
}

// PruneOnce evicts idle conversations and returns how many were removed.
func (p *ConversationPruner) PruneOnce(ctx context.Context) int {
	removed := p.store.PruneIdle(ctx, p.now().Add(-p.maxIdle))
	if removed > 0 {
		slog.Info("pruned idle conversations", "count", removed)
		metrics.RecordConversationsPruned(removed)
	}
	return removed
}
