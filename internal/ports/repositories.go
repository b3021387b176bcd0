package ports

import (
	"context"

	"threatscan/internal/domain"
)

// VerdictRepository persists verdicts. Records are append-only: Create never
// overwrites and there is no update or delete.
type VerdictRepository interface {
	// Create assigns a fresh ID and scan timestamp and returns the stored copy.
	Create(ctx context.Context, v domain.Verdict) (domain.Verdict, error)
	Get(ctx context.Context, id string) (domain.Verdict, error)
	// GetByIndicator returns the most recently created verdict for the exact
	// indicator text.
	GetByIndicator(ctx context.Context, indicator string) (domain.Verdict, error)
	// List returns every verdict in insertion order.
	List(ctx context.Context) ([]domain.Verdict, error)
}
