package ports

import (
	"context"

	"threatscan/internal/domain"
)

// ReputationLookup resolves one raw indicator into a verdict.
type ReputationLookup interface {
	Lookup(ctx context.Context, indicator string) (domain.Verdict, error)
}

// Scanner runs indicator batches and persists their verdicts.
type Scanner interface {
	// Configured reports whether a reputation service credential is set.
	Configured() bool
	Scan(ctx context.Context, indicators []string) (domain.BatchOutcome, error)
}

// Verdicts is the read side exposed to the HTTP adapter.
type Verdicts interface {
	Get(ctx context.Context, id string) (domain.Verdict, error)
	List(ctx context.Context, status *domain.Status) ([]domain.Verdict, error)
	Latest(ctx context.Context, indicator string) (domain.Verdict, error)
}
