package verdicts

import (
	"context"

	"threatscan/internal/domain"
	"threatscan/internal/ports"
)

// Service is the read side over persisted verdicts.
type Service struct {
	repo ports.VerdictRepository
}

func New(repo ports.VerdictRepository) *Service { return &Service{repo: repo} }

func (s *Service) Get(ctx context.Context, id string) (domain.Verdict, error) {
	return s.repo.Get(ctx, id)
}

// List returns all verdicts in insertion order, optionally only those with
// the given status.
func (s *Service) List(ctx context.Context, status *domain.Status) ([]domain.Verdict, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return all, nil
	}
	out := make([]domain.Verdict, 0, len(all))
	for _, v := range all {
		if v.Status == *status {
			out = append(out, v)
		}
	}
	return out, nil
}

// Latest returns the most recent verdict for an indicator.
func (s *Service) Latest(ctx context.Context, indicator string) (domain.Verdict, error) {
	return s.repo.GetByIndicator(ctx, indicator)
}
