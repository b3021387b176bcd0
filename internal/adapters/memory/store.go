// Package memory is the process-local VerdictRepository. Contents are lost on
// restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"threatscan/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	byID  map[string]domain.Verdict
	order []string
	now   func() time.Time
	newID func() string
}

func New() *Store {
	return &Store{
		byID:  make(map[string]domain.Verdict),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *Store) Create(ctx context.Context, v domain.Verdict) (domain.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return domain.Verdict{}, err
	}
	rec := v.Clone()
	rec.LastScanned = s.now()
	if rec.VendorResults == nil {
		rec.VendorResults = []domain.VendorDetection{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// uuid collisions are not expected; retry anyway rather than overwrite.
	for {
		rec.ID = s.newID()
		if _, taken := s.byID[rec.ID]; !taken {
			break
		}
	}
	s.byID[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	return rec.Clone(), nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.Verdict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	if !ok {
		return domain.Verdict{}, domain.ErrNotFound
	}
	return v.Clone(), nil
}

// GetByIndicator scans newest first, so the latest scan of an indicator wins.
func (s *Store) GetByIndicator(ctx context.Context, indicator string) (domain.Verdict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.order) - 1; i >= 0; i-- {
		if v := s.byID[s.order[i]]; v.Indicator == indicator {
			return v.Clone(), nil
		}
	}
	return domain.Verdict{}, domain.ErrNotFound
}

func (s *Store) List(ctx context.Context) ([]domain.Verdict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Verdict, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out, nil
}

// Len reports the number of stored verdicts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
