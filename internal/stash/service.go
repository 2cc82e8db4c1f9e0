package stash

import (
	"context"
	"fmt"

	"github.com/osse101/ArcLab_Go/internal/concurrency"
	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/logger"
	"github.com/osse101/ArcLab_Go/internal/repository"
)

const lockKeyStash = "stash"

// Planner computes the stack-mode plan for a stash
type Planner interface {
	PlanStash(ctx context.Context, requests []domain.DesiredRequest) (*domain.Plan, error)
}

// View is a saved stash together with its carry plan
type View struct {
	Entries []domain.StashEntry `json:"entries"`
	Plan    *domain.Plan        `json:"plan"`
}

// Service defines the interface for the persisted desired set
type Service interface {
	Load(ctx context.Context) ([]domain.StashEntry, error)
	// Save replaces the whole saved set and returns what was stored
	Save(ctx context.Context, entries []domain.StashEntry) ([]domain.StashEntry, error)
	LoadAndPlan(ctx context.Context) (*View, error)
	SaveAndPlan(ctx context.Context, entries []domain.StashEntry) (*View, error)
}

type service struct {
	repo        repository.Stash
	planner     Planner
	lockManager *concurrency.LockManager
}

// NewService creates a new stash service
func NewService(repo repository.Stash, planner Planner, lockManager *concurrency.LockManager) Service {
	return &service{
		repo:        repo,
		planner:     planner,
		lockManager: lockManager,
	}
}

func (s *service) Load(ctx context.Context) ([]domain.StashEntry, error) {
	entries, err := s.repo.GetStash(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stash: %w", err)
	}
	return entries, nil
}

func (s *service) Save(ctx context.Context, entries []domain.StashEntry) ([]domain.StashEntry, error) {
	cleaned := clean(entries)

	unlock := s.lockManager.Lock(lockKeyStash)
	defer unlock()

	if err := s.repo.ReplaceStash(ctx, cleaned); err != nil {
		return nil, fmt.Errorf("failed to save stash: %w", err)
	}

	logger.FromContext(ctx).Info("Stash saved", "entries", len(cleaned), "submitted", len(entries))
	return cleaned, nil
}

func (s *service) LoadAndPlan(ctx context.Context) (*View, error) {
	entries, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, entries)
}

// SaveAndPlan stores entries and plans against what was stored
func (s *service) SaveAndPlan(ctx context.Context, entries []domain.StashEntry) (*View, error) {
	if _, err := s.Save(ctx, entries); err != nil {
		return nil, err
	}
	return s.LoadAndPlan(ctx)
}

func (s *service) view(ctx context.Context, entries []domain.StashEntry) (*View, error) {
	plan, err := s.planner.PlanStash(ctx, Requests(entries))
	if err != nil {
		return nil, err
	}
	return &View{Entries: entries, Plan: plan}, nil
}

// Requests converts stash rows into stack-mode plan requests
func Requests(entries []domain.StashEntry) []domain.DesiredRequest {
	out := make([]domain.DesiredRequest, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.DesiredRequest{ItemID: e.ItemID, Amount: e.Stacks})
	}
	return out
}

// clean drops rows without an item or with a non-positive stack count and
// merges repeated items
func clean(entries []domain.StashEntry) []domain.StashEntry {
	out := make([]domain.StashEntry, 0, len(entries))
	index := make(map[int]int, len(entries))
	for _, e := range entries {
		if e.ItemID <= 0 || e.Stacks <= 0 {
			continue
		}
		if i, ok := index[e.ItemID]; ok {
			out[i].Stacks += e.Stacks
			continue
		}
		index[e.ItemID] = len(out)
		out = append(out, domain.StashEntry{ItemID: e.ItemID, Stacks: e.Stacks})
	}
	return out
}
