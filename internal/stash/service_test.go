package stash

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcLab_Go/internal/concurrency"
	"github.com/osse101/ArcLab_Go/internal/domain"
)

// MockRepository stores the stash in memory
type MockRepository struct {
	mu       sync.Mutex
	entries  []domain.StashEntry
	names    map[int]string
	writeErr error
}

func (m *MockRepository) GetStash(ctx context.Context) ([]domain.StashEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.StashEntry, 0, len(m.entries))
	for _, e := range m.entries {
		e.Name = m.names[e.ItemID]
		out = append(out, e)
	}
	return out, nil
}

func (m *MockRepository) ReplaceStash(ctx context.Context, entries []domain.StashEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.entries = append([]domain.StashEntry(nil), entries...)
	return nil
}

// MockPlanner records the requests it is asked to plan
type MockPlanner struct {
	mock.Mock
}

func (m *MockPlanner) PlanStash(ctx context.Context, requests []domain.DesiredRequest) (*domain.Plan, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func TestSave_FiltersAndReplaces(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{entries: []domain.StashEntry{{ItemID: 9, Stacks: 9}}}
	svc := NewService(repo, &MockPlanner{}, concurrency.NewLockManager())

	saved, err := svc.Save(ctx, []domain.StashEntry{
		{ItemID: 1, Stacks: 2},
		{ItemID: 0, Stacks: 3},
		{ItemID: 2, Stacks: 0},
		{ItemID: 3, Stacks: -1},
		{ItemID: 1, Stacks: 1},
		{ItemID: 4, Stacks: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.StashEntry{{ItemID: 1, Stacks: 3}, {ItemID: 4, Stacks: 5}}, saved)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2, "old set must be fully superseded")
	assert.Equal(t, 1, loaded[0].ItemID)
}

func TestSave_EmptyClearsStash(t *testing.T) {
	repo := &MockRepository{entries: []domain.StashEntry{{ItemID: 9, Stacks: 9}}}
	svc := NewService(repo, &MockPlanner{}, concurrency.NewLockManager())

	saved, err := svc.Save(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.Empty(t, repo.entries)
}

func TestSave_RepositoryError(t *testing.T) {
	repo := &MockRepository{
		entries:  []domain.StashEntry{{ItemID: 9, Stacks: 9}},
		writeErr: errors.New("tx aborted"),
	}
	svc := NewService(repo, &MockPlanner{}, concurrency.NewLockManager())

	_, err := svc.Save(context.Background(), []domain.StashEntry{{ItemID: 1, Stacks: 1}})
	require.Error(t, err)
	assert.Equal(t, []domain.StashEntry{{ItemID: 9, Stacks: 9}}, repo.entries)
}

func TestSaveAndPlan(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{names: map[int]string{1: "Widget"}}
	planner := &MockPlanner{}
	plan := &domain.Plan{TotalSlots: 3}
	planner.On("PlanStash", ctx, []domain.DesiredRequest{{ItemID: 1, Amount: 2}}).Return(plan, nil)

	svc := NewService(repo, planner, concurrency.NewLockManager())
	view, err := svc.SaveAndPlan(ctx, []domain.StashEntry{{ItemID: 1, Stacks: 2}, {ItemID: 2, Stacks: 0}})
	require.NoError(t, err)

	assert.Same(t, plan, view.Plan)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, "Widget", view.Entries[0].Name)
	planner.AssertExpectations(t)
}

func TestLoadAndPlan_PlannerError(t *testing.T) {
	ctx := context.Background()
	planner := &MockPlanner{}
	planner.On("PlanStash", ctx, mock.Anything).Return(nil, errors.New("catalog unavailable"))

	svc := NewService(&MockRepository{}, planner, concurrency.NewLockManager())
	_, err := svc.LoadAndPlan(ctx)
	assert.Error(t, err)
}

func TestRequests(t *testing.T) {
	got := Requests([]domain.StashEntry{{ItemID: 3, Stacks: 4, Name: "x"}})
	assert.Equal(t, []domain.DesiredRequest{{ItemID: 3, Amount: 4}}, got)
}
