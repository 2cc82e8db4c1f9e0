package planner

import (
	"context"
	"fmt"

	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/domain"
	"github.com/osse101/ArcLab_Go/internal/logger"
	"github.com/osse101/ArcLab_Go/internal/metrics"
)

// SnapshotSource supplies the catalog view a plan is computed against
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
}

// Service defines the interface for planning operations
type Service interface {
	// PlanLoadout plans a loadout of individual units, ordered by category then name
	PlanLoadout(ctx context.Context, requests []domain.DesiredRequest) (*domain.Plan, error)
	// PlanStash plans a stash of whole stacks, rarest first
	PlanStash(ctx context.Context, requests []domain.DesiredRequest) (*domain.Plan, error)
	// Evaluate reports craft vs. materials efficiency for one item. The result
	// is nil when the item has no usable recipe.
	Evaluate(ctx context.Context, itemID int) (*domain.EfficiencyResult, error)
}

type service struct {
	source SnapshotSource
}

// NewService creates a new planner service
func NewService(source SnapshotSource) Service {
	return &service{source: source}
}

func (s *service) PlanLoadout(ctx context.Context, requests []domain.DesiredRequest) (*domain.Plan, error) {
	return s.plan(ctx, requests, Options{Mode: ModeUnits, Sort: ByCategoryThenName()})
}

func (s *service) PlanStash(ctx context.Context, requests []domain.DesiredRequest) (*domain.Plan, error) {
	return s.plan(ctx, requests, Options{Mode: ModeStacks, Sort: ByRarityThenName()})
}

func (s *service) plan(ctx context.Context, requests []domain.DesiredRequest, opts Options) (*domain.Plan, error) {
	log := logger.FromContext(ctx)

	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		log.Error(LogMsgSnapshotFailed, "error", err)
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	res := AggregateDetailed(snap, requests, opts)

	mode := opts.Mode.String()
	metrics.PlansComputed.WithLabelValues(mode).Inc()
	metrics.PlanSlots.WithLabelValues(mode).Observe(float64(res.Plan.TotalSlots))
	if res.Dropped > 0 {
		metrics.PlanRequestsDropped.WithLabelValues(mode).Add(float64(res.Dropped))
		log.Debug(LogMsgRequestDropped, "mode", mode, "count", res.Dropped)
	}
	if res.MissingMaterials > 0 {
		metrics.PlanMaterialsMissing.WithLabelValues(mode).Add(float64(res.MissingMaterials))
		log.Warn(LogMsgMaterialMissing, "mode", mode, "count", res.MissingMaterials)
	}

	log.Info(LogMsgPlanComputed,
		"mode", mode,
		"requests", len(requests),
		"lines", len(res.Plan.Lines),
		"total_slots", res.Plan.TotalSlots)

	return &res.Plan, nil
}

func (s *service) Evaluate(ctx context.Context, itemID int) (*domain.EfficiencyResult, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgSnapshotFailed, "error", err)
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	item, ok := snap.Item(itemID)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgEvaluateNotFound, "item_id", itemID)
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}

	result := Evaluate(item, snap.Recipe(itemID))
	if result != nil {
		metrics.EfficiencyEvaluations.WithLabelValues(string(result.Recommendation)).Inc()
	}
	return result, nil
}
