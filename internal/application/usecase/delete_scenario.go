package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/event"
	"github.com/kvm55/Covey/internal/domain/port"
	"github.com/kvm55/Covey/pkg/events"
	"github.com/kvm55/Covey/pkg/observability"
)

// DeleteScenarioUseCase removes a scenario. Deleting the primary promotes the
// oldest remaining scenario of the property, if any.
type DeleteScenarioUseCase struct {
	repo      port.ScenarioRepository
	summary   summarySync
	publisher port.EventPublisher
	metrics   port.UnderwritingMetrics
}

func NewDeleteScenarioUseCase(
	repo port.ScenarioRepository,
	summaries port.PropertySummaryRepository,
	cache port.SummaryCache,
	publisher port.EventPublisher,
	metrics port.UnderwritingMetrics,
) *DeleteScenarioUseCase {
	return &DeleteScenarioUseCase{
		repo:      repo,
		summary:   summarySync{summaries: summaries, cache: cache},
		publisher: publisher,
		metrics:   metrics,
	}
}

func (uc *DeleteScenarioUseCase) Execute(ctx context.Context, req dto.ScenarioIDRequest) (dto.DeleteScenarioResponse, error) {
	ctx, span := observability.StartSpan(ctx, "usecase.DeleteScenario",
		attribute.String("scenario_id", req.ScenarioID))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.DeleteScenarioResponse{}, err
	}
	id, err := parseID("scenario_id", req.ScenarioID)
	if err != nil {
		return dto.DeleteScenarioResponse{}, err
	}

	now := time.Now().UTC()

	// 1. Load, so we know whether a successor is needed.
	scenario, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return dto.DeleteScenarioResponse{}, fmt.Errorf("find scenario: %w", err)
	}
	propertyID := scenario.PropertyID()

	// 2. Delete.
	if err := uc.repo.Delete(ctx, id); err != nil {
		return dto.DeleteScenarioResponse{}, fmt.Errorf("delete scenario: %w", err)
	}
	uc.metrics.ScenarioWritten("delete")

	var collected events.EventCollector
	collected.Record(event.NewScenarioDeleted(id.String(), propertyID.String(), scenario.IsPrimary()))
	resp := dto.DeleteScenarioResponse{Deleted: true}

	// 3. Promote the oldest survivor.
	if scenario.IsPrimary() {
		remaining, err := uc.repo.ListByProperty(ctx, propertyID)
		if err != nil {
			return dto.DeleteScenarioResponse{}, fmt.Errorf("list scenarios: %w", err)
		}
		if len(remaining) == 0 {
			uc.summary.invalidate(ctx, propertyID)
		} else {
			oldest := remaining[0]
			for _, s := range remaining[1:] {
				if s.CreatedAt().Before(oldest.CreatedAt()) {
					oldest = s
				}
			}
			promoted := oldest.MarkPrimary(now)
			if err := uc.repo.Save(ctx, promoted); err != nil {
				return dto.DeleteScenarioResponse{}, fmt.Errorf("promote scenario: %w", err)
			}
			uc.metrics.ScenarioWritten("promote")
			if err := uc.summary.sync(ctx, promoted, now); err != nil {
				return dto.DeleteScenarioResponse{}, err
			}
			collected.Record(promoted.DomainEvents()...)
			resp.PromotedScenarioID = promoted.ID().String()
		}
	}

	// 4. Publish domain events.
	if err := uc.publisher.Publish(ctx, collected.Drain()...); err != nil {
		return dto.DeleteScenarioResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return resp, nil
}
