package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/port"
	"github.com/kvm55/Covey/internal/domain/service"
	"github.com/kvm55/Covey/pkg/observability"
)

// UpdateScenarioUseCase renames a scenario and/or replaces its inputs.
// Replacing inputs re-runs the engine; hand-edited debt terms on a
// debt-fund scenario switch it back to external financing.
type UpdateScenarioUseCase struct {
	repo      port.ScenarioRepository
	summary   summarySync
	publisher port.EventPublisher
	engine    *service.UnderwritingEngine
	metrics   port.UnderwritingMetrics
}

func NewUpdateScenarioUseCase(
	repo port.ScenarioRepository,
	summaries port.PropertySummaryRepository,
	cache port.SummaryCache,
	publisher port.EventPublisher,
	engine *service.UnderwritingEngine,
	metrics port.UnderwritingMetrics,
) *UpdateScenarioUseCase {
	return &UpdateScenarioUseCase{
		repo:      repo,
		summary:   summarySync{summaries: summaries, cache: cache},
		publisher: publisher,
		engine:    engine,
		metrics:   metrics,
	}
}

func (uc *UpdateScenarioUseCase) Execute(ctx context.Context, req dto.UpdateScenarioRequest) (dto.ScenarioResponse, error) {
	ctx, span := observability.StartSpan(ctx, "usecase.UpdateScenario",
		attribute.String("scenario_id", req.ScenarioID))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.ScenarioResponse{}, err
	}
	id, err := parseID("scenario_id", req.ScenarioID)
	if err != nil {
		return dto.ScenarioResponse{}, err
	}

	now := time.Now().UTC()

	// 1. Load.
	scenario, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("find scenario: %w", err)
	}
	if req.Name == nil && req.Inputs == nil {
		return toScenarioResponse(scenario), nil
	}

	// 2. Apply changes.
	if req.Name != nil {
		scenario, err = scenario.Rename(*req.Name, now)
		if err != nil {
			return dto.ScenarioResponse{}, fmt.Errorf("rename scenario: %w", err)
		}
	}
	if req.Inputs != nil {
		edited := model.RevertFinancingOnManualEdit(scenario.Inputs(), *req.Inputs)
		start := time.Now()
		scenario, err = scenario.Recalculate(edited, uc.engine.Run, now)
		if err != nil {
			return dto.ScenarioResponse{}, fmt.Errorf("recalculate scenario: %w", err)
		}
		uc.metrics.ObserveRun(edited.Type.String(), time.Since(start))
	}

	// 3. Persist.
	if err := uc.repo.Save(ctx, scenario); err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("save scenario: %w", err)
	}
	uc.metrics.ScenarioWritten("update")

	// 4. Keep the property summary current.
	if scenario.IsPrimary() {
		if err := uc.summary.sync(ctx, scenario, now); err != nil {
			return dto.ScenarioResponse{}, err
		}
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, scenario.DomainEvents()...); err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toScenarioResponse(scenario), nil
}
