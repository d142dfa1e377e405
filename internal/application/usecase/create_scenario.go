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
	"github.com/kvm55/Covey/internal/domain/valueobject"
	"github.com/kvm55/Covey/pkg/observability"
)

// CreateScenarioUseCase underwrites a set of inputs and saves them as a new
// scenario on a property.
type CreateScenarioUseCase struct {
	repo      port.ScenarioRepository
	summary   summarySync
	publisher port.EventPublisher
	engine    *service.UnderwritingEngine
	metrics   port.UnderwritingMetrics
}

// NewCreateScenarioUseCase wires dependencies. cache may be nil.
func NewCreateScenarioUseCase(
	repo port.ScenarioRepository,
	summaries port.PropertySummaryRepository,
	cache port.SummaryCache,
	publisher port.EventPublisher,
	engine *service.UnderwritingEngine,
	metrics port.UnderwritingMetrics,
) *CreateScenarioUseCase {
	return &CreateScenarioUseCase{
		repo:      repo,
		summary:   summarySync{summaries: summaries, cache: cache},
		publisher: publisher,
		engine:    engine,
		metrics:   metrics,
	}
}

// Execute creates, persists, and announces a scenario.
func (uc *CreateScenarioUseCase) Execute(ctx context.Context, req dto.CreateScenarioRequest) (dto.ScenarioResponse, error) {
	ctx, span := observability.StartSpan(ctx, "usecase.CreateScenario",
		attribute.String("property_id", req.PropertyID))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.ScenarioResponse{}, err
	}
	propertyID, err := parseID("property_id", req.PropertyID)
	if err != nil {
		return dto.ScenarioResponse{}, err
	}
	unitID, err := parseOptionalID("unit_id", req.UnitID)
	if err != nil {
		return dto.ScenarioResponse{}, err
	}

	now := time.Now().UTC()

	// 1. Resolve the strategy and run the engine.
	strategy, err := valueobject.ToStrategyType(req.Inputs.Type)
	if err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("resolve strategy: %w", err)
	}
	start := time.Now()
	results := uc.engine.Run(req.Inputs)
	uc.metrics.ObserveRun(req.Inputs.Type.String(), time.Since(start))

	// 2. Build the aggregate.
	scenario, err := model.NewScenario(propertyID, unitID, req.Name, strategy, req.Inputs, results, req.IsPrimary, now)
	if err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("create scenario: %w", err)
	}

	// 3. Persist. A primary displaces the current one in the same write.
	if err := uc.repo.Save(ctx, scenario); err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("save scenario: %w", err)
	}
	uc.metrics.ScenarioWritten("create")

	// 4. Sync the property summary.
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
