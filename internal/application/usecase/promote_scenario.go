package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/port"
	"github.com/kvm55/Covey/pkg/observability"
)

// PromoteScenarioUseCase makes a scenario its property's primary and copies
// its summary onto the property.
type PromoteScenarioUseCase struct {
	repo      port.ScenarioRepository
	summary   summarySync
	publisher port.EventPublisher
	metrics   port.UnderwritingMetrics
}

func NewPromoteScenarioUseCase(
	repo port.ScenarioRepository,
	summaries port.PropertySummaryRepository,
	cache port.SummaryCache,
	publisher port.EventPublisher,
	metrics port.UnderwritingMetrics,
) *PromoteScenarioUseCase {
	return &PromoteScenarioUseCase{
		repo:      repo,
		summary:   summarySync{summaries: summaries, cache: cache},
		publisher: publisher,
		metrics:   metrics,
	}
}

func (uc *PromoteScenarioUseCase) Execute(ctx context.Context, req dto.ScenarioIDRequest) (dto.ScenarioResponse, error) {
	ctx, span := observability.StartSpan(ctx, "usecase.PromoteScenario",
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

	scenario, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("find scenario: %w", err)
	}

	scenario = scenario.MarkPrimary(now)
	if err := uc.repo.Save(ctx, scenario); err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("save scenario: %w", err)
	}
	uc.metrics.ScenarioWritten("promote")

	if err := uc.summary.sync(ctx, scenario, now); err != nil {
		return dto.ScenarioResponse{}, err
	}

	if err := uc.publisher.Publish(ctx, scenario.DomainEvents()...); err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toScenarioResponse(scenario), nil
}
