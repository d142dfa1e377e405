package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/event"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/port"
	"github.com/kvm55/Covey/internal/domain/service"
	"github.com/kvm55/Covey/pkg/events"
	"github.com/kvm55/Covey/pkg/observability"
)

const coveyScenarioNameFormat = "Covey Debt Fund - Scenario %d"

// CreateCoveyDebtScenarioUseCase qualifies an existing scenario for the debt
// fund and, when it qualifies, saves a non-primary copy re-run on fund terms.
type CreateCoveyDebtScenarioUseCase struct {
	repo      port.ScenarioRepository
	publisher port.EventPublisher
	engine    *service.UnderwritingEngine
	metrics   port.UnderwritingMetrics
}

func NewCreateCoveyDebtScenarioUseCase(
	repo port.ScenarioRepository,
	publisher port.EventPublisher,
	engine *service.UnderwritingEngine,
	metrics port.UnderwritingMetrics,
) *CreateCoveyDebtScenarioUseCase {
	return &CreateCoveyDebtScenarioUseCase{
		repo:      repo,
		publisher: publisher,
		engine:    engine,
		metrics:   metrics,
	}
}

func (uc *CreateCoveyDebtScenarioUseCase) Execute(
	ctx context.Context,
	req dto.CreateCoveyDebtScenarioRequest,
) (dto.CreateCoveyDebtScenarioResponse, error) {
	ctx, span := observability.StartSpan(ctx, "usecase.CreateCoveyDebtScenario",
		attribute.String("scenario_id", req.SourceScenarioID))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.CreateCoveyDebtScenarioResponse{}, err
	}
	sourceID, err := parseID("source_scenario_id", req.SourceScenarioID)
	if err != nil {
		return dto.CreateCoveyDebtScenarioResponse{}, err
	}

	now := time.Now().UTC()

	// 1. Load the source scenario.
	source, err := uc.repo.FindByID(ctx, sourceID)
	if err != nil {
		return dto.CreateCoveyDebtScenarioResponse{}, fmt.Errorf("find scenario: %w", err)
	}
	inputs := source.Inputs()

	// 2. Qualify on the NOI the source scenario already reports.
	q := service.QualifyForCoveyDebt(inputs, source.Results().NOI)
	uc.metrics.ObserveQualification(inputs.Type.String(), q.Eligible)
	if !q.Eligible {
		return dto.CreateCoveyDebtScenarioResponse{Success: false, Reason: q.Reason, Qualification: q}, nil
	}

	// 3. Re-underwrite on fund terms.
	coveyInputs := service.ApplyCoveyDebtTerms(inputs, q)
	start := time.Now()
	coveyResults := uc.engine.Run(coveyInputs)
	uc.metrics.ObserveRun(coveyInputs.Type.String(), time.Since(start))

	// 4. Name it after the property's scenario count.
	existing, err := uc.repo.ListByProperty(ctx, source.PropertyID())
	if err != nil {
		return dto.CreateCoveyDebtScenarioResponse{}, fmt.Errorf("list scenarios: %w", err)
	}
	name := fmt.Sprintf(coveyScenarioNameFormat, len(existing)+1)

	scenario, err := model.NewScenario(
		source.PropertyID(), source.UnitID(), name, source.StrategyType(),
		coveyInputs, coveyResults, false, now,
	)
	if err != nil {
		return dto.CreateCoveyDebtScenarioResponse{}, fmt.Errorf("create scenario: %w", err)
	}

	// 5. Persist.
	if err := uc.repo.Save(ctx, scenario); err != nil {
		return dto.CreateCoveyDebtScenarioResponse{}, fmt.Errorf("save scenario: %w", err)
	}
	uc.metrics.ScenarioWritten("covey_debt")

	// 6. Publish domain events.
	var collected events.EventCollector
	collected.Record(scenario.DomainEvents()...)
	collected.Record(event.NewCoveyDebtApplied(
		scenario.ID().String(), scenario.PropertyID().String(),
		coveyInputs.LoanAmount, q.AdjustedRate, q.DSCRTier,
	))
	if err := uc.publisher.Publish(ctx, collected.Drain()...); err != nil {
		return dto.CreateCoveyDebtScenarioResponse{}, fmt.Errorf("publish events: %w", err)
	}

	resp := toScenarioResponse(scenario)
	return dto.CreateCoveyDebtScenarioResponse{
		Success:       true,
		Qualification: q,
		Scenario:      &resp,
	}, nil
}
