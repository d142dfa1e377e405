package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/port"
)

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", dto.ErrInvalidRequest, field, err)
	}
	return id, nil
}

func parseOptionalID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toScenarioResponse(s model.Scenario) dto.ScenarioResponse {
	resp := dto.ScenarioResponse{
		ID:           s.ID().String(),
		PropertyID:   s.PropertyID().String(),
		Name:         s.Name(),
		StrategyType: s.StrategyType().String(),
		Inputs:       s.Inputs(),
		Results:      s.Results(),
		IsPrimary:    s.IsPrimary(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
	if s.UnitID() != nil {
		resp.UnitID = s.UnitID().String()
	}
	return resp
}

// summarySync writes a primary scenario's summary onto its property and keeps
// the summary cache in step. Cache failures are logged, never returned.
type summarySync struct {
	summaries port.PropertySummaryRepository
	cache     port.SummaryCache
}

func (s summarySync) sync(ctx context.Context, scenario model.Scenario, now time.Time) error {
	summary := model.SummarizeScenario(scenario, now)
	if err := s.summaries.SaveSummary(ctx, summary); err != nil {
		return fmt.Errorf("save property summary: %w", err)
	}
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Set(ctx, summary); err != nil {
		slog.WarnContext(ctx, "summary cache write failed",
			"property_id", summary.PropertyID.String(),
			"error", err,
		)
	}
	return nil
}

func (s summarySync) invalidate(ctx context.Context, propertyID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, propertyID); err != nil {
		slog.WarnContext(ctx, "summary cache invalidate failed",
			"property_id", propertyID.String(),
			"error", err,
		)
	}
}
