package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/port"
)

// GetPropertySummaryUseCase reads a property's summary through the cache,
// falling back to the property record on a miss.
type GetPropertySummaryUseCase struct {
	summaries port.PropertySummaryRepository
	cache     port.SummaryCache
}

func NewGetPropertySummaryUseCase(
	summaries port.PropertySummaryRepository,
	cache port.SummaryCache,
) *GetPropertySummaryUseCase {
	return &GetPropertySummaryUseCase{summaries: summaries, cache: cache}
}

func (uc *GetPropertySummaryUseCase) Execute(ctx context.Context, req dto.PropertyIDRequest) (dto.PropertySummaryResponse, error) {
	if err := dto.Validate(req); err != nil {
		return dto.PropertySummaryResponse{}, err
	}
	propertyID, err := parseID("property_id", req.PropertyID)
	if err != nil {
		return dto.PropertySummaryResponse{}, err
	}

	if uc.cache != nil {
		summary, found, cacheErr := uc.cache.Get(ctx, propertyID)
		switch {
		case cacheErr != nil:
			slog.WarnContext(ctx, "summary cache read failed",
				"property_id", propertyID.String(),
				"error", cacheErr,
			)
		case found:
			return dto.PropertySummaryResponse{Summary: summary, Cached: true}, nil
		}
	}

	summary, err := uc.summaries.FindSummary(ctx, propertyID)
	if err != nil {
		return dto.PropertySummaryResponse{}, fmt.Errorf("find property summary: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, summary); err != nil {
			slog.WarnContext(ctx, "summary cache write failed",
				"property_id", propertyID.String(),
				"error", err,
			)
		}
	}
	return dto.PropertySummaryResponse{Summary: summary}, nil
}
