package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/kvm55/Covey/internal/domain/event"
	"github.com/kvm55/Covey/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ScenarioRepository persists and retrieves underwriting scenarios.
// Lookups that match nothing return model.ErrScenarioNotFound.
type ScenarioRepository interface {
	// Save upserts s. Saving a primary scenario demotes every other primary
	// of its property atomically with the write.
	Save(ctx context.Context, s model.Scenario) error
	FindByID(ctx context.Context, id uuid.UUID) (model.Scenario, error)
	// ListByProperty returns the primary scenario first, then the rest oldest first.
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.Scenario, error)
	FindPrimary(ctx context.Context, propertyID uuid.UUID) (model.Scenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PropertySummaryRepository keeps the denormalized primary-scenario summary on
// the property record.
type PropertySummaryRepository interface {
	SaveSummary(ctx context.Context, summary model.PropertySummary) error
	FindSummary(ctx context.Context, propertyID uuid.UUID) (model.PropertySummary, error)
}

// ---------------------------------------------------------------------------
// Cache port
// ---------------------------------------------------------------------------

// SummaryCache holds recently written property summaries. A miss is reported
// with found=false and a nil error.
type SummaryCache interface {
	Get(ctx context.Context, propertyID uuid.UUID) (summary model.PropertySummary, found bool, err error)
	Set(ctx context.Context, summary model.PropertySummary) error
	Invalidate(ctx context.Context, propertyID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
