package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kvm55/Covey/internal/domain/event"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

// ErrScenarioNotFound is returned by repositories when no scenario matches.
var ErrScenarioNotFound = errors.New("scenario not found")

// ErrInvalidScenario wraps every rule a scenario mutation can break.
var ErrInvalidScenario = errors.New("invalid scenario")

const maxScenarioNameLength = 120

// Calculator produces underwriting results for a set of inputs.
type Calculator func(PropertyInputs) UnderwritingResults

// ---------------------------------------------------------------------------
// Scenario aggregate root
// ---------------------------------------------------------------------------

// Scenario is a named pair of underwriting inputs and the results the engine
// produced for them, attached to a property. At most one scenario per property
// is primary. Scenario is immutable; mutations return a new copy.
type Scenario struct {
	id           uuid.UUID
	propertyID   uuid.UUID
	unitID       *uuid.UUID
	name         string
	strategyType valueobject.StrategyType
	inputs       PropertyInputs
	results      UnderwritingResults
	isPrimary    bool
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewScenario creates a scenario for a property. An empty name falls back to
// the strategy's default scenario name.
func NewScenario(
	propertyID uuid.UUID,
	unitID *uuid.UUID,
	name string,
	strategyType valueobject.StrategyType,
	inputs PropertyInputs,
	results UnderwritingResults,
	isPrimary bool,
	now time.Time,
) (Scenario, error) {
	if propertyID == uuid.Nil {
		return Scenario{}, fmt.Errorf("%w: property ID is required", ErrInvalidScenario)
	}
	if strategyType.IsZero() {
		return Scenario{}, fmt.Errorf("%w: strategy type is required", ErrInvalidScenario)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = strategyType.DefaultScenarioName()
	}
	if len(name) > maxScenarioNameLength {
		return Scenario{}, fmt.Errorf("%w: scenario name is too long", ErrInvalidScenario)
	}

	s := Scenario{
		id:           uuid.New(),
		propertyID:   propertyID,
		unitID:       unitID,
		name:         name,
		strategyType: strategyType,
		inputs:       inputs,
		results:      results,
		isPrimary:    isPrimary,
		createdAt:    now,
		updatedAt:    now,
	}

	s.domainEvents = append(s.domainEvents, event.NewScenarioCreated(
		s.id.String(), propertyID.String(), name, strategyType.String(),
		inputs.FinancingSource.String(), isPrimary, results.IRR, results.CapRate,
	))

	return s, nil
}

// ReconstructScenario rebuilds a Scenario aggregate from persistence.
func ReconstructScenario(
	id, propertyID uuid.UUID,
	unitID *uuid.UUID,
	name string,
	strategyType valueobject.StrategyType,
	inputs PropertyInputs,
	results UnderwritingResults,
	isPrimary bool,
	createdAt, updatedAt time.Time,
) Scenario {
	return Scenario{
		id:           id,
		propertyID:   propertyID,
		unitID:       unitID,
		name:         name,
		strategyType: strategyType,
		inputs:       inputs,
		results:      results,
		isPrimary:    isPrimary,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Rename changes the scenario's display name.
func (s Scenario) Rename(name string, now time.Time) (Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, fmt.Errorf("%w: scenario name is required", ErrInvalidScenario)
	}
	if len(name) > maxScenarioNameLength {
		return s, fmt.Errorf("%w: scenario name is too long", ErrInvalidScenario)
	}
	if name == s.name {
		return s, nil
	}

	next := s
	next.name = name
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewScenarioRenamed(s.id.String(), s.propertyID.String(), name))
	return next, nil
}

// Recalculate replaces the inputs and re-runs calc over them. The strategy
// follows the inputs' investment type.
func (s Scenario) Recalculate(inputs PropertyInputs, calc Calculator, now time.Time) (Scenario, error) {
	if calc == nil {
		return s, fmt.Errorf("%w: calculator is required", ErrInvalidScenario)
	}
	strategy, err := valueobject.ToStrategyType(inputs.Type)
	if err != nil {
		return s, err
	}
	results := calc(inputs)

	next := s
	next.inputs = inputs
	next.results = results
	next.strategyType = strategy
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewScenarioRecalculated(
		s.id.String(), s.propertyID.String(), inputs.FinancingSource.String(),
		results.NOI, results.IRR, results.DSCR,
	))
	return next, nil
}

// MarkPrimary makes this scenario its property's primary.
func (s Scenario) MarkPrimary(now time.Time) Scenario {
	if s.isPrimary {
		return s
	}
	next := s
	next.isPrimary = true
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewScenarioPromoted(s.id.String(), s.propertyID.String()))
	return next
}

// ClearPrimary demotes the scenario. No event is recorded; the sibling that is
// promoted in its place records one.
func (s Scenario) ClearPrimary(now time.Time) Scenario {
	if !s.isPrimary {
		return s
	}
	next := s
	next.isPrimary = false
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s Scenario) ID() uuid.UUID                          { return s.id }
func (s Scenario) PropertyID() uuid.UUID                  { return s.propertyID }
func (s Scenario) UnitID() *uuid.UUID                     { return s.unitID }
func (s Scenario) Name() string                           { return s.name }
func (s Scenario) StrategyType() valueobject.StrategyType { return s.strategyType }
func (s Scenario) Inputs() PropertyInputs                 { return s.inputs }
func (s Scenario) Results() UnderwritingResults           { return s.results }
func (s Scenario) IsPrimary() bool                        { return s.isPrimary }
func (s Scenario) CreatedAt() time.Time                   { return s.createdAt }
func (s Scenario) UpdatedAt() time.Time                   { return s.updatedAt }
func (s Scenario) DomainEvents() []event.DomainEvent      { return s.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (s Scenario) ClearEvents() Scenario {
	next := s
	next.domainEvents = nil
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if src == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(src))
	copy(out, src)
	return out
}
