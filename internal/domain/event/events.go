package event

import (
	"github.com/kvm55/Covey/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateScenario = "Scenario"

// ---------------------------------------------------------------------------
// Scenario Events
// ---------------------------------------------------------------------------

// ScenarioCreated is raised when a scenario is first saved for a property.
type ScenarioCreated struct {
	events.BaseEvent
	PropertyID      string  `json:"property_id"`
	Name            string  `json:"name"`
	StrategyType    string  `json:"strategy_type"`
	FinancingSource string  `json:"financing_source"`
	IsPrimary       bool    `json:"is_primary"`
	IRR             float64 `json:"irr"`
	CapRate         float64 `json:"cap_rate"`
}

func NewScenarioCreated(
	scenarioID, propertyID, name, strategyType, financingSource string,
	isPrimary bool, irr, capRate float64,
) ScenarioCreated {
	return ScenarioCreated{
		BaseEvent:       events.NewBaseEvent("underwriting.scenario.created", scenarioID, aggregateScenario),
		PropertyID:      propertyID,
		Name:            name,
		StrategyType:    strategyType,
		FinancingSource: financingSource,
		IsPrimary:       isPrimary,
		IRR:             irr,
		CapRate:         capRate,
	}
}

// ScenarioRecalculated is raised when a scenario's inputs change and the
// engine has been re-run.
type ScenarioRecalculated struct {
	events.BaseEvent
	PropertyID      string  `json:"property_id"`
	FinancingSource string  `json:"financing_source"`
	NOI             float64 `json:"noi"`
	IRR             float64 `json:"irr"`
	DSCR            float64 `json:"dscr"`
}

func NewScenarioRecalculated(scenarioID, propertyID, financingSource string, noi, irr, dscr float64) ScenarioRecalculated {
	return ScenarioRecalculated{
		BaseEvent:       events.NewBaseEvent("underwriting.scenario.recalculated", scenarioID, aggregateScenario),
		PropertyID:      propertyID,
		FinancingSource: financingSource,
		NOI:             noi,
		IRR:             irr,
		DSCR:            dscr,
	}
}

// ScenarioRenamed is raised when only the scenario name changes.
type ScenarioRenamed struct {
	events.BaseEvent
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
}

func NewScenarioRenamed(scenarioID, propertyID, name string) ScenarioRenamed {
	return ScenarioRenamed{
		BaseEvent:  events.NewBaseEvent("underwriting.scenario.renamed", scenarioID, aggregateScenario),
		PropertyID: propertyID,
		Name:       name,
	}
}

// ScenarioPromoted is raised when a scenario becomes its property's primary.
type ScenarioPromoted struct {
	events.BaseEvent
	PropertyID string `json:"property_id"`
}

func NewScenarioPromoted(scenarioID, propertyID string) ScenarioPromoted {
	return ScenarioPromoted{
		BaseEvent:  events.NewBaseEvent("underwriting.scenario.promoted", scenarioID, aggregateScenario),
		PropertyID: propertyID,
	}
}

// ScenarioDeleted is raised after a scenario is removed.
type ScenarioDeleted struct {
	events.BaseEvent
	PropertyID string `json:"property_id"`
	WasPrimary bool   `json:"was_primary"`
}

func NewScenarioDeleted(scenarioID, propertyID string, wasPrimary bool) ScenarioDeleted {
	return ScenarioDeleted{
		BaseEvent:  events.NewBaseEvent("underwriting.scenario.deleted", scenarioID, aggregateScenario),
		PropertyID: propertyID,
		WasPrimary: wasPrimary,
	}
}

// CoveyDebtApplied is raised when a debt-fund comparison scenario is created.
type CoveyDebtApplied struct {
	events.BaseEvent
	PropertyID   string  `json:"property_id"`
	LoanAmount   float64 `json:"loan_amount"`
	AdjustedRate float64 `json:"adjusted_rate"`
	DSCRTier     string  `json:"dscr_tier"`
}

func NewCoveyDebtApplied(scenarioID, propertyID string, loanAmount, adjustedRate float64, dscrTier string) CoveyDebtApplied {
	return CoveyDebtApplied{
		BaseEvent:    events.NewBaseEvent("underwriting.scenario.covey_debt_applied", scenarioID, aggregateScenario),
		PropertyID:   propertyID,
		LoanAmount:   loanAmount,
		AdjustedRate: adjustedRate,
		DSCRTier:     dscrTier,
	}
}
