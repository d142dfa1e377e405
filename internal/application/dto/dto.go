package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kvm55/Covey/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// RunUnderwritingRequest asks for a stateless engine run.
type RunUnderwritingRequest struct {
	Inputs model.PropertyInputs `json:"inputs"`
}

// QualifyCoveyDebtRequest checks a deal against the debt fund. When NOI is
// nil it is taken from an engine run over Inputs.
type QualifyCoveyDebtRequest struct {
	Inputs model.PropertyInputs `json:"inputs"`
	NOI    *float64             `json:"noi,omitempty"`
}

// CreateScenarioRequest carries the data needed to save a new scenario.
// Results are always computed server-side from Inputs.
type CreateScenarioRequest struct {
	PropertyID string               `json:"property_id" validate:"required,uuid"`
	UnitID     string               `json:"unit_id,omitempty" validate:"omitempty,uuid"`
	Name       string               `json:"name,omitempty" validate:"max=120"`
	Inputs     model.PropertyInputs `json:"inputs"`
	IsPrimary  bool                 `json:"is_primary"`
}

// UpdateScenarioRequest renames a scenario and/or replaces its inputs.
type UpdateScenarioRequest struct {
	ScenarioID string                `json:"scenario_id" validate:"required,uuid"`
	Name       *string               `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Inputs     *model.PropertyInputs `json:"inputs,omitempty"`
}

// ScenarioIDRequest identifies a single scenario.
type ScenarioIDRequest struct {
	ScenarioID string `json:"scenario_id" validate:"required,uuid"`
}

// PropertyIDRequest identifies a property.
type PropertyIDRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
}

// CreateCoveyDebtScenarioRequest asks for a debt-fund comparison of an
// existing scenario.
type CreateCoveyDebtScenarioRequest struct {
	SourceScenarioID string `json:"source_scenario_id" validate:"required,uuid"`
}

// GetAmortizationScheduleRequest asks for the monthly debt schedule of a
// scenario. A zero StartDate means today.
type GetAmortizationScheduleRequest struct {
	ScenarioID string    `json:"scenario_id" validate:"required,uuid"`
	StartDate  time.Time `json:"start_date,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// RunUnderwritingResponse wraps engine output.
type RunUnderwritingResponse struct {
	Results model.UnderwritingResults `json:"results"`
}

// QualifyCoveyDebtResponse is the debt-fund decision plus, when eligible, the
// rewritten inputs and their re-run results for comparison.
type QualifyCoveyDebtResponse struct {
	Qualification model.DebtQualification    `json:"qualification"`
	CoveyInputs   *model.PropertyInputs      `json:"covey_inputs,omitempty"`
	CoveyResults  *model.UnderwritingResults `json:"covey_results,omitempty"`
}

// ScenarioResponse is the external representation of a scenario.
type ScenarioResponse struct {
	ID           string                    `json:"id"`
	PropertyID   string                    `json:"property_id"`
	UnitID       string                    `json:"unit_id,omitempty"`
	Name         string                    `json:"name"`
	StrategyType string                    `json:"strategy_type"`
	Inputs       model.PropertyInputs      `json:"inputs"`
	Results      model.UnderwritingResults `json:"results"`
	IsPrimary    bool                      `json:"is_primary"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

// ListScenariosResponse lists a property's scenarios, primary first.
type ListScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

// DeleteScenarioResponse reports which scenario, if any, took over as primary.
type DeleteScenarioResponse struct {
	Deleted            bool   `json:"deleted"`
	PromotedScenarioID string `json:"promoted_scenario_id,omitempty"`
}

// CreateCoveyDebtScenarioResponse reports the outcome of a debt-fund
// comparison. Reason is set when Success is false.
type CreateCoveyDebtScenarioResponse struct {
	Success       bool                    `json:"success"`
	Reason        string                  `json:"reason,omitempty"`
	Qualification model.DebtQualification `json:"qualification"`
	Scenario      *ScenarioResponse       `json:"scenario,omitempty"`
}

// AmortizationEntryResponse represents a single amortization schedule entry.
type AmortizationEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// AmortizationScheduleResponse is the debt schedule of a scenario.
type AmortizationScheduleResponse struct {
	ScenarioID   string                      `json:"scenario_id"`
	LoanAmount   decimal.Decimal             `json:"loan_amount"`
	InterestRate float64                     `json:"interest_rate"`
	InterestOnly bool                        `json:"interest_only"`
	TermMonths   int                         `json:"term_months"`
	Entries      []AmortizationEntryResponse `json:"entries"`
}

// PropertySummaryResponse is the stored primary-scenario summary of a
// property. Cached reports whether it was served from the summary cache.
type PropertySummaryResponse struct {
	Summary model.PropertySummary `json:"summary"`
	Cached  bool                  `json:"cached"`
}
