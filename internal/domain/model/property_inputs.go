package model

import (
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// PropertyInputs – one underwriting scenario's assumptions
// ---------------------------------------------------------------------------

// PropertyInputs is the flat input record for one underwriting run. Exactly
// one archetype (Type) is active per record; fields that belong to another
// archetype may be populated and are ignored by the engine:
//
//   - Long Term Rental: GrossMonthlyRent, OtherMonthlyIncome, VacancyRate, Management.
//   - Fix and Flip: AfterRepairValue, MonthsToComplete, HoldingCostsMonthly.
//   - Short Term Rental: AvgNightlyRate, OccupancyRate, CleaningFeePerStay,
//     AvgStayDuration, STRPlatformFee, STRManagement (Management and VacancyRate ignored).
//
// All percentages are whole numbers (6.5 means 6.5%). Missing numeric fields
// must be normalised to zero by the caller. The validate tags bound the
// period fields for requests arriving over a transport; the engine itself
// clamps to the same limits.
type PropertyInputs struct {
	// Property descriptors
	StreetAddress string                     `json:"streetAddress" yaml:"streetAddress"`
	City          string                     `json:"city" yaml:"city"`
	State         string                     `json:"state" yaml:"state"`
	Zip           string                     `json:"zip" yaml:"zip"`
	Type          valueobject.InvestmentType `json:"type" yaml:"type"`
	Bedrooms      int                        `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms     float64                    `json:"bathrooms" yaml:"bathrooms"`
	SquareFeet    int                        `json:"squareFeet" yaml:"squareFeet"`
	Units         int                        `json:"units" yaml:"units" validate:"gte=0"`
	ImageURL      string                     `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`

	// Acquisition
	PurchasePrice float64 `json:"purchasePrice" yaml:"purchasePrice"`
	ClosingCosts  float64 `json:"closingCosts" yaml:"closingCosts"`
	Renovations   float64 `json:"renovations" yaml:"renovations"`
	Reserves      float64 `json:"reserves" yaml:"reserves"`

	// Debt terms
	LoanAmount        float64                     `json:"loanAmount" yaml:"loanAmount"`
	InterestRate      float64                     `json:"interestRate" yaml:"interestRate"`
	LoanTermYears     int                         `json:"loanTermYears" yaml:"loanTermYears" validate:"gte=0,lte=50"`
	AmortizationYears int                         `json:"amortizationYears" yaml:"amortizationYears" validate:"gte=0,lte=50"`
	InterestOnly      bool                        `json:"interestOnly" yaml:"interestOnly"`
	FinancingSource   valueobject.FinancingSource `json:"financingSource" yaml:"financingSource"`

	// Income
	GrossMonthlyRent   float64 `json:"grossMonthlyRent" yaml:"grossMonthlyRent"`
	OtherMonthlyIncome float64 `json:"otherMonthlyIncome" yaml:"otherMonthlyIncome"`
	VacancyRate        float64 `json:"vacancyRate" yaml:"vacancyRate"`

	// Expenses (annual)
	PropertyTaxes float64 `json:"propertyTaxes" yaml:"propertyTaxes"`
	Insurance     float64 `json:"insurance" yaml:"insurance"`
	Maintenance   float64 `json:"maintenance" yaml:"maintenance"`
	Management    float64 `json:"management" yaml:"management"`
	Utilities     float64 `json:"utilities" yaml:"utilities"`
	OtherExpenses float64 `json:"otherExpenses" yaml:"otherExpenses"`

	// Disposition
	HoldPeriodYears    int     `json:"holdPeriodYears" yaml:"holdPeriodYears" validate:"gte=0,lte=100"`
	AnnualAppreciation float64 `json:"annualAppreciation" yaml:"annualAppreciation"`
	AnnualRentGrowth   float64 `json:"annualRentGrowth" yaml:"annualRentGrowth"`
	SellingCosts       float64 `json:"sellingCosts" yaml:"sellingCosts"`
	ExitCapRate        float64 `json:"exitCapRate" yaml:"exitCapRate"`

	// Fix and Flip
	AfterRepairValue    float64 `json:"afterRepairValue" yaml:"afterRepairValue"`
	MonthsToComplete    int     `json:"monthsToComplete" yaml:"monthsToComplete" validate:"gte=0,lte=1200"`
	HoldingCostsMonthly float64 `json:"holdingCostsMonthly" yaml:"holdingCostsMonthly"`

	// Short Term Rental
	AvgNightlyRate     float64 `json:"avgNightlyRate" yaml:"avgNightlyRate"`
	OccupancyRate      float64 `json:"occupancyRate" yaml:"occupancyRate"`
	CleaningFeePerStay float64 `json:"cleaningFeePerStay" yaml:"cleaningFeePerStay"`
	AvgStayDuration    float64 `json:"avgStayDuration" yaml:"avgStayDuration"`
	STRPlatformFee     float64 `json:"strPlatformFee" yaml:"strPlatformFee"`
	STRManagement      float64 `json:"strManagement" yaml:"strManagement"`
}

// Upper bounds on the period fields.
const (
	MaxHoldPeriodYears  = 100
	MaxMonthsToComplete = 1200
	MaxLoanYears        = 50
)

// IsFlip reports whether the Fix and Flip branches apply.
func (in PropertyInputs) IsFlip() bool {
	return in.Type.Equal(valueobject.InvestmentTypeFixAndFlip)
}

// IsShortTermRental reports whether the short-term rental branches apply.
func (in PropertyInputs) IsShortTermRental() bool {
	return in.Type.Equal(valueobject.InvestmentTypeShortTermRental)
}
