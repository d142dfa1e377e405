package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kvm55/Covey/internal/domain/valueobject"
)

// ErrPropertyNotFound is returned when a property has no stored summary.
var ErrPropertyNotFound = errors.New("property not found")

// PropertySummary is the denormalized copy of a property's primary scenario
// kept on the property record for listings and the dashboard. Ratios that the
// engine reports as whole percents (cap rate, IRR, NOI margin) are stored as
// fractions here.
type PropertySummary struct {
	PropertyID      uuid.UUID                `json:"property_id"`
	Price           decimal.Decimal          `json:"price"`
	CapRate         float64                  `json:"cap_rate"`
	IRR             float64                  `json:"irr"`
	EquityMultiple  float64                  `json:"equity_multiple"`
	Type            string                   `json:"type"`
	FundStrategy    valueobject.FundStrategy `json:"fund_strategy"`
	Bedrooms        int                      `json:"bedrooms"`
	Bathrooms       float64                  `json:"bathrooms"`
	SquareFeet      int                      `json:"square_feet"`
	Renovations     decimal.Decimal          `json:"renovations"`
	Reserves        decimal.Decimal          `json:"reserves"`
	DebtCosts       decimal.Decimal          `json:"debt_costs"`
	Equity          decimal.Decimal          `json:"equity"`
	LTC             float64                  `json:"ltc"`
	InterestRate    float64                  `json:"interest_rate"`
	Amortization    int                      `json:"amortization"`
	ExitCapRate     float64                  `json:"exit_cap_rate"`
	NetSaleProceeds decimal.Decimal          `json:"net_sale_proceeds"`
	ProfitMultiple  float64                  `json:"profit_multiple"`
	InPlaceRent     decimal.Decimal          `json:"in_place_rent"`
	StabilizedRent  decimal.Decimal          `json:"stabilized_rent"`
	NOIMargin       float64                  `json:"noi_margin"`
	DSCR            float64                  `json:"dscr"`
	FinancingSource string                   `json:"financing_source"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// SummarizeScenario builds the property summary for a primary scenario.
// Rents are only carried for long-term rentals.
func SummarizeScenario(s Scenario, now time.Time) PropertySummary {
	in, r := s.Inputs(), s.Results()

	var rent decimal.Decimal
	if in.Type.Equal(valueobject.InvestmentTypeLongTermRental) {
		rent = decimal.NewFromFloat(in.GrossMonthlyRent)
	}

	return PropertySummary{
		PropertyID:      s.PropertyID(),
		Price:           decimal.NewFromFloat(in.PurchasePrice),
		CapRate:         r.CapRate / 100,
		IRR:             r.IRR / 100,
		EquityMultiple:  r.EquityMultiple,
		Type:            in.Type.String(),
		FundStrategy:    valueobject.FundForStrategy(in.Type.String()),
		Bedrooms:        in.Bedrooms,
		Bathrooms:       in.Bathrooms,
		SquareFeet:      in.SquareFeet,
		Renovations:     decimal.NewFromFloat(in.Renovations),
		Reserves:        decimal.NewFromFloat(in.Reserves),
		DebtCosts:       decimal.NewFromFloat(in.ClosingCosts),
		Equity:          decimal.NewFromFloat(r.TotalEquityRequired).Round(2),
		LTC:             r.LoanToCost,
		InterestRate:    in.InterestRate,
		Amortization:    in.AmortizationYears,
		ExitCapRate:     in.ExitCapRate,
		NetSaleProceeds: decimal.NewFromFloat(r.NetSaleProceeds).Round(2),
		ProfitMultiple:  r.EquityMultiple,
		InPlaceRent:     rent,
		StabilizedRent:  rent,
		NOIMargin:       r.NOIMargin / 100,
		DSCR:            r.DSCR,
		FinancingSource: in.FinancingSource.String(),
		UpdatedAt:       now,
	}
}
