package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

func TestSummarizeScenario(t *testing.T) {
	in := model.DefaultInputs(valueobject.InvestmentTypeLongTermRental)
	in.PurchasePrice = 325_000
	in.ClosingCosts = 5_000
	in.GrossMonthlyRent = 2_500
	in.FinancingSource = valueobject.FinancingCoveyDebt

	results := model.UnderwritingResults{
		CapRate:             6.5,
		IRR:                 12,
		EquityMultiple:      1.8,
		NOIMargin:           70,
		DSCR:                1.25,
		LoanToCost:          73.86,
		TotalEquityRequired: 86_250.004,
		NetSaleProceeds:     83_174.0289,
	}

	propertyID := uuid.New()
	s := model.ReconstructScenario(uuid.New(), propertyID, nil, "Base", valueobject.StrategyLongTermRental,
		in, results, true, fixedNow, fixedNow)

	got := model.SummarizeScenario(s, fixedNow)

	assert.Equal(t, propertyID, got.PropertyID)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(325_000)))
	assert.InDelta(t, 0.065, got.CapRate, 1e-12)
	assert.InDelta(t, 0.12, got.IRR, 1e-12)
	assert.InDelta(t, 0.70, got.NOIMargin, 1e-12)
	assert.Equal(t, 1.8, got.ProfitMultiple)
	assert.Equal(t, "Long Term Rental", got.Type)
	assert.Equal(t, valueobject.FundPheasant, got.FundStrategy)
	assert.True(t, got.DebtCosts.Equal(decimal.NewFromInt(5_000)))
	assert.Equal(t, "86250", got.Equity.String())
	assert.Equal(t, "83174.03", got.NetSaleProceeds.String())
	assert.True(t, got.InPlaceRent.Equal(decimal.NewFromInt(2_500)))
	assert.True(t, got.StabilizedRent.Equal(decimal.NewFromInt(2_500)))
	assert.Equal(t, "covey_debt", got.FinancingSource)
	assert.Equal(t, fixedNow, got.UpdatedAt)
}

func TestSummarizeScenario_RentOnlyForLongTermRental(t *testing.T) {
	in := model.DefaultInputs(valueobject.InvestmentTypeFixAndFlip)
	in.GrossMonthlyRent = 1_000

	s := model.ReconstructScenario(uuid.New(), uuid.New(), nil, "Flip", valueobject.StrategyFixAndFlip,
		in, model.UnderwritingResults{}, true, fixedNow, fixedNow)

	got := model.SummarizeScenario(s, fixedNow)

	require.True(t, got.InPlaceRent.IsZero())
	assert.True(t, got.StabilizedRent.IsZero())
	assert.Equal(t, valueobject.FundGrouse, got.FundStrategy)
	assert.Equal(t, "external", got.FinancingSource)
}
