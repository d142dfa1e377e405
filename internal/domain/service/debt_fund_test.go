package service_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/service"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

func TestQualifyForCoveyDebt_FixAndFlip(t *testing.T) {
	in := model.DefaultInputs(valueobject.InvestmentTypeFixAndFlip)
	in.PurchasePrice = 200_000
	in.AfterRepairValue = 280_000

	// NOI is irrelevant for flips, even when negative.
	q := service.QualifyForCoveyDebt(in, -5_000)

	assert.True(t, q.Eligible)
	assert.Empty(t, q.Reason)
	assert.Equal(t, "N/A", q.DSCRTier)
	assert.Equal(t, 10.0, q.AdjustedRate)
	assert.Equal(t, 140_000.0, q.MaxLoan)
	require.NotNil(t, q.Terms)
	assert.Equal(t, 70.0, q.Terms.MaxLTV)
	assert.Equal(t, 18, q.Terms.TermMonths)
	assert.True(t, q.Terms.InterestOnly)
}

func TestQualifyForCoveyDebt_DSCRTiers(t *testing.T) {
	// Max loan 243,750 at 8% interest only: 19,500 a year.
	tests := []struct {
		name  string
		noi   float64
		rate  float64
		label string
	}{
		{"strong coverage", 30_000, 7.5, "-50bps (DSCR >= 1.5x)"},
		{"exactly 1.5x", 29_250, 7.5, "-50bps (DSCR >= 1.5x)"},
		{"good coverage", 26_000, 7.75, "-25bps (DSCR >= 1.3x)"},
		{"minimum coverage", 22_000, 8.0, "+0bps (DSCR >= 1.1x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := service.QualifyForCoveyDebt(longTermRentalDeal(), tt.noi)

			require.True(t, q.Eligible, q.Reason)
			assert.InDelta(t, tt.rate, q.AdjustedRate, 1e-9)
			assert.Equal(t, tt.label, q.DSCRTier)
			assert.Equal(t, 243_750.0, q.MaxLoan)
			require.NotNil(t, q.Terms)
			assert.Equal(t, 8.0, q.Terms.BaseRate)
		})
	}
}

func TestQualifyForCoveyDebt_DSCRBelowMinimum(t *testing.T) {
	in := longTermRentalDeal()
	r := service.RunUnderwriting(in)

	// 21,000 NOI against 19,500 of fund debt service.
	q := service.QualifyForCoveyDebt(in, r.NOI)

	assert.False(t, q.Eligible)
	assert.Equal(t, "DSCR 1.08x is below 1.1x minimum", q.Reason)
	assert.Nil(t, q.Terms)
	assert.Empty(t, q.DSCRTier)

	q = service.QualifyForCoveyDebt(in, 15_000)
	assert.False(t, q.Eligible)
	assert.Contains(t, q.Reason, "0.77x")
	assert.Contains(t, q.Reason, "1.1x")
}

func TestQualifyForCoveyDebt_ShortTermRental(t *testing.T) {
	in := shortTermRentalDeal()
	r := service.RunUnderwriting(in)

	q := service.QualifyForCoveyDebt(in, r.NOI)

	require.True(t, q.Eligible, q.Reason)
	assert.Equal(t, 280_000.0, q.MaxLoan)
	require.NotNil(t, q.Terms)
	assert.Equal(t, 9.0, q.Terms.BaseRate)
	assert.Equal(t, 25, q.Terms.AmortYears)
}

func TestQualifyForCoveyDebt_Ineligible(t *testing.T) {
	var unknown valueobject.InvestmentType
	require.NoError(t, json.Unmarshal([]byte(`"Land Bank"`), &unknown))

	tests := []struct {
		name   string
		mutate func(*model.PropertyInputs)
		reason string
	}{
		{
			name:   "unsupported type",
			mutate: func(in *model.PropertyInputs) { in.Type = unknown },
			reason: "Unsupported investment type",
		},
		{
			name:   "missing type",
			mutate: func(in *model.PropertyInputs) { in.Type = valueobject.InvestmentType{} },
			reason: "Unsupported investment type",
		},
		{
			name:   "no purchase price",
			mutate: func(in *model.PropertyInputs) { in.PurchasePrice = 0 },
			reason: "Purchase price required",
		},
		{
			name:   "negative purchase price",
			mutate: func(in *model.PropertyInputs) { in.PurchasePrice = -1 },
			reason: "Purchase price required",
		},
		{
			name:   "loan rounds to zero",
			mutate: func(in *model.PropertyInputs) { in.PurchasePrice = 0.5 },
			reason: "Loan amount would be zero",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := longTermRentalDeal()
			tt.mutate(&in)

			q := service.QualifyForCoveyDebt(in, 50_000)

			assert.False(t, q.Eligible)
			assert.Equal(t, tt.reason, q.Reason)
			assert.Nil(t, q.Terms)
		})
	}
}

func TestQualifyForCoveyDebt_LegacyLongTermHold(t *testing.T) {
	typ, err := valueobject.NewInvestmentType("Long Term Hold")
	require.NoError(t, err)

	in := longTermRentalDeal()
	in.Type = typ

	q := service.QualifyForCoveyDebt(in, 30_000)
	assert.True(t, q.Eligible)
}

func TestMaxCoveyLoan_Rounds(t *testing.T) {
	terms, ok := service.CoveyDebtTerms(valueobject.InvestmentTypeLongTermRental)
	require.True(t, ok)

	assert.Equal(t, 75.0, service.MaxCoveyLoan(100.66, terms))
	assert.Equal(t, 76.0, service.MaxCoveyLoan(101, terms))
}

func TestApplyCoveyDebtTerms_LongTermRental(t *testing.T) {
	in := longTermRentalDeal()
	q := service.QualifyForCoveyDebt(in, 30_000)
	require.True(t, q.Eligible)

	out := service.ApplyCoveyDebtTerms(in, q)

	assert.True(t, out.FinancingSource.IsCoveyDebt())
	assert.Equal(t, 243_750.0, out.LoanAmount)
	assert.Equal(t, 7.5, out.InterestRate)
	assert.Equal(t, 5, out.LoanTermYears)
	assert.Equal(t, 30, out.AmortizationYears)
	assert.False(t, out.InterestOnly)

	// Only financing fields move.
	assert.Equal(t, in.PurchasePrice, out.PurchasePrice)
	assert.Equal(t, in.GrossMonthlyRent, out.GrossMonthlyRent)
	assert.Equal(t, in.HoldPeriodYears, out.HoldPeriodYears)

	// The input is left untouched.
	assert.False(t, in.FinancingSource.IsCoveyDebt())
	assert.Equal(t, 6.5, in.InterestRate)
}

func TestApplyCoveyDebtTerms_FixAndFlip(t *testing.T) {
	in := flipDeal()
	in.LoanAmount = 0
	in.InterestOnly = false
	in.AmortizationYears = 15

	q := service.QualifyForCoveyDebt(in, 0)
	out := service.ApplyCoveyDebtTerms(in, q)

	assert.Equal(t, 140_000.0, out.LoanAmount)
	assert.Equal(t, 10.0, out.InterestRate)
	// 18 months rounds up to 2 years.
	assert.Equal(t, 2, out.LoanTermYears)
	assert.Equal(t, 30, out.AmortizationYears)
	assert.True(t, out.InterestOnly)
}

func TestApplyCoveyDebtTerms_IneligibleIsNoOp(t *testing.T) {
	in := longTermRentalDeal()

	assert.Equal(t, in, service.ApplyCoveyDebtTerms(in, model.DebtQualification{Eligible: false, Reason: "x"}))
	assert.Equal(t, in, service.ApplyCoveyDebtTerms(in, model.DebtQualification{Eligible: true}))
}

func TestApplyCoveyDebtTerms_RequiresRerun(t *testing.T) {
	in := longTermRentalDeal()
	before := service.RunUnderwriting(in)

	q := service.QualifyForCoveyDebt(in, 30_000)
	out := service.ApplyCoveyDebtTerms(in, q)
	after := service.RunUnderwriting(out)

	assert.Equal(t, before.NOI, after.NOI)
	assert.NotEqual(t, before.AnnualDebtService, after.AnnualDebtService)
	// 243,750 at 7.5% over 30 years.
	assert.InDelta(t, 1_704.34, after.MonthlyDebtService, 0.01)
}

func TestSpreadTierLabel(t *testing.T) {
	assert.Equal(t, "-50bps (DSCR >= 1.5x)", service.SpreadTierLabel(model.DSCRSpreadTier{MinDSCR: 1.5, SpreadBps: -50}))
	assert.Equal(t, "+0bps (DSCR >= 1.1x)", service.SpreadTierLabel(model.DSCRSpreadTier{MinDSCR: 1.1, SpreadBps: 0}))
	assert.Equal(t, "+25bps", service.SpreadTierLabel(model.DSCRSpreadTier{MinDSCR: 1.0, SpreadBps: 25}))
}

func TestDSCRSpreadTiers_DescendingAndCopied(t *testing.T) {
	tiers := service.DSCRSpreadTiers()
	require.Len(t, tiers, 3)
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i-1].MinDSCR, tiers[i].MinDSCR)
	}

	tiers[0].SpreadBps = 999
	assert.Equal(t, -50, service.DSCRSpreadTiers()[0].SpreadBps)
}
