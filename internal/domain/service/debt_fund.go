package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Covey debt fund – lending terms and qualification rules
// ---------------------------------------------------------------------------

const (
	minDSCR = 1.1

	// Interest-only tiers still record a nominal amortization so a later
	// switch to amortizing terms has a sensible baseline.
	nominalAmortYears = 30

	dscrTierNotApplicable = "N/A"

	reasonUnsupportedType  = "Unsupported investment type"
	reasonPurchasePrice    = "Purchase price required"
	reasonZeroLoan         = "Loan amount would be zero"
	reasonDSCRBelowMinimum = "DSCR %.2fx is below 1.1x minimum"
)

var coveyDebtTerms = map[valueobject.StrategyType]model.DebtFundTerms{
	valueobject.StrategyLongTermRental: {
		MaxLTV:     75,
		BaseRate:   8.0,
		AmortYears: 30,
		IOYears:    2,
		TermYears:  5,
	},
	valueobject.StrategyFixAndFlip: {
		MaxLTV:       70,
		BaseRate:     10.0,
		IOYears:      18,
		TermMonths:   18,
		InterestOnly: true,
	},
	valueobject.StrategyShortTermRental: {
		MaxLTV:     70,
		BaseRate:   9.0,
		AmortYears: 25,
		IOYears:    1,
		TermYears:  5,
	},
}

// Descending by MinDSCR; the first tier the deal clears wins.
var dscrSpreadTiers = []model.DSCRSpreadTier{
	{MinDSCR: 1.5, SpreadBps: -50},
	{MinDSCR: 1.3, SpreadBps: -25},
	{MinDSCR: minDSCR, SpreadBps: 0},
}

// CoveyDebtTerms returns the fund's lending terms for an archetype.
func CoveyDebtTerms(t valueobject.InvestmentType) (model.DebtFundTerms, bool) {
	strategy, err := valueobject.ToStrategyType(t)
	if err != nil {
		return model.DebtFundTerms{}, false
	}
	terms, ok := coveyDebtTerms[strategy]
	return terms, ok
}

// DSCRSpreadTiers returns a copy of the rate spread table.
func DSCRSpreadTiers() []model.DSCRSpreadTier {
	out := make([]model.DSCRSpreadTier, len(dscrSpreadTiers))
	copy(out, dscrSpreadTiers)
	return out
}

// MaxCoveyLoan is the purchase price at the tier's max LTV, rounded to the
// nearest whole dollar.
func MaxCoveyLoan(purchasePrice float64, terms model.DebtFundTerms) float64 {
	return math.Round(purchasePrice * (terms.MaxLTV / 100))
}

// QualifyForCoveyDebt decides whether a deal can be financed by the debt fund
// and at what rate. noi is the deal's current NOI from RunUnderwriting.
//
// Rentals are priced by the DSCR they would have at the tier's base rate on
// the maximum loan, using interest-only debt service:
//
//	DSCR >= 1.5  -> base - 50 bps
//	DSCR >= 1.3  -> base - 25 bps
//	DSCR >= 1.1  -> base
//	DSCR <  1.1  -> ineligible
//
// Flips skip the DSCR check and always get the base rate.
func QualifyForCoveyDebt(in model.PropertyInputs, noi float64) model.DebtQualification {
	terms, ok := CoveyDebtTerms(in.Type)
	if !ok {
		return ineligible(reasonUnsupportedType)
	}

	if in.PurchasePrice <= 0 {
		return ineligible(reasonPurchasePrice)
	}

	maxLoan := MaxCoveyLoan(in.PurchasePrice, terms)
	if maxLoan <= 0 {
		return ineligible(reasonZeroLoan)
	}

	if in.IsFlip() {
		return model.DebtQualification{
			Eligible:     true,
			Terms:        &terms,
			AdjustedRate: terms.BaseRate,
			DSCRTier:     dscrTierNotApplicable,
			MaxLoan:      maxLoan,
		}
	}

	annualDebtService := maxLoan * (terms.BaseRate / 100 / 12) * 12
	var estimatedDSCR float64
	if annualDebtService > 0 {
		estimatedDSCR = noi / annualDebtService
	}

	tier, ok := matchSpreadTier(estimatedDSCR)
	if !ok {
		return ineligible(fmt.Sprintf(reasonDSCRBelowMinimum, estimatedDSCR))
	}

	return model.DebtQualification{
		Eligible:     true,
		Terms:        &terms,
		AdjustedRate: terms.BaseRate + float64(tier.SpreadBps)/100,
		DSCRTier:     SpreadTierLabel(tier),
		MaxLoan:      maxLoan,
	}
}

// ApplyCoveyDebtTerms rewrites the financing fields of in to the fund's terms.
// Ineligible qualifications return in unchanged. The returned inputs must be
// run through RunUnderwriting again; nothing else is recomputed here.
func ApplyCoveyDebtTerms(in model.PropertyInputs, q model.DebtQualification) model.PropertyInputs {
	if !q.Eligible || q.Terms == nil {
		return in
	}
	terms := *q.Terms

	out := in
	out.FinancingSource = valueobject.FinancingCoveyDebt
	out.LoanAmount = MaxCoveyLoan(in.PurchasePrice, terms)
	out.InterestRate = q.AdjustedRate
	out.InterestOnly = terms.InterestOnly

	out.LoanTermYears = terms.TermYears
	if terms.TermMonths > 0 {
		out.LoanTermYears = (terms.TermMonths + 11) / 12
	}

	out.AmortizationYears = terms.AmortYears
	if terms.InterestOnly {
		out.AmortizationYears = nominalAmortYears
	}

	return out
}

// SpreadTierLabel renders a tier the way it is shown next to the rate, for
// example "-50bps (DSCR >= 1.5x)".
func SpreadTierLabel(tier model.DSCRSpreadTier) string {
	threshold := strconv.FormatFloat(tier.MinDSCR, 'f', -1, 64)
	switch {
	case tier.SpreadBps < 0:
		return fmt.Sprintf("%dbps (DSCR >= %sx)", tier.SpreadBps, threshold)
	case tier.SpreadBps == 0:
		return fmt.Sprintf("+0bps (DSCR >= %sx)", threshold)
	default:
		return fmt.Sprintf("+%dbps", tier.SpreadBps)
	}
}

func matchSpreadTier(dscr float64) (model.DSCRSpreadTier, bool) {
	for _, tier := range dscrSpreadTiers {
		if dscr >= tier.MinDSCR {
			return tier, true
		}
	}
	return model.DSCRSpreadTier{}, false
}

func ineligible(reason string) model.DebtQualification {
	return model.DebtQualification{Eligible: false, Reason: reason}
}
