package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPayment returns the level monthly debt service for a fixed-rate loan.
//
// Parameters:
//   - principal:         the loan amount
//   - annualRatePercent: nominal annual rate as a whole percent (6.5 = 6.50%)
//   - amortYears:        amortization period in years
//   - interestOnly:      pay interest only, never principal
//
// The calculation uses:
//
//	monthlyRate = annualRatePercent / 100 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A non-positive principal yields 0, as does a non-positive amortization
// period on an amortizing loan.
func MonthlyPayment(principal, annualRatePercent float64, amortYears int, interestOnly bool) float64 {
	if principal <= 0 {
		return 0
	}
	monthlyRate := annualRatePercent / 100 / 12

	if interestOnly {
		return principal * monthlyRate
	}

	n := float64(amortYears * 12)
	if n <= 0 {
		return 0
	}

	if monthlyRate == 0 {
		// Zero-interest: even split.
		return principal / n
	}

	factor := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * factor / (factor - 1)
}

// LoanBalance returns the outstanding principal after yearsElapsed years of
// level payments. Interest-only loans never amortize.
//
//	balance = P * (1+r)^p - payment * ((1+r)^p - 1) / r,  p = yearsElapsed * 12
func LoanBalance(principal, annualRatePercent float64, amortYears, yearsElapsed int, interestOnly bool) float64 {
	if principal <= 0 {
		return 0
	}
	if interestOnly {
		return principal
	}

	n := float64(amortYears * 12)
	if n <= 0 {
		return principal
	}

	monthlyRate := annualRatePercent / 100 / 12
	p := float64(yearsElapsed * 12)

	if monthlyRate == 0 {
		return principal - (principal/n)*p
	}

	payment := MonthlyPayment(principal, annualRatePercent, amortYears, false)
	growth := math.Pow(1+monthlyRate, p)
	return principal*growth - payment*((growth-1)/monthlyRate)
}

// ---------------------------------------------------------------------------
// Amortization schedule
// ---------------------------------------------------------------------------

// AmortizationEntry is an immutable value object representing one period in an
// amortization schedule.
type AmortizationEntry struct {
	DueDate          time.Time
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// GenerateAmortizationSchedule computes the monthly schedule of a loan over its
// term. Payments are sized on the amortization period (or interest only), so a
// term shorter than the amortization ends with a balloon: the final period
// retires whatever balance remains.
//
// Parameters:
//   - principal:         the loan amount
//   - annualRatePercent: nominal annual rate as a whole percent
//   - amortYears:        amortization period used to size the payment
//   - termMonths:        number of monthly periods in the schedule, capped at MaxLoanYears
//   - interestOnly:      pay interest only until the balloon
//   - startDate:         the date from which the first payment is due (one month later)
func GenerateAmortizationSchedule(
	principal decimal.Decimal,
	annualRatePercent float64,
	amortYears int,
	termMonths int,
	interestOnly bool,
	startDate time.Time,
) []AmortizationEntry {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	termMonths = min(termMonths, MaxLoanYears*12)

	// float64 for the power calculation, decimal for monetary arithmetic.
	paymentFloat := MonthlyPayment(principal.InexactFloat64(), annualRatePercent, amortYears, interestOnly)
	monthlyPayment := decimal.NewFromFloat(paymentFloat).Round(2)
	monthlyRateDec := decimal.NewFromFloat(annualRatePercent / 100 / 12)

	schedule := make([]AmortizationEntry, 0, termMonths)
	remaining := principal

	for period := 1; period <= termMonths; period++ {
		dueDate := startDate.AddDate(0, period, 0)

		interest := remaining.Mul(monthlyRateDec).Round(2)
		principalPart := monthlyPayment.Sub(interest)
		if interestOnly || principalPart.LessThan(decimal.Zero) {
			principalPart = decimal.Zero
		}

		// Last period: balloon so the balance reaches exactly zero.
		if period == termMonths || principalPart.GreaterThan(remaining) {
			principalPart = remaining
		}

		remaining = remaining.Sub(principalPart)

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			DueDate:          dueDate,
			Principal:        principalPart,
			Interest:         interest,
			Total:            principalPart.Add(interest),
			RemainingBalance: remaining,
		})

		if remaining.IsZero() {
			break
		}
	}

	return schedule
}
