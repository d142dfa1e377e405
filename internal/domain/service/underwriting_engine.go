package service

import (
	"math"

	"github.com/kvm55/Covey/internal/domain/model"
)

const (
	nightsPerYear = 365

	// Operating expenses grow at a flat 2% a year in the projection.
	expenseGrowthRate = 0.02
)

// ---------------------------------------------------------------------------
// UnderwritingEngine – deterministic deal model
// ---------------------------------------------------------------------------

// UnderwritingEngine converts deal assumptions into return metrics. It holds
// no state and is safe for concurrent use.
type UnderwritingEngine struct{}

// NewUnderwritingEngine returns a new engine instance.
func NewUnderwritingEngine() *UnderwritingEngine {
	return &UnderwritingEngine{}
}

// Run is a method form of RunUnderwriting so callers can depend on an interface.
func (e *UnderwritingEngine) Run(in model.PropertyInputs) model.UnderwritingResults {
	return RunUnderwriting(in)
}

// RunUnderwriting computes the full set of results for in. It never fails: a
// zero or negative denominator yields 0 for the affected metric, and garbage
// inputs produce defined (if meaningless) output.
func RunUnderwriting(in model.PropertyInputs) model.UnderwritingResults {
	isFlip := in.IsFlip()
	isSTR := in.IsShortTermRental()
	unitCount := float64(max(in.Units, 1))

	var r model.UnderwritingResults

	// Sources & uses
	r.TotalProjectCost = in.PurchasePrice + in.ClosingCosts + in.Renovations + in.Reserves
	r.TotalEquityRequired = r.TotalProjectCost - in.LoanAmount
	r.LoanToValue = ratioPercent(in.LoanAmount, in.PurchasePrice)
	r.LoanToCost = ratioPercent(in.LoanAmount, r.TotalProjectCost)

	// Income
	if isSTR {
		occupiedNights := nightsPerYear * (in.OccupancyRate / 100)
		var stays float64
		if in.AvgStayDuration > 0 {
			stays = occupiedNights / in.AvgStayDuration
		}
		r.GrossScheduledIncome = occupiedNights*in.AvgNightlyRate + stays*in.CleaningFeePerStay
	} else {
		r.GrossScheduledIncome = (in.GrossMonthlyRent + in.OtherMonthlyIncome) * 12
	}

	// Occupancy already nets out vacancy for STR.
	if !isSTR {
		r.VacancyLoss = r.GrossScheduledIncome * (in.VacancyRate / 100)
	}
	r.EffectiveGrossIncome = r.GrossScheduledIncome - r.VacancyLoss

	// Expenses
	fixed := in.PropertyTaxes + in.Insurance + in.Maintenance + in.Utilities + in.OtherExpenses
	if isSTR {
		platformFees := r.GrossScheduledIncome * (in.STRPlatformFee / 100)
		management := r.GrossScheduledIncome * (in.STRManagement / 100)
		r.TotalOperatingExpenses = fixed + platformFees + management
	} else {
		r.TotalOperatingExpenses = fixed + in.Management
	}
	r.ExpenseRatio = ratioPercent(r.TotalOperatingExpenses, r.EffectiveGrossIncome)

	// NOI
	r.NOI = r.EffectiveGrossIncome - r.TotalOperatingExpenses
	r.NOIMargin = ratioPercent(r.NOI, r.EffectiveGrossIncome)

	// Debt service
	r.MonthlyDebtService = model.MonthlyPayment(in.LoanAmount, in.InterestRate, in.AmortizationYears, in.InterestOnly)
	r.AnnualDebtService = r.MonthlyDebtService * 12

	// Cash flow
	r.CashFlowBeforeDebt = r.NOI
	r.CashFlowAfterDebt = r.NOI - r.AnnualDebtService
	r.MonthlyCashFlow = r.CashFlowAfterDebt / 12

	// Point-in-time returns
	r.CapRate = ratioPercent(r.NOI, in.PurchasePrice)
	r.CashOnCash = ratioPercent(r.CashFlowAfterDebt, r.TotalEquityRequired)
	if r.AnnualDebtService > 0 {
		r.DSCR = r.NOI / r.AnnualDebtService
	}

	// Per unit
	r.PricePerUnit = in.PurchasePrice / unitCount
	r.RentPerUnit = in.GrossMonthlyRent / unitCount
	r.NOIPerUnit = r.NOI / unitCount

	if isFlip {
		months := float64(in.MonthsToComplete)
		totalFlipCost := in.PurchasePrice + in.ClosingCosts + in.Renovations +
			in.HoldingCostsMonthly*months +
			r.AnnualDebtService/12*months
		sellCosts := in.AfterRepairValue * (in.SellingCosts / 100)
		profit := in.AfterRepairValue - sellCosts - totalFlipCost
		roi := ratioPercent(profit, r.TotalEquityRequired)

		var annualized float64
		if years := months / 12; years > 0 {
			annualized = finiteOrZero((math.Pow(1+roi/100, 1/years) - 1) * 100)
		}

		r.FlipProfit = &profit
		r.FlipROI = &roi
		r.FlipAnnualizedROI = &annualized
	}

	if isSTR {
		revPAN := r.GrossScheduledIncome / nightsPerYear
		adr := in.AvgNightlyRate
		r.RevenuePerAvailableNight = &revPAN
		r.AverageDailyRate = &adr
	}

	holdYears := in.HoldPeriodYears
	if isFlip {
		months := min(in.MonthsToComplete, model.MaxMonthsToComplete)
		holdYears = max(1, int(math.Ceil(float64(months)/12)))
	}
	holdYears = min(holdYears, model.MaxHoldPeriodYears)

	r.YearlyProjections = project(in, r, holdYears)

	var cumulative float64
	if n := len(r.YearlyProjections); n > 0 {
		cumulative = r.YearlyProjections[n-1].CumulativeCashFlow
	}

	// Disposition
	switch {
	case isFlip:
		r.ProjectedSalePrice = in.AfterRepairValue
	case in.ExitCapRate > 0 && holdYears > 0:
		terminalNOI := r.YearlyProjections[holdYears-1].NOI
		forwardNOI := terminalNOI * (1 + in.AnnualRentGrowth/100)
		r.ProjectedSalePrice = forwardNOI / (in.ExitCapRate / 100)
	default:
		r.ProjectedSalePrice = in.PurchasePrice * math.Pow(1+in.AnnualAppreciation/100, float64(holdYears))
	}

	r.LoanBalance = in.LoanAmount
	if holdYears > 0 {
		r.LoanBalance = model.LoanBalance(in.LoanAmount, in.InterestRate, in.AmortizationYears, holdYears, in.InterestOnly)
	}
	r.NetSaleProceeds = r.ProjectedSalePrice - r.ProjectedSalePrice*(in.SellingCosts/100) - r.LoanBalance

	r.IRR = IRR(irrCashFlows(r.TotalEquityRequired, r.YearlyProjections, r.NetSaleProceeds)) * 100

	totalCashReceived := cumulative + r.NetSaleProceeds
	if r.TotalEquityRequired > 0 {
		r.EquityMultiple = totalCashReceived / r.TotalEquityRequired
	}
	r.TotalProfit = totalCashReceived - r.TotalEquityRequired
	if holdYears > 0 {
		r.AnnualizedReturn = finiteOrZero((math.Pow(r.EquityMultiple, 1/float64(holdYears)) - 1) * 100)
	}

	return r
}

// project builds one YearProjection per hold year. Flip years carry no rental
// income and their cash flow is the holding cost alone, not prorated for a
// partial final year.
func project(in model.PropertyInputs, r model.UnderwritingResults, holdYears int) []model.YearProjection {
	if holdYears <= 0 {
		return []model.YearProjection{}
	}

	isFlip := in.IsFlip()
	isSTR := in.IsShortTermRental()

	out := make([]model.YearProjection, 0, holdYears)
	var cumulative float64

	for year := 1; year <= holdYears; year++ {
		rentGrowth := math.Pow(1+in.AnnualRentGrowth/100, float64(year-1))
		appreciation := math.Pow(1+in.AnnualAppreciation/100, float64(year))

		var income float64
		if !isFlip {
			income = r.GrossScheduledIncome * rentGrowth
		}

		var vacancy float64
		if !isSTR {
			vacancy = income * (in.VacancyRate / 100)
		}

		expenses := r.TotalOperatingExpenses * math.Pow(1+expenseGrowthRate, float64(year-1))
		noi := income - vacancy - expenses

		cashFlow := noi - r.AnnualDebtService
		if isFlip {
			cashFlow = -in.HoldingCostsMonthly * 12
		}
		cumulative += cashFlow

		value := in.PurchasePrice * appreciation
		if isFlip {
			value = in.AfterRepairValue
		}

		balance := model.LoanBalance(in.LoanAmount, in.InterestRate, in.AmortizationYears, year, in.InterestOnly)

		out = append(out, model.YearProjection{
			Year:               year,
			GrossIncome:        income,
			OperatingExpenses:  expenses,
			NOI:                noi,
			DebtService:        r.AnnualDebtService,
			CashFlow:           cashFlow,
			PropertyValue:      value,
			LoanBalance:        balance,
			Equity:             value - balance,
			CumulativeCashFlow: cumulative,
		})
	}

	return out
}

// irrCashFlows lays out the equity series: the initial outlay, then each
// projected year's cash flow with sale proceeds landing in the final year.
// With no projection years the series is the outlay alone.
func irrCashFlows(equity float64, years []model.YearProjection, netSaleProceeds float64) []float64 {
	flows := make([]float64, 0, len(years)+1)
	flows = append(flows, -equity)
	for i, y := range years {
		cf := y.CashFlow
		if i == len(years)-1 {
			cf += netSaleProceeds
		}
		flows = append(flows, cf)
	}
	return flows
}

// ratioPercent returns num/den*100, or 0 when den is not positive.
func ratioPercent(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den * 100
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
