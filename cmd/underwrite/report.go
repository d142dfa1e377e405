package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/pkg/money"
)

func printResults(w io.Writer, in model.PropertyInputs, r model.UnderwritingResults) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Deal\t%s\n", dealLabel(in))
	fmt.Fprintf(tw, "Financing\t%s\n", in.FinancingSource)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Total project cost\t%s\n", money.FormatCurrency(r.TotalProjectCost))
	fmt.Fprintf(tw, "Equity required\t%s\n", money.FormatCurrency(r.TotalEquityRequired))
	fmt.Fprintf(tw, "LTV / LTC\t%s / %s\n", money.FormatPercent(r.LoanToValue, 1), money.FormatPercent(r.LoanToCost, 1))

	if in.IsFlip() {
		fmt.Fprintf(tw, "Sale price\t%s\n", money.FormatCurrency(r.ProjectedSalePrice))
		fmt.Fprintf(tw, "Net sale proceeds\t%s\n", money.FormatCurrency(r.NetSaleProceeds))
		if r.FlipProfit != nil && r.FlipROI != nil {
			fmt.Fprintf(tw, "Flip profit\t%s\n", money.FormatCurrency(*r.FlipProfit))
			fmt.Fprintf(tw, "Flip ROI\t%s\n", money.FormatPercent(*r.FlipROI, 2))
		}
	} else {
		fmt.Fprintf(tw, "Effective gross income\t%s\n", money.FormatCurrency(r.EffectiveGrossIncome))
		fmt.Fprintf(tw, "Operating expenses\t%s\n", money.FormatCurrency(r.TotalOperatingExpenses))
		fmt.Fprintf(tw, "NOI\t%s\n", money.FormatCurrency(r.NOI))
		fmt.Fprintf(tw, "Debt service\t%s\n", money.FormatCurrency(r.AnnualDebtService))
		fmt.Fprintf(tw, "Monthly cash flow\t%s\n", money.FormatCurrency(r.MonthlyCashFlow))
		fmt.Fprintf(tw, "Cap rate\t%s\n", money.FormatPercent(r.CapRate, 2))
		fmt.Fprintf(tw, "Cash on cash\t%s\n", money.FormatPercent(r.CashOnCash, 2))
		fmt.Fprintf(tw, "DSCR\t%s\n", money.FormatMultiple(r.DSCR))
	}
	fmt.Fprintf(tw, "IRR\t%s\n", money.FormatPercent(r.IRR, 2))
	fmt.Fprintf(tw, "Equity multiple\t%s\n", money.FormatMultiple(r.EquityMultiple))
	fmt.Fprintf(tw, "Total profit\t%s\n", money.FormatCurrency(r.TotalProfit))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.YearlyProjections) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	return printProjections(w, r.YearlyProjections)
}

func printProjections(w io.Writer, years []model.YearProjection) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tNOI\tDebt service\tCash flow\tValue\tLoan\tEquity\t")
	for _, y := range years {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			strconv.Itoa(y.Year),
			money.FormatCurrency(y.NOI),
			money.FormatCurrency(y.DebtService),
			money.FormatCurrency(y.CashFlow),
			money.FormatCurrency(y.PropertyValue),
			money.FormatCurrency(y.LoanBalance),
			money.FormatCurrency(y.Equity),
		)
	}
	return tw.Flush()
}

func printQualification(w io.Writer, q model.DebtQualification) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if !q.Eligible {
		fmt.Fprintln(tw, "Eligible\tno")
		fmt.Fprintf(tw, "Reason\t%s\n", q.Reason)
		return tw.Flush()
	}

	fmt.Fprintln(tw, "Eligible\tyes")
	fmt.Fprintf(tw, "Max loan\t%s\n", money.FormatCurrency(q.MaxLoan))
	fmt.Fprintf(tw, "Rate\t%s\n", money.FormatPercent(q.AdjustedRate, 2))
	fmt.Fprintf(tw, "DSCR tier\t%s\n", q.DSCRTier)
	if q.Terms != nil {
		fmt.Fprintf(tw, "Max LTV\t%s\n", money.FormatPercent(q.Terms.MaxLTV, 0))
		fmt.Fprintf(tw, "Term\t%s\n", termLabel(*q.Terms))
	}
	return tw.Flush()
}

func printComparison(w io.Writer, current, covey model.UnderwritingResults) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tCurrent\tCovey debt")
	row := func(label string, format func(float64) string, a, b float64) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", label, format(a), format(b))
	}
	pct := func(v float64) string { return money.FormatPercent(v, 2) }
	row("Equity required", money.FormatCurrency, current.TotalEquityRequired, covey.TotalEquityRequired)
	row("Debt service", money.FormatCurrency, current.AnnualDebtService, covey.AnnualDebtService)
	row("Cash flow", money.FormatCurrency, current.CashFlowAfterDebt, covey.CashFlowAfterDebt)
	row("Cash on cash", pct, current.CashOnCash, covey.CashOnCash)
	row("DSCR", money.FormatMultiple, current.DSCR, covey.DSCR)
	row("IRR", pct, current.IRR, covey.IRR)
	row("Equity multiple", money.FormatMultiple, current.EquityMultiple, covey.EquityMultiple)
	return tw.Flush()
}

func dealLabel(in model.PropertyInputs) string {
	if in.StreetAddress == "" {
		return in.Type.String()
	}
	return fmt.Sprintf("%s (%s)", in.StreetAddress, in.Type)
}

func termLabel(t model.DebtFundTerms) string {
	if t.TermMonths > 0 {
		return fmt.Sprintf("%d months, interest only", t.TermMonths)
	}
	if t.InterestOnly {
		return fmt.Sprintf("%d years, interest only", t.TermYears)
	}
	if t.IOYears > 0 {
		return fmt.Sprintf("%d years, %d IO then %d-year amortization", t.TermYears, t.IOYears, t.AmortYears)
	}
	return fmt.Sprintf("%d years, %d-year amortization", t.TermYears, t.AmortYears)
}
