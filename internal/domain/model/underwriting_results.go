package model

// UnderwritingResults is the engine's output for one PropertyInputs value.
// Percentages are whole numbers (6.46 means 6.46%); ratios and multiples are
// plain (1.25 means 1.25x).
type UnderwritingResults struct {
	// Sources & uses
	TotalProjectCost    float64 `json:"totalProjectCost"`
	TotalEquityRequired float64 `json:"totalEquityRequired"`
	LoanToValue         float64 `json:"loanToValue"`
	LoanToCost          float64 `json:"loanToCost"`

	// Annual income
	GrossScheduledIncome float64 `json:"grossScheduledIncome"`
	VacancyLoss          float64 `json:"vacancyLoss"`
	EffectiveGrossIncome float64 `json:"effectiveGrossIncome"`

	// Annual expenses
	TotalOperatingExpenses float64 `json:"totalOperatingExpenses"`
	ExpenseRatio           float64 `json:"expenseRatio"`

	NOI       float64 `json:"noi"`
	NOIMargin float64 `json:"noiMargin"`

	AnnualDebtService  float64 `json:"annualDebtService"`
	MonthlyDebtService float64 `json:"monthlyDebtService"`

	CashFlowBeforeDebt float64 `json:"cashFlowBeforeDebt"`
	CashFlowAfterDebt  float64 `json:"cashFlowAfterDebt"`
	MonthlyCashFlow    float64 `json:"monthlyCashFlow"`

	// Return metrics
	CapRate          float64 `json:"capRate"`
	CashOnCash       float64 `json:"cashOnCash"`
	DSCR             float64 `json:"dscr"`
	EquityMultiple   float64 `json:"equityMultiple"`
	IRR              float64 `json:"irr"`
	TotalProfit      float64 `json:"totalProfit"`
	AnnualizedReturn float64 `json:"annualizedReturn"`

	// Disposition
	ProjectedSalePrice float64 `json:"projectedSalePrice"`
	NetSaleProceeds    float64 `json:"netSaleProceeds"`
	LoanBalance        float64 `json:"loanBalance"`

	// Per unit
	PricePerUnit float64 `json:"pricePerUnit"`
	RentPerUnit  float64 `json:"rentPerUnit"`
	NOIPerUnit   float64 `json:"noiPerUnit"`

	YearlyProjections []YearProjection `json:"yearlyProjections"`

	// Fix and Flip only; nil for other archetypes.
	FlipProfit        *float64 `json:"flipProfit,omitempty"`
	FlipROI           *float64 `json:"flipROI,omitempty"`
	FlipAnnualizedROI *float64 `json:"flipAnnualizedROI,omitempty"`

	// Short Term Rental only; nil for other archetypes.
	RevenuePerAvailableNight *float64 `json:"revenuePerAvailableNight,omitempty"`
	AverageDailyRate         *float64 `json:"averageDailyRate,omitempty"`
}

// YearProjection is one hold year of the projection.
type YearProjection struct {
	Year               int     `json:"year"`
	GrossIncome        float64 `json:"grossIncome"`
	OperatingExpenses  float64 `json:"operatingExpenses"`
	NOI                float64 `json:"noi"`
	DebtService        float64 `json:"debtService"`
	CashFlow           float64 `json:"cashFlow"`
	PropertyValue      float64 `json:"propertyValue"`
	LoanBalance        float64 `json:"loanBalance"`
	Equity             float64 `json:"equity"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
}
