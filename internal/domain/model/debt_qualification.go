package model

// DebtFundTerms is one tier of lending terms offered by the captive debt fund.
type DebtFundTerms struct {
	MaxLTV     float64 `json:"maxLTV"`     // whole percent, 75 = 75%
	BaseRate   float64 `json:"baseRate"`   // annual whole percent
	AmortYears int     `json:"amortYears"` // 0 = interest only for the full term
	IOYears    int     `json:"ioYears"`    // initial interest-only period
	TermYears  int     `json:"termYears"`
	TermMonths int     `json:"termMonths,omitempty"` // sub-year terms; overrides TermYears when set
	// InterestOnly is true when the loan never amortizes.
	InterestOnly bool `json:"interestOnly"`
}

// DSCRSpreadTier prices a deal relative to the base rate by its estimated DSCR.
type DSCRSpreadTier struct {
	MinDSCR   float64
	SpreadBps int // negative values are discounts
}

// DebtQualification is the outcome of a debt-fund eligibility check. When
// Eligible is false, Reason is meant to be shown to the user verbatim and
// Terms is nil.
type DebtQualification struct {
	Eligible     bool           `json:"eligible"`
	Reason       string         `json:"reason,omitempty"`
	Terms        *DebtFundTerms `json:"terms,omitempty"`
	AdjustedRate float64        `json:"adjustedRate,omitempty"`
	DSCRTier     string         `json:"dscrTier,omitempty"`
	MaxLoan      float64        `json:"maxLoan,omitempty"`
}
