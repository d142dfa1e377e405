package model

import "github.com/kvm55/Covey/internal/domain/valueobject"

// DebtFieldsChanged reports whether any debt term differs between a and b.
func DebtFieldsChanged(a, b PropertyInputs) bool {
	return a.LoanAmount != b.LoanAmount ||
		a.InterestRate != b.InterestRate ||
		a.LoanTermYears != b.LoanTermYears ||
		a.AmortizationYears != b.AmortizationYears ||
		a.InterestOnly != b.InterestOnly
}

// RevertFinancingOnManualEdit enforces the debt-fund field lock. Debt terms
// written by the debt fund are only valid as a set; once a user edits any of
// them by hand the scenario is no longer debt-fund financed and the returned
// inputs carry the external financing source.
func RevertFinancingOnManualEdit(previous, edited PropertyInputs) PropertyInputs {
	if !previous.FinancingSource.IsCoveyDebt() {
		return edited
	}
	if DebtFieldsChanged(previous, edited) {
		edited.FinancingSource = valueobject.FinancingExternal
	}
	return edited
}
