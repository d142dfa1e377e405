package model

import "github.com/kvm55/Covey/internal/domain/valueobject"

// DefaultInputs returns the starting assumptions for a new deal of the given
// type. Acquisition, income and expense amounts start at zero.
func DefaultInputs(t valueobject.InvestmentType) PropertyInputs {
	in := PropertyInputs{
		Type:               t,
		Bedrooms:           3,
		Bathrooms:          2,
		SquareFeet:         1500,
		Units:              1,
		InterestRate:       7.0,
		LoanTermYears:      30,
		AmortizationYears:  30,
		FinancingSource:    valueobject.FinancingExternal,
		VacancyRate:        5,
		HoldPeriodYears:    5,
		AnnualAppreciation: 3,
		AnnualRentGrowth:   2,
		SellingCosts:       6,
		ExitCapRate:        7,
		MonthsToComplete:   6,
		OccupancyRate:      70,
		AvgStayDuration:    3,
		STRPlatformFee:     3,
		STRManagement:      20,
	}

	switch {
	case t.Equal(valueobject.InvestmentTypeFixAndFlip):
		in.InterestRate = 10
		in.LoanTermYears = 1
		in.InterestOnly = true
		in.HoldPeriodYears = 1
	case t.Equal(valueobject.InvestmentTypeShortTermRental):
		// Vacancy is carried by the occupancy rate.
		in.VacancyRate = 0
	}

	return in
}
