package service

import "math"

const (
	defaultIRRMaxIterations = 1000
	defaultIRRTolerance     = 1e-5
	irrInitialGuess         = 0.1

	// Solver gives up outside (irrMinRate, irrMaxRate).
	irrMinRate = -0.99
	irrMaxRate = 10

	flatDerivative = 1e-10
)

// IRR solves for the periodic internal rate of return of cashFlows using the
// default iteration cap and tolerance. The result is a fraction (0.1 = 10%).
func IRR(cashFlows []float64) float64 {
	return IRRWithOptions(cashFlows, defaultIRRMaxIterations, defaultIRRTolerance)
}

// IRRWithOptions runs Newton's method on the NPV function starting at 10%.
//
// Zero is returned when there are fewer than two flows, when the rate leaves
// (-99%, 1000%), or when the arithmetic stops producing finite numbers. If the
// derivative flattens out the current estimate is returned as-is.
func IRRWithOptions(cashFlows []float64, maxIterations int, tolerance float64) float64 {
	if len(cashFlows) < 2 {
		return 0
	}

	rate := irrInitialGuess

	for i := 0; i < maxIterations; i++ {
		npv, dnpv := npvAndDerivative(cashFlows, rate)

		if math.Abs(dnpv) < flatDerivative {
			break
		}

		next := rate - npv/dnpv
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0
		}

		if math.Abs(next-rate) < tolerance {
			return next
		}

		rate = next
		if rate < irrMinRate || rate > irrMaxRate {
			return 0
		}
	}

	return rate
}

// NPV discounts cashFlows at rate, with index 0 undiscounted.
func NPV(cashFlows []float64, rate float64) float64 {
	npv, _ := npvAndDerivative(cashFlows, rate)
	return npv
}

func npvAndDerivative(cashFlows []float64, rate float64) (npv, dnpv float64) {
	for t, cf := range cashFlows {
		ft := float64(t)
		npv += cf / math.Pow(1+rate, ft)
		dnpv -= ft * cf / math.Pow(1+rate, ft+1)
	}
	return npv, dnpv
}
