package port

import "time"

// UnderwritingMetrics records engine and scenario activity.
type UnderwritingMetrics interface {
	ObserveRun(investmentType string, elapsed time.Duration)
	ObserveQualification(investmentType string, eligible bool)
	ScenarioWritten(operation string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ObserveRun(string, time.Duration)   {}
func (NopMetrics) ObserveQualification(string, bool) {}
func (NopMetrics) ScenarioWritten(string)            {}
