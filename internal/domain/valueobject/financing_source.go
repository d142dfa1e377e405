package valueobject

import (
	"encoding/json"
	"fmt"
)

// FinancingSource records who provides the debt on a deal.
type FinancingSource struct {
	value string
}

const (
	financingExternal  = "external"
	financingCoveyDebt = "covey_debt"
)

var (
	FinancingExternal  = FinancingSource{value: financingExternal}
	FinancingCoveyDebt = FinancingSource{value: financingCoveyDebt}
)

// NewFinancingSource parses a financing source. The empty string is treated
// as external, which is what rows saved before the field existed contain.
func NewFinancingSource(s string) (FinancingSource, error) {
	switch s {
	case "", financingExternal:
		return FinancingExternal, nil
	case financingCoveyDebt:
		return FinancingCoveyDebt, nil
	default:
		return FinancingSource{}, fmt.Errorf("invalid financing source: %q", s)
	}
}

// String returns the storage value, defaulting to external.
func (f FinancingSource) String() string {
	if f.value == "" {
		return financingExternal
	}
	return f.value
}

// IsCoveyDebt reports whether the debt comes from the captive debt fund.
func (f FinancingSource) IsCoveyDebt() bool { return f.value == financingCoveyDebt }

func (f FinancingSource) Equal(other FinancingSource) bool { return f.String() == other.String() }

func (f FinancingSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *FinancingSource) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode financing source: %w", err)
	}
	v, err := NewFinancingSource(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f FinancingSource) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

func (f *FinancingSource) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("decode financing source: %w", err)
	}
	v, err := NewFinancingSource(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
