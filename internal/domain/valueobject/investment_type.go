package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownInvestmentType is returned when a string does not name a supported deal archetype.
var ErrUnknownInvestmentType = errors.New("unknown investment type")

// ---------------------------------------------------------------------------
// InvestmentType – the deal archetype that selects the engine's branches
// ---------------------------------------------------------------------------

// InvestmentType identifies which income, expense and disposition fields of a
// deal are active.
type InvestmentType struct {
	value string
}

const (
	investmentTypeLongTermRental  = "Long Term Rental"
	investmentTypeFixAndFlip      = "Fix and Flip"
	investmentTypeShortTermRental = "Short Term Rental"

	// Older scenarios were saved with this label before the rename.
	investmentTypeLongTermHold = "Long Term Hold"
)

var (
	InvestmentTypeLongTermRental  = InvestmentType{value: investmentTypeLongTermRental}
	InvestmentTypeFixAndFlip      = InvestmentType{value: investmentTypeFixAndFlip}
	InvestmentTypeShortTermRental = InvestmentType{value: investmentTypeShortTermRental}
)

var validInvestmentTypes = map[string]InvestmentType{
	investmentTypeLongTermRental:  InvestmentTypeLongTermRental,
	investmentTypeLongTermHold:    InvestmentTypeLongTermRental,
	investmentTypeFixAndFlip:      InvestmentTypeFixAndFlip,
	investmentTypeShortTermRental: InvestmentTypeShortTermRental,
}

// InvestmentTypes lists the supported archetypes in display order.
func InvestmentTypes() []InvestmentType {
	return []InvestmentType{
		InvestmentTypeLongTermRental,
		InvestmentTypeFixAndFlip,
		InvestmentTypeShortTermRental,
	}
}

// NewInvestmentType creates an InvestmentType from its display label.
func NewInvestmentType(s string) (InvestmentType, error) {
	v, ok := validInvestmentTypes[s]
	if !ok {
		return InvestmentType{}, fmt.Errorf("%w: %q", ErrUnknownInvestmentType, s)
	}
	return v, nil
}

// String returns the display label.
func (t InvestmentType) String() string { return t.value }

// IsZero returns true if the type has not been initialised.
func (t InvestmentType) IsZero() bool { return t.value == "" }

// IsSupported reports whether the type is one of the known archetypes.
func (t InvestmentType) IsSupported() bool {
	_, ok := validInvestmentTypes[t.value]
	return ok
}

// Equal returns true when both types carry the same value.
func (t InvestmentType) Equal(other InvestmentType) bool { return t.value == other.value }

// MarshalJSON encodes the type as its display label.
func (t InvestmentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// UnmarshalJSON accepts any label. Known labels (and the legacy "Long Term
// Hold") are normalised; unknown labels are kept as-is so that downstream
// rules can report them instead of failing to decode the whole record.
func (t *InvestmentType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode investment type: %w", err)
	}
	if v, ok := validInvestmentTypes[s]; ok {
		*t = v
		return nil
	}
	*t = InvestmentType{value: s}
	return nil
}

// MarshalYAML encodes the type as its display label.
func (t InvestmentType) MarshalYAML() (interface{}, error) {
	return t.value, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML deal files.
func (t *InvestmentType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("decode investment type: %w", err)
	}
	if v, ok := validInvestmentTypes[s]; ok {
		*t = v
		return nil
	}
	*t = InvestmentType{value: s}
	return nil
}
