package valueobject

import "fmt"

// StrategyType is the storage key of an investment type, used by the
// scenarios table and event payloads.
type StrategyType struct {
	value string
}

const (
	strategyLongTermRental  = "long_term_rental"
	strategyFixAndFlip      = "fix_and_flip"
	strategyShortTermRental = "short_term_rental"
)

var (
	StrategyLongTermRental  = StrategyType{value: strategyLongTermRental}
	StrategyFixAndFlip      = StrategyType{value: strategyFixAndFlip}
	StrategyShortTermRental = StrategyType{value: strategyShortTermRental}
)

var validStrategyTypes = map[string]StrategyType{
	strategyLongTermRental:  StrategyLongTermRental,
	strategyFixAndFlip:      StrategyFixAndFlip,
	strategyShortTermRental: StrategyShortTermRental,
}

var strategyToInvestmentType = map[string]InvestmentType{
	strategyLongTermRental:  InvestmentTypeLongTermRental,
	strategyFixAndFlip:      InvestmentTypeFixAndFlip,
	strategyShortTermRental: InvestmentTypeShortTermRental,
}

var defaultScenarioNames = map[string]string{
	strategyLongTermRental:  "Base Case - Long Term",
	strategyFixAndFlip:      "Base Case - Flip",
	strategyShortTermRental: "Base Case - STR",
}

// NewStrategyType creates a StrategyType from its storage key.
func NewStrategyType(s string) (StrategyType, error) {
	v, ok := validStrategyTypes[s]
	if !ok {
		return StrategyType{}, fmt.Errorf("invalid strategy type: %q", s)
	}
	return v, nil
}

// ToStrategyType maps a display investment type to its storage key.
func ToStrategyType(t InvestmentType) (StrategyType, error) {
	switch {
	case t.Equal(InvestmentTypeLongTermRental):
		return StrategyLongTermRental, nil
	case t.Equal(InvestmentTypeFixAndFlip):
		return StrategyFixAndFlip, nil
	case t.Equal(InvestmentTypeShortTermRental):
		return StrategyShortTermRental, nil
	default:
		return StrategyType{}, fmt.Errorf("%w: %q", ErrUnknownInvestmentType, t.String())
	}
}

// InvestmentType maps the storage key back to its display type.
func (s StrategyType) InvestmentType() InvestmentType {
	return strategyToInvestmentType[s.value]
}

// DefaultScenarioName is the name given to a scenario created without one.
func (s StrategyType) DefaultScenarioName() string {
	return defaultScenarioNames[s.value]
}

func (s StrategyType) String() string { return s.value }

func (s StrategyType) IsZero() bool { return s.value == "" }

func (s StrategyType) Equal(other StrategyType) bool { return s.value == other.value }
