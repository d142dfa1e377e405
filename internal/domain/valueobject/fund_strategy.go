package valueobject

import "strings"

// FundStrategy names the equity fund a property is allocated to.
type FundStrategy string

const (
	FundBobwhite FundStrategy = "bobwhite"
	FundPheasant FundStrategy = "pheasant"
	FundChukar   FundStrategy = "chukar"
	FundWoodcock FundStrategy = "woodcock"
	FundGrouse   FundStrategy = "grouse"
)

var typeToFund = map[string]FundStrategy{
	"workforce housing": FundBobwhite,
	"long term hold":    FundPheasant,
	"long term rental":  FundPheasant,
	"short term rental": FundPheasant,
	"build to rent":     FundChukar,
	"development":       FundChukar,
	"cohabitation":      FundWoodcock,
	"value add":         FundWoodcock,
	"fix and flip":      FundGrouse,
}

// FundForStrategy maps a property type label to its fund. Matching ignores
// case and surrounding whitespace; unknown labels land in the pheasant fund.
func FundForStrategy(propertyType string) FundStrategy {
	if f, ok := typeToFund[strings.ToLower(strings.TrimSpace(propertyType))]; ok {
		return f
	}
	return FundPheasant
}
