package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

const rentalDeal = `
streetAddress: 12 Elm St
purchasePrice: 325000
closingCosts: 5000
loanAmount: 243750
interestRate: 6.5
grossMonthlyRent: 2500
propertyTaxes: 3000
insurance: 1200
maintenance: 1500
management: 1800
`

const flipDealJSON = `{
  "type": "Fix and Flip",
  "purchasePrice": 200000,
  "closingCosts": 4000,
  "renovations": 30000,
  "loanAmount": 140000,
  "afterRepairValue": 280000,
  "holdingCostsMonthly": 1500
}`

func writeDeal(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseDeal_MergesOverDefaults(t *testing.T) {
	in, err := parseDeal([]byte(rentalDeal), "")
	require.NoError(t, err)

	assert.Equal(t, valueobject.InvestmentTypeLongTermRental, in.Type)
	assert.Equal(t, 325_000.0, in.PurchasePrice)
	assert.Equal(t, 6.5, in.InterestRate)
	// Untouched fields keep the type's defaults.
	assert.Equal(t, 5, in.HoldPeriodYears)
	assert.Equal(t, 7.0, in.ExitCapRate)
	assert.Equal(t, valueobject.FinancingExternal, in.FinancingSource)
}

func TestParseDeal_JSONUsesTypeDefaults(t *testing.T) {
	in, err := parseDeal([]byte(flipDealJSON), "")
	require.NoError(t, err)

	assert.True(t, in.IsFlip())
	assert.True(t, in.InterestOnly)
	assert.Equal(t, 1, in.HoldPeriodYears)
	assert.Equal(t, 280_000.0, in.AfterRepairValue)
}

func TestParseDeal_TypeOverride(t *testing.T) {
	in, err := parseDeal([]byte(flipDealJSON), "Short Term Rental")
	require.NoError(t, err)
	assert.True(t, in.IsShortTermRental())
	assert.Zero(t, in.VacancyRate)
}

func TestParseDeal_UnknownType(t *testing.T) {
	_, err := parseDeal([]byte("type: Condo\n"), "")
	assert.ErrorIs(t, err, valueobject.ErrUnknownInvestmentType)

	_, err = parseDeal([]byte(rentalDeal), "Condo")
	assert.ErrorIs(t, err, valueobject.ErrUnknownInvestmentType)
}

func TestParseDeal_LegacyLabel(t *testing.T) {
	in, err := parseDeal([]byte("type: Long Term Hold\npurchasePrice: 100000\n"), "")
	require.NoError(t, err)
	assert.Equal(t, valueobject.InvestmentTypeLongTermRental, in.Type)
}

func TestParseDeal_RejectsOutOfRangePeriods(t *testing.T) {
	_, err := parseDeal([]byte("holdPeriodYears: 1152921504606846976\n"), "")
	assert.ErrorIs(t, err, dto.ErrInvalidRequest)

	_, err = parseDeal([]byte(flipDealJSON), "")
	require.NoError(t, err)
	_, err = parseDeal([]byte(`{"type": "Fix and Flip", "monthsToComplete": 4611686018427387904}`), "")
	assert.ErrorIs(t, err, dto.ErrInvalidRequest)
}

func TestLoadDeal_MissingFile(t *testing.T) {
	_, err := loadDeal(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.ErrorContains(t, err, "read deal file")
}

func TestRunCmd(t *testing.T) {
	path := writeDeal(t, "deal.yaml", rentalDeal)

	out, err := execute(t, "run", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "12 Elm St (Long Term Rental)")
	assert.Contains(t, out, "$21,000")
	assert.Contains(t, out, "6.46%")
	assert.Contains(t, out, "$86,250")
	assert.Contains(t, out, "Cash flow")
}

func TestRunCmd_JSON(t *testing.T) {
	path := writeDeal(t, "deal.json", flipDealJSON)

	out, err := execute(t, "run", "-f", path, "--json")
	require.NoError(t, err)

	var r model.UnderwritingResults
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 280_000.0, r.ProjectedSalePrice)
	require.NotNil(t, r.FlipProfit)
}

func TestRunCmd_RequiresFile(t *testing.T) {
	_, err := execute(t, "run")
	assert.ErrorContains(t, err, `"file" not set`)
}

func TestQualifyCmd_Ineligible(t *testing.T) {
	path := writeDeal(t, "deal.yaml", rentalDeal)

	out, err := execute(t, "qualify", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "no")
	assert.Contains(t, out, "DSCR 1.08x is below 1.1x minimum")
	assert.NotContains(t, out, "Covey debt")
}

func TestQualifyCmd_EligibleComparesTerms(t *testing.T) {
	path := writeDeal(t, "deal.json", flipDealJSON)

	out, err := execute(t, "qualify", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "$140,000")
	assert.Contains(t, out, "10.00%")
	assert.Contains(t, out, "18 months, interest only")
	assert.Contains(t, out, "Covey debt")
}

func TestDefaultsCmd_FeedsBackIntoRun(t *testing.T) {
	out, err := execute(t, "defaults", "--type", "Short Term Rental")
	require.NoError(t, err)
	assert.Contains(t, out, "type: Short Term Rental")

	in, err := parseDeal([]byte(out), "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultInputs(valueobject.InvestmentTypeShortTermRental), in)
}
