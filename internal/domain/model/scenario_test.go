package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvm55/Covey/internal/domain/event"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func fakeCalculator(in model.PropertyInputs) model.UnderwritingResults {
	return model.UnderwritingResults{NOI: in.GrossMonthlyRent * 12, IRR: 9.5, DSCR: 1.2}
}

func newTestScenario(t *testing.T, isPrimary bool) model.Scenario {
	t.Helper()
	inputs := model.DefaultInputs(valueobject.InvestmentTypeLongTermRental)
	s, err := model.NewScenario(
		uuid.New(), nil, "", valueobject.StrategyLongTermRental,
		inputs, fakeCalculator(inputs), isPrimary, fixedNow,
	)
	require.NoError(t, err)
	return s
}

func TestNewScenario(t *testing.T) {
	propertyID := uuid.New()
	unitID := uuid.New()
	inputs := model.DefaultInputs(valueobject.InvestmentTypeFixAndFlip)

	s, err := model.NewScenario(
		propertyID, &unitID, "  Aggressive ARV  ", valueobject.StrategyFixAndFlip,
		inputs, model.UnderwritingResults{IRR: 22, CapRate: 0}, true, fixedNow,
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, propertyID, s.PropertyID())
	require.NotNil(t, s.UnitID())
	assert.Equal(t, unitID, *s.UnitID())
	assert.Equal(t, "Aggressive ARV", s.Name())
	assert.True(t, s.StrategyType().Equal(valueobject.StrategyFixAndFlip))
	assert.True(t, s.IsPrimary())
	assert.Equal(t, fixedNow, s.CreatedAt())
	assert.Equal(t, fixedNow, s.UpdatedAt())

	require.Len(t, s.DomainEvents(), 1)
	created, ok := s.DomainEvents()[0].(event.ScenarioCreated)
	require.True(t, ok)
	assert.Equal(t, "underwriting.scenario.created", created.EventType())
	assert.Equal(t, s.ID().String(), created.AggregateID())
	assert.Equal(t, "fix_and_flip", created.StrategyType)
	assert.Equal(t, "external", created.FinancingSource)
	assert.Equal(t, 22.0, created.IRR)
}

func TestNewScenario_DefaultName(t *testing.T) {
	tests := []struct {
		strategy valueobject.StrategyType
		want     string
	}{
		{valueobject.StrategyLongTermRental, "Base Case - Long Term"},
		{valueobject.StrategyFixAndFlip, "Base Case - Flip"},
		{valueobject.StrategyShortTermRental, "Base Case - STR"},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			s, err := model.NewScenario(uuid.New(), nil, "", tt.strategy,
				model.PropertyInputs{}, model.UnderwritingResults{}, false, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name())
		})
	}
}

func TestNewScenario_Validation(t *testing.T) {
	_, err := model.NewScenario(uuid.Nil, nil, "x", valueobject.StrategyLongTermRental,
		model.PropertyInputs{}, model.UnderwritingResults{}, false, fixedNow)
	assert.ErrorIs(t, err, model.ErrInvalidScenario)

	_, err = model.NewScenario(uuid.New(), nil, "x", valueobject.StrategyType{},
		model.PropertyInputs{}, model.UnderwritingResults{}, false, fixedNow)
	assert.ErrorIs(t, err, model.ErrInvalidScenario)

	_, err = model.NewScenario(uuid.New(), nil, strings.Repeat("a", 121), valueobject.StrategyLongTermRental,
		model.PropertyInputs{}, model.UnderwritingResults{}, false, fixedNow)
	assert.ErrorIs(t, err, model.ErrInvalidScenario)
}

func TestScenario_Rename(t *testing.T) {
	s := newTestScenario(t, false).ClearEvents()
	later := fixedNow.Add(time.Hour)

	renamed, err := s.Rename("Refi in year 3", later)
	require.NoError(t, err)

	assert.Equal(t, "Refi in year 3", renamed.Name())
	assert.Equal(t, later, renamed.UpdatedAt())
	require.Len(t, renamed.DomainEvents(), 1)
	assert.Equal(t, "underwriting.scenario.renamed", renamed.DomainEvents()[0].EventType())

	// Original is untouched.
	assert.Equal(t, "Base Case - Long Term", s.Name())
	assert.Empty(t, s.DomainEvents())

	same, err := renamed.Rename("Refi in year 3", later.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, same.DomainEvents(), 1)

	_, err = s.Rename("   ", later)
	assert.Error(t, err)
}

func TestScenario_Recalculate(t *testing.T) {
	s := newTestScenario(t, true).ClearEvents()
	later := fixedNow.Add(time.Minute)

	inputs := model.DefaultInputs(valueobject.InvestmentTypeShortTermRental)
	inputs.GrossMonthlyRent = 3_000

	next, err := s.Recalculate(inputs, fakeCalculator, later)
	require.NoError(t, err)

	assert.Equal(t, 36_000.0, next.Results().NOI)
	assert.True(t, next.StrategyType().Equal(valueobject.StrategyShortTermRental))
	assert.Equal(t, inputs, next.Inputs())
	assert.Equal(t, later, next.UpdatedAt())
	require.Len(t, next.DomainEvents(), 1)

	recalculated, ok := next.DomainEvents()[0].(event.ScenarioRecalculated)
	require.True(t, ok)
	assert.Equal(t, 36_000.0, recalculated.NOI)
	assert.Equal(t, 1.2, recalculated.DSCR)
}

func TestScenario_RecalculateErrors(t *testing.T) {
	s := newTestScenario(t, false)

	_, err := s.Recalculate(model.DefaultInputs(valueobject.InvestmentTypeLongTermRental), nil, fixedNow)
	assert.Error(t, err)

	_, err = s.Recalculate(model.PropertyInputs{}, fakeCalculator, fixedNow)
	assert.ErrorIs(t, err, valueobject.ErrUnknownInvestmentType)
}

func TestScenario_MarkAndClearPrimary(t *testing.T) {
	s := newTestScenario(t, false).ClearEvents()

	primary := s.MarkPrimary(fixedNow)
	assert.True(t, primary.IsPrimary())
	require.Len(t, primary.DomainEvents(), 1)
	assert.Equal(t, "underwriting.scenario.promoted", primary.DomainEvents()[0].EventType())

	// Idempotent.
	again := primary.MarkPrimary(fixedNow)
	assert.Len(t, again.DomainEvents(), 1)

	cleared := primary.ClearPrimary(fixedNow)
	assert.False(t, cleared.IsPrimary())
	assert.Len(t, cleared.DomainEvents(), 1)
	assert.True(t, primary.IsPrimary())
}

func TestReconstructScenario(t *testing.T) {
	id, propertyID := uuid.New(), uuid.New()
	created := fixedNow.Add(-24 * time.Hour)

	s := model.ReconstructScenario(id, propertyID, nil, "Saved", valueobject.StrategyFixAndFlip,
		model.PropertyInputs{PurchasePrice: 1}, model.UnderwritingResults{IRR: 3}, true, created, fixedNow)

	assert.Equal(t, id, s.ID())
	assert.Equal(t, propertyID, s.PropertyID())
	assert.Nil(t, s.UnitID())
	assert.Equal(t, "Saved", s.Name())
	assert.Equal(t, 1.0, s.Inputs().PurchasePrice)
	assert.Equal(t, 3.0, s.Results().IRR)
	assert.True(t, s.IsPrimary())
	assert.Equal(t, created, s.CreatedAt())
	assert.Empty(t, s.DomainEvents())
}
