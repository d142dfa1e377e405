package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/application/usecase"
	"github.com/kvm55/Covey/internal/domain/event"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/service"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

type createScenarioFixture struct {
	repo      *mockScenarioRepository
	summaries *mockSummaryRepository
	cache     *mockSummaryCache
	publisher *mockEventPublisher
	metrics   *mockMetrics
	uc        *usecase.CreateScenarioUseCase
}

func newCreateScenarioFixture(seed ...model.Scenario) *createScenarioFixture {
	f := &createScenarioFixture{
		repo:      newMockScenarioRepository(seed...),
		summaries: &mockSummaryRepository{},
		cache:     &mockSummaryCache{},
		publisher: &mockEventPublisher{},
		metrics:   newMockMetrics(),
	}
	f.uc = usecase.NewCreateScenarioUseCase(
		f.repo, f.summaries, f.cache, f.publisher, service.NewUnderwritingEngine(), f.metrics,
	)
	return f
}

func TestCreateScenario_Execute(t *testing.T) {
	t.Run("creates a non-primary scenario with the default name", func(t *testing.T) {
		f := newCreateScenarioFixture()
		propertyID := uuid.New()

		resp, err := f.uc.Execute(context.Background(), dto.CreateScenarioRequest{
			PropertyID: propertyID.String(),
			Inputs:     rentalDeal(),
		})
		require.NoError(t, err)

		assert.Equal(t, "Base Case - Long Term", resp.Name)
		assert.Equal(t, "long_term_rental", resp.StrategyType)
		assert.Equal(t, propertyID.String(), resp.PropertyID)
		assert.False(t, resp.IsPrimary)
		assert.InDelta(t, 21_000, resp.Results.NOI, 0.01)

		assert.Len(t, f.repo.saved, 1)
		assert.Empty(t, f.summaries.saved, "non-primary scenarios do not touch the property")
		assert.Equal(t, []string{"underwriting.scenario.created"}, f.publisher.types())
		assert.Equal(t, []string{"create"}, f.metrics.writes)
	})

	t.Run("primary displaces the current primary and syncs the property", func(t *testing.T) {
		propertyID := uuid.New()
		current := seededScenario(propertyID, "Old", rentalDeal(), true, baseTime)
		f := newCreateScenarioFixture(current)

		unitID := uuid.New()
		resp, err := f.uc.Execute(context.Background(), dto.CreateScenarioRequest{
			PropertyID: propertyID.String(),
			UnitID:     unitID.String(),
			Name:       "Refi",
			Inputs:     rentalDeal(),
			IsPrimary:  true,
		})
		require.NoError(t, err)
		assert.True(t, resp.IsPrimary)
		assert.Equal(t, unitID.String(), resp.UnitID)

		primaries := f.repo.primaries(propertyID)
		require.Len(t, primaries, 1)
		assert.Equal(t, resp.ID, primaries[0].ID().String())

		require.Len(t, f.summaries.saved, 1)
		summary := f.summaries.saved[0]
		assert.Equal(t, propertyID, summary.PropertyID)
		assert.Equal(t, "325000", summary.Price.String())
		assert.InDelta(t, 0.0646, summary.CapRate, 0.0001)
		assert.Len(t, f.cache.set, 1)
	})

	t.Run("cache failures do not fail the request", func(t *testing.T) {
		f := newCreateScenarioFixture()
		f.cache.setErr = errors.New("redis down")

		_, err := f.uc.Execute(context.Background(), dto.CreateScenarioRequest{
			PropertyID: uuid.NewString(),
			Inputs:     rentalDeal(),
			IsPrimary:  true,
		})
		require.NoError(t, err)
		assert.Len(t, f.summaries.saved, 1)
	})

	t.Run("rejects an invalid property id", func(t *testing.T) {
		f := newCreateScenarioFixture()

		_, err := f.uc.Execute(context.Background(), dto.CreateScenarioRequest{
			PropertyID: "nope",
			Inputs:     rentalDeal(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, dto.ErrInvalidRequest)
		assert.Empty(t, f.repo.saved)
	})

	t.Run("rejects an unknown investment type", func(t *testing.T) {
		f := newCreateScenarioFixture()
		in := rentalDeal()
		require.NoError(t, in.Type.UnmarshalJSON([]byte(`"Ground Lease"`)))

		_, err := f.uc.Execute(context.Background(), dto.CreateScenarioRequest{
			PropertyID: uuid.NewString(),
			Inputs:     in,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, valueobject.ErrUnknownInvestmentType)
	})

	t.Run("returns error when save fails", func(t *testing.T) {
		f := newCreateScenarioFixture()
		f.repo.saveFunc = func(_ context.Context, _ model.Scenario) error {
			return errors.New("database unavailable")
		}

		_, err := f.uc.Execute(context.Background(), dto.CreateScenarioRequest{
			PropertyID: uuid.NewString(),
			Inputs:     rentalDeal(),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save scenario")
		assert.Empty(t, f.publisher.publishedEvents)
	})

	t.Run("failed save of a new primary keeps the current primary", func(t *testing.T) {
		propertyID := uuid.New()
		current := seededScenario(propertyID, "Old", rentalDeal(), true, baseTime)
		f := newCreateScenarioFixture(current)
		f.repo.saveFunc = func(_ context.Context, s model.Scenario) error {
			if s.ID() != current.ID() {
				return errors.New("database unavailable")
			}
			return nil
		}

		_, err := f.uc.Execute(context.Background(), dto.CreateScenarioRequest{
			PropertyID: propertyID.String(),
			Inputs:     rentalDeal(),
			IsPrimary:  true,
		})
		require.Error(t, err)

		primaries := f.repo.primaries(propertyID)
		require.Len(t, primaries, 1)
		assert.Equal(t, current.ID(), primaries[0].ID())
		assert.Empty(t, f.summaries.saved)
	})

	t.Run("returns error when publish fails", func(t *testing.T) {
		f := newCreateScenarioFixture()
		f.publisher.publishFunc = func(_ context.Context, _ ...event.DomainEvent) error {
			return errors.New("broker unavailable")
		}

		_, err := f.uc.Execute(context.Background(), dto.CreateScenarioRequest{
			PropertyID: uuid.NewString(),
			Inputs:     rentalDeal(),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
