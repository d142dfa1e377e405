package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kvm55/Covey/internal/domain/event"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

// --- Mock implementations ---

// mockScenarioRepository keeps scenarios in memory. An error from saveFunc
// aborts the save; deleteFunc replaces the default delete.
type mockScenarioRepository struct {
	saveFunc   func(ctx context.Context, s model.Scenario) error
	deleteFunc func(ctx context.Context, id uuid.UUID) error
	scenarios  map[uuid.UUID]model.Scenario
	saved      []model.Scenario
	deleted    []uuid.UUID
}

func newMockScenarioRepository(seed ...model.Scenario) *mockScenarioRepository {
	m := &mockScenarioRepository{scenarios: make(map[uuid.UUID]model.Scenario)}
	for _, s := range seed {
		m.scenarios[s.ID()] = s
	}
	return m
}

func (m *mockScenarioRepository) Save(ctx context.Context, s model.Scenario) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, s); err != nil {
			return err
		}
	}
	if s.IsPrimary() {
		for id, sib := range m.scenarios {
			if id != s.ID() && sib.PropertyID() == s.PropertyID() {
				m.scenarios[id] = sib.ClearPrimary(s.UpdatedAt())
			}
		}
	}
	m.saved = append(m.saved, s)
	m.scenarios[s.ID()] = s.ClearEvents()
	return nil
}

func (m *mockScenarioRepository) FindByID(_ context.Context, id uuid.UUID) (model.Scenario, error) {
	s, ok := m.scenarios[id]
	if !ok {
		return model.Scenario{}, model.ErrScenarioNotFound
	}
	return s, nil
}

func (m *mockScenarioRepository) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]model.Scenario, error) {
	var out []model.Scenario
	for _, s := range m.scenarios {
		if s.PropertyID() == propertyID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPrimary() != out[j].IsPrimary() {
			return out[i].IsPrimary()
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out, nil
}

func (m *mockScenarioRepository) FindPrimary(_ context.Context, propertyID uuid.UUID) (model.Scenario, error) {
	for _, s := range m.scenarios {
		if s.PropertyID() == propertyID && s.IsPrimary() {
			return s, nil
		}
	}
	return model.Scenario{}, model.ErrScenarioNotFound
}

func (m *mockScenarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	if _, ok := m.scenarios[id]; !ok {
		return model.ErrScenarioNotFound
	}
	delete(m.scenarios, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockScenarioRepository) primaries(propertyID uuid.UUID) []model.Scenario {
	var out []model.Scenario
	for _, s := range m.scenarios {
		if s.PropertyID() == propertyID && s.IsPrimary() {
			out = append(out, s)
		}
	}
	return out
}

type mockSummaryRepository struct {
	saveSummaryFunc func(ctx context.Context, summary model.PropertySummary) error
	saved           []model.PropertySummary
}

func (m *mockSummaryRepository) SaveSummary(ctx context.Context, summary model.PropertySummary) error {
	if m.saveSummaryFunc != nil {
		return m.saveSummaryFunc(ctx, summary)
	}
	m.saved = append(m.saved, summary)
	return nil
}

func (m *mockSummaryRepository) FindSummary(_ context.Context, propertyID uuid.UUID) (model.PropertySummary, error) {
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].PropertyID == propertyID {
			return m.saved[i], nil
		}
	}
	return model.PropertySummary{}, model.ErrPropertyNotFound
}

type mockSummaryCache struct {
	getErr      error
	setErr      error
	entries     map[uuid.UUID]model.PropertySummary
	gets        int
	set         []model.PropertySummary
	invalidated []uuid.UUID
}

func (m *mockSummaryCache) Get(_ context.Context, propertyID uuid.UUID) (model.PropertySummary, bool, error) {
	m.gets++
	if m.getErr != nil {
		return model.PropertySummary{}, false, m.getErr
	}
	s, ok := m.entries[propertyID]
	return s, ok, nil
}

func (m *mockSummaryCache) Set(_ context.Context, summary model.PropertySummary) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set = append(m.set, summary)
	return nil
}

func (m *mockSummaryCache) Invalidate(_ context.Context, propertyID uuid.UUID) error {
	m.invalidated = append(m.invalidated, propertyID)
	return nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

func (m *mockEventPublisher) types() []string {
	out := make([]string, 0, len(m.publishedEvents))
	for _, e := range m.publishedEvents {
		out = append(out, e.EventType())
	}
	return out
}

type mockMetrics struct {
	runs           []string
	qualifications map[bool]int
	writes         []string
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{qualifications: make(map[bool]int)}
}

func (m *mockMetrics) ObserveRun(investmentType string, _ time.Duration) {
	m.runs = append(m.runs, investmentType)
}

func (m *mockMetrics) ObserveQualification(_ string, eligible bool) {
	m.qualifications[eligible]++
}

func (m *mockMetrics) ScenarioWritten(operation string) {
	m.writes = append(m.writes, operation)
}

// --- Fixtures ---

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// rentalDeal is a $325k single-family rental with $21,000 NOI, which the debt
// fund declines at 1.08x.
func rentalDeal() model.PropertyInputs {
	in := model.DefaultInputs(valueobject.InvestmentTypeLongTermRental)
	in.PurchasePrice = 325_000
	in.ClosingCosts = 5_000
	in.LoanAmount = 243_750
	in.InterestRate = 6.5
	in.GrossMonthlyRent = 2_500
	in.PropertyTaxes = 3_000
	in.Insurance = 1_200
	in.Maintenance = 1_500
	in.Management = 1_800
	return in
}

// flipDeal always qualifies: flips skip the DSCR check.
func flipDeal() model.PropertyInputs {
	in := model.DefaultInputs(valueobject.InvestmentTypeFixAndFlip)
	in.PurchasePrice = 200_000
	in.ClosingCosts = 4_000
	in.Renovations = 30_000
	in.LoanAmount = 150_000
	in.AfterRepairValue = 280_000
	in.HoldingCostsMonthly = 1_500
	return in
}

func seededScenario(propertyID uuid.UUID, name string, in model.PropertyInputs, primary bool, createdAt time.Time) model.Scenario {
	strategy, err := valueobject.ToStrategyType(in.Type)
	if err != nil {
		panic(err)
	}
	results := model.UnderwritingResults{NOI: 21_000, CapRate: 6.46, IRR: 3.2}
	return model.ReconstructScenario(uuid.New(), propertyID, nil, name, strategy, in, results, primary, createdAt, createdAt)
}
