package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/port"
)

// GetAmortizationScheduleUseCase returns the monthly debt schedule of a
// scenario over its loan term. A scenario without a loan term runs the
// schedule over the full amortization period.
type GetAmortizationScheduleUseCase struct {
	repo port.ScenarioRepository
}

func NewGetAmortizationScheduleUseCase(repo port.ScenarioRepository) *GetAmortizationScheduleUseCase {
	return &GetAmortizationScheduleUseCase{repo: repo}
}

func (uc *GetAmortizationScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GetAmortizationScheduleRequest,
) (dto.AmortizationScheduleResponse, error) {
	if err := dto.Validate(req); err != nil {
		return dto.AmortizationScheduleResponse{}, err
	}
	id, err := parseID("scenario_id", req.ScenarioID)
	if err != nil {
		return dto.AmortizationScheduleResponse{}, err
	}

	scenario, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return dto.AmortizationScheduleResponse{}, fmt.Errorf("find scenario: %w", err)
	}

	in := scenario.Inputs()
	termMonths := min(in.LoanTermYears, model.MaxLoanYears) * 12
	if termMonths <= 0 {
		termMonths = min(in.AmortizationYears, model.MaxLoanYears) * 12
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	loanAmount := decimal.NewFromFloat(in.LoanAmount)
	schedule := model.GenerateAmortizationSchedule(
		loanAmount, in.InterestRate, in.AmortizationYears, termMonths, in.InterestOnly, startDate,
	)

	entries := make([]dto.AmortizationEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		entries = append(entries, dto.AmortizationEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			Principal:        e.Principal,
			Interest:         e.Interest,
			Total:            e.Total,
			RemainingBalance: e.RemainingBalance,
		})
	}

	return dto.AmortizationScheduleResponse{
		ScenarioID:   scenario.ID().String(),
		LoanAmount:   loanAmount,
		InterestRate: in.InterestRate,
		InterestOnly: in.InterestOnly,
		TermMonths:   termMonths,
		Entries:      entries,
	}, nil
}
