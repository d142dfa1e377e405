package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/application/usecase"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

// UseCases groups the application services exposed over gRPC.
type UseCases struct {
	Run             *usecase.RunUnderwritingUseCase
	Qualify         *usecase.QualifyCoveyDebtUseCase
	Create          *usecase.CreateScenarioUseCase
	Update          *usecase.UpdateScenarioUseCase
	Delete          *usecase.DeleteScenarioUseCase
	Promote         *usecase.PromoteScenarioUseCase
	List            *usecase.ListScenariosUseCase
	GetPrimary      *usecase.GetPrimaryScenarioUseCase
	CreateCoveyDebt *usecase.CreateCoveyDebtScenarioUseCase
	Amortization    *usecase.GetAmortizationScheduleUseCase
	Summary         *usecase.GetPropertySummaryUseCase
}

// UnderwritingHandler implements UnderwritingServiceServer.
type UnderwritingHandler struct {
	UnimplementedUnderwritingServiceServer
	uc     UseCases
	logger *slog.Logger
}

// NewUnderwritingHandler creates a new gRPC underwriting handler.
func NewUnderwritingHandler(uc UseCases, logger *slog.Logger) *UnderwritingHandler {
	return &UnderwritingHandler{uc: uc, logger: logger}
}

func (h *UnderwritingHandler) RunUnderwriting(ctx context.Context, req *dto.RunUnderwritingRequest) (*dto.RunUnderwritingResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.Run.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "RunUnderwriting", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) QualifyCoveyDebt(ctx context.Context, req *dto.QualifyCoveyDebtRequest) (*dto.QualifyCoveyDebtResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.Qualify.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "QualifyCoveyDebt", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) CreateScenario(ctx context.Context, req *dto.CreateScenarioRequest) (*dto.ScenarioResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.Create.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "CreateScenario", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) UpdateScenario(ctx context.Context, req *dto.UpdateScenarioRequest) (*dto.ScenarioResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.Update.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "UpdateScenario", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) DeleteScenario(ctx context.Context, req *dto.ScenarioIDRequest) (*dto.DeleteScenarioResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.Delete.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "DeleteScenario", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) PromoteScenario(ctx context.Context, req *dto.ScenarioIDRequest) (*dto.ScenarioResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.Promote.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "PromoteScenario", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) ListScenarios(ctx context.Context, req *dto.PropertyIDRequest) (*dto.ListScenariosResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.List.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "ListScenarios", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) GetPrimaryScenario(ctx context.Context, req *dto.PropertyIDRequest) (*dto.ScenarioResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.GetPrimary.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "GetPrimaryScenario", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) CreateCoveyDebtScenario(ctx context.Context, req *dto.CreateCoveyDebtScenarioRequest) (*dto.CreateCoveyDebtScenarioResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.CreateCoveyDebt.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "CreateCoveyDebtScenario", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) GetAmortizationSchedule(ctx context.Context, req *dto.GetAmortizationScheduleRequest) (*dto.AmortizationScheduleResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.Amortization.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "GetAmortizationSchedule", err)
	}
	return &resp, nil
}

func (h *UnderwritingHandler) GetPropertySummary(ctx context.Context, req *dto.PropertyIDRequest) (*dto.PropertySummaryResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	resp, err := h.uc.Summary.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "GetPropertySummary", err)
	}
	return &resp, nil
}

var errNilRequest = status.Error(codes.InvalidArgument, "request is required")

// toStatus maps application errors onto gRPC codes. Only unexpected failures
// are logged; their detail stays out of the response.
func (h *UnderwritingHandler) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, dto.ErrInvalidRequest),
		errors.Is(err, model.ErrInvalidScenario),
		errors.Is(err, valueobject.ErrUnknownInvestmentType):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrScenarioNotFound),
		errors.Is(err, model.ErrPropertyNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}

	h.logger.ErrorContext(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}
