package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/port"
	"github.com/kvm55/Covey/internal/domain/service"
	"github.com/kvm55/Covey/pkg/observability"
)

// RunUnderwritingUseCase runs the engine over a set of inputs without
// persisting anything.
type RunUnderwritingUseCase struct {
	engine  *service.UnderwritingEngine
	metrics port.UnderwritingMetrics
}

func NewRunUnderwritingUseCase(engine *service.UnderwritingEngine, metrics port.UnderwritingMetrics) *RunUnderwritingUseCase {
	return &RunUnderwritingUseCase{engine: engine, metrics: metrics}
}

func (uc *RunUnderwritingUseCase) Execute(ctx context.Context, req dto.RunUnderwritingRequest) (dto.RunUnderwritingResponse, error) {
	_, span := observability.StartSpan(ctx, "usecase.RunUnderwriting",
		attribute.String("investment_type", req.Inputs.Type.String()))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.RunUnderwritingResponse{}, err
	}

	start := time.Now()
	results := uc.engine.Run(req.Inputs)
	uc.metrics.ObserveRun(req.Inputs.Type.String(), time.Since(start))

	return dto.RunUnderwritingResponse{Results: results}, nil
}
