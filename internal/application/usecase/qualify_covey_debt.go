package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/port"
	"github.com/kvm55/Covey/internal/domain/service"
	"github.com/kvm55/Covey/pkg/observability"
)

// QualifyCoveyDebtUseCase checks a deal against the debt fund and, when it
// qualifies, previews the deal re-run on fund terms.
type QualifyCoveyDebtUseCase struct {
	engine  *service.UnderwritingEngine
	metrics port.UnderwritingMetrics
}

func NewQualifyCoveyDebtUseCase(engine *service.UnderwritingEngine, metrics port.UnderwritingMetrics) *QualifyCoveyDebtUseCase {
	return &QualifyCoveyDebtUseCase{engine: engine, metrics: metrics}
}

func (uc *QualifyCoveyDebtUseCase) Execute(ctx context.Context, req dto.QualifyCoveyDebtRequest) (dto.QualifyCoveyDebtResponse, error) {
	_, span := observability.StartSpan(ctx, "usecase.QualifyCoveyDebt",
		attribute.String("investment_type", req.Inputs.Type.String()))
	defer span.End()

	if err := dto.Validate(req); err != nil {
		return dto.QualifyCoveyDebtResponse{}, err
	}

	var noi float64
	if req.NOI != nil {
		noi = *req.NOI
	} else {
		noi = uc.engine.Run(req.Inputs).NOI
	}

	q := service.QualifyForCoveyDebt(req.Inputs, noi)
	uc.metrics.ObserveQualification(req.Inputs.Type.String(), q.Eligible)
	span.SetAttributes(attribute.Bool("eligible", q.Eligible))

	resp := dto.QualifyCoveyDebtResponse{Qualification: q}
	if !q.Eligible {
		return resp, nil
	}

	coveyInputs := service.ApplyCoveyDebtTerms(req.Inputs, q)
	coveyResults := uc.engine.Run(coveyInputs)
	resp.CoveyInputs = &coveyInputs
	resp.CoveyResults = &coveyResults
	return resp, nil
}
