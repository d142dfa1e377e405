package usecase

import (
	"context"
	"fmt"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/port"
)

// ListScenariosUseCase returns a property's scenarios, primary first and the
// rest oldest first.
type ListScenariosUseCase struct {
	repo port.ScenarioRepository
}

func NewListScenariosUseCase(repo port.ScenarioRepository) *ListScenariosUseCase {
	return &ListScenariosUseCase{repo: repo}
}

func (uc *ListScenariosUseCase) Execute(ctx context.Context, req dto.PropertyIDRequest) (dto.ListScenariosResponse, error) {
	if err := dto.Validate(req); err != nil {
		return dto.ListScenariosResponse{}, err
	}
	propertyID, err := parseID("property_id", req.PropertyID)
	if err != nil {
		return dto.ListScenariosResponse{}, err
	}

	scenarios, err := uc.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return dto.ListScenariosResponse{}, fmt.Errorf("list scenarios: %w", err)
	}

	resp := dto.ListScenariosResponse{Scenarios: make([]dto.ScenarioResponse, 0, len(scenarios))}
	for _, s := range scenarios {
		resp.Scenarios = append(resp.Scenarios, toScenarioResponse(s))
	}
	return resp, nil
}

// GetPrimaryScenarioUseCase returns a property's primary scenario.
type GetPrimaryScenarioUseCase struct {
	repo port.ScenarioRepository
}

func NewGetPrimaryScenarioUseCase(repo port.ScenarioRepository) *GetPrimaryScenarioUseCase {
	return &GetPrimaryScenarioUseCase{repo: repo}
}

func (uc *GetPrimaryScenarioUseCase) Execute(ctx context.Context, req dto.PropertyIDRequest) (dto.ScenarioResponse, error) {
	if err := dto.Validate(req); err != nil {
		return dto.ScenarioResponse{}, err
	}
	propertyID, err := parseID("property_id", req.PropertyID)
	if err != nil {
		return dto.ScenarioResponse{}, err
	}

	scenario, err := uc.repo.FindPrimary(ctx, propertyID)
	if err != nil {
		return dto.ScenarioResponse{}, fmt.Errorf("find primary scenario: %w", err)
	}
	return toScenarioResponse(scenario), nil
}
