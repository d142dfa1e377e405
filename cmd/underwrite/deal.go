package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kvm55/Covey/internal/application/dto"
	"github.com/kvm55/Covey/internal/domain/model"
	"github.com/kvm55/Covey/internal/domain/valueobject"
)

// loadDeal reads a YAML or JSON deal file and lays it over the defaults of
// its investment type. typeOverride, when set, wins over the file's type.
func loadDeal(path, typeOverride string) (model.PropertyInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PropertyInputs{}, fmt.Errorf("read deal file: %w", err)
	}
	return parseDeal(data, typeOverride)
}

func parseDeal(data []byte, typeOverride string) (model.PropertyInputs, error) {
	var header struct {
		Type valueobject.InvestmentType `yaml:"type"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return model.PropertyInputs{}, fmt.Errorf("decode deal: %w", err)
	}

	t := valueobject.InvestmentTypeLongTermRental
	switch {
	case typeOverride != "":
		parsed, err := valueobject.NewInvestmentType(typeOverride)
		if err != nil {
			return model.PropertyInputs{}, err
		}
		t = parsed
	case !header.Type.IsZero():
		if !header.Type.IsSupported() {
			return model.PropertyInputs{}, fmt.Errorf("%w: %q", valueobject.ErrUnknownInvestmentType, header.Type.String())
		}
		t = header.Type
	}

	in := model.DefaultInputs(t)
	if err := yaml.Unmarshal(data, &in); err != nil {
		return model.PropertyInputs{}, fmt.Errorf("decode deal: %w", err)
	}
	in.Type = t
	if err := dto.Validate(dto.RunUnderwritingRequest{Inputs: in}); err != nil {
		return model.PropertyInputs{}, err
	}
	return in, nil
}
