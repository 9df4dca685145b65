// Package building supplies building specs to simulations, either generated
// at random for a category or assembled from explicit parameters.
package building

//go:generate mockgen -destination=mock/mock_service.go -package=buildingmock github.com/KirkDiggler/disaster-sim/internal/services/building Service

import (
	"context"
	"log/slog"

	entities "github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/random"
)

// Explicit parameter defaults
const (
	DefaultFloors = 3
	DefaultWidth  = 10.0
	DefaultHeight = 12.0
	DefaultDepth  = 10.0
)

// Service provides building specs
type Service interface {
	// Generate draws a random building of the requested category
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// FromParams builds a spec from explicit values, defaulting what is unset
	FromParams(ctx context.Context, input *FromParamsInput) (*FromParamsOutput, error)
}

// GenerateInput selects the category
type GenerateInput struct {
	Type entities.Type
}

// GenerateOutput contains the generated spec
type GenerateOutput struct {
	Spec *entities.Spec
}

// Params are explicit building values. Zero values take the defaults.
type Params struct {
	Type    entities.Type     `json:"type,omitempty" yaml:"type"`
	Floors  int               `json:"floors,omitempty" yaml:"floors"`
	Width   float64           `json:"width,omitempty" yaml:"width"`
	Height  float64           `json:"height,omitempty" yaml:"height"`
	Depth   float64           `json:"depth,omitempty" yaml:"depth"`
	Walls   entities.Material `json:"walls,omitempty" yaml:"walls"`
	Roof    entities.Material `json:"roof,omitempty" yaml:"roof"`
	Windows entities.Material `json:"windows,omitempty" yaml:"windows"`
}

// FromParamsInput contains the explicit values
type FromParamsInput struct {
	Params Params
}

// FromParamsOutput contains the assembled spec
type FromParamsOutput struct {
	Spec *entities.Spec
}

// Config holds the dependencies for the building service
type Config struct {
	Sampler random.Sampler
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Sampler == nil {
		vb.RequiredField("Sampler")
	}

	return vb.Build()
}

type service struct {
	sampler random.Sampler
}

// NewService creates a building service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{sampler: cfg.Sampler}, nil
}

type dimensionRange struct {
	minFloors, floorSpread int
	minWidth, widthSpread  float64
	minDepth, depthSpread  float64
}

var ranges = map[entities.Type]dimensionRange{
	entities.TypeResidential: {minFloors: 2, floorSpread: 3, minWidth: 8, widthSpread: 4, minDepth: 10, depthSpread: 5},
	entities.TypeCommercial:  {minFloors: 1, floorSpread: 2, minWidth: 15, widthSpread: 10, minDepth: 20, depthSpread: 10},
	entities.TypeHighRise:    {minFloors: 10, floorSpread: 20, minWidth: 20, widthSpread: 10, minDepth: 20, depthSpread: 10},
	entities.TypeWarehouse:   {minFloors: 1, floorSpread: 1, minWidth: 30, widthSpread: 20, minDepth: 40, depthSpread: 20},
}

func (s *service) Generate(_ context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, ok := ranges[input.Type]
	if !ok {
		return nil, errors.InvalidArgumentf("cannot generate building of type %q", input.Type).
			WithMeta("type", string(input.Type))
	}

	floors := r.minFloors + s.sampler.Intn(r.floorSpread)
	spec := &entities.Spec{
		Type:   input.Type,
		Floors: floors,
		Dimensions: entities.Dimensions{
			Width:  s.sampler.Uniform(r.minWidth, r.minWidth+r.widthSpread),
			Height: float64(floors) * s.sampler.Uniform(3, 4),
			Depth:  s.sampler.Uniform(r.minDepth, r.minDepth+r.depthSpread),
		},
		Materials: materialsFor(input.Type, floors),
	}

	slog.Debug("building generated",
		"type", spec.Type,
		"floors", spec.Floors,
		"height", spec.Dimensions.Height)

	return &GenerateOutput{Spec: spec}, nil
}

func materialsFor(t entities.Type, floors int) entities.Materials {
	m := entities.Materials{
		Walls:   entities.MaterialBrick,
		Roof:    entities.MaterialTiles,
		Windows: entities.MaterialStandard,
	}
	if t == entities.TypeHighRise {
		m.Walls = entities.MaterialConcrete
	}
	if t == entities.TypeWarehouse {
		m.Roof = entities.MaterialMetal
	}
	if floors > 5 {
		m.Windows = entities.MaterialGlass
	}
	return m
}

func (s *service) FromParams(_ context.Context, input *FromParamsInput) (*FromParamsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p := input.Params
	spec := &entities.Spec{
		Type:   orDefault(p.Type, entities.TypeCustom),
		Floors: p.Floors,
		Dimensions: entities.Dimensions{
			Width:  p.Width,
			Height: p.Height,
			Depth:  p.Depth,
		},
		Materials: entities.Materials{
			Walls:   orDefault(p.Walls, entities.MaterialConcrete),
			Roof:    orDefault(p.Roof, entities.MaterialTiles),
			Windows: orDefault(p.Windows, entities.MaterialStandard),
		},
	}
	if spec.Floors == 0 {
		spec.Floors = DefaultFloors
	}
	if spec.Dimensions.Width == 0 {
		spec.Dimensions.Width = DefaultWidth
	}
	if spec.Dimensions.Height == 0 {
		spec.Dimensions.Height = DefaultHeight
	}
	if spec.Dimensions.Depth == 0 {
		spec.Dimensions.Depth = DefaultDepth
	}

	if err := spec.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid building params")
	}

	return &FromParamsOutput{Spec: spec}, nil
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}
