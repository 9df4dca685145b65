package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("email", "is invalid")
	ve.AddFieldErrorf("age", "must be at least %d", 18)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "email: is invalid")
	s.Assert().Contains(ve.Error(), "age: must be at least 18")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("intensity", "must be between %d and %d", 1, 10).
		RequiredField("disaster").
		InvalidField("speed", "not a supported playback speed")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidationErrorSortedFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("width", "must be positive")
	ve.AddFieldError("depth", "must be positive")
	ve.AddFieldError("floors", "must be at least 1")

	s.Assert().Equal(
		"validation failed: depth: must be positive; floors: must be at least 1; width: must be positive",
		ve.Error(),
	)
}

func (s *ValidationTestSuite) TestValidatePositive() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("width", 0, vb)
	errors.ValidatePositive("height", -2.5, vb)
	errors.ValidatePositive("depth", 12, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["width"][0], "must be positive")
	s.Assert().Contains(validationErrors["height"][0], "must be positive")
	s.Assert().NotContains(validationErrors, "depth")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("intensity", 12, 1, 10, vb)
	errors.ValidateRange("floors", 3, 1, 200, vb)
	errors.ValidateRange("fps", 0, 1, 120, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["intensity"][0], "must be between 1 and 10")
	s.Assert().Contains(validationErrors["fps"][0], "must be between 1 and 120")
	s.Assert().NotContains(validationErrors, "floors")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedKinds := []string{"earthquake", "flood", "fire", "hurricane"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("disaster", "tornado", allowedKinds, vb)
	errors.ValidateEnum("fallback", "flood", allowedKinds, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["disaster"][0], "must be one of: earthquake, flood, fire, hurricane")
	s.Assert().NotContains(validationErrors, "fallback")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	type scenarioInput struct {
		Name      string
		Disaster  string
		Intensity int
		Dims      map[string]float64
	}

	input := scenarioInput{
		Name:      "",
		Disaster:  "meteor",
		Intensity: 25,
		Dims: map[string]float64{
			"width":  10,
			"height": 0,
			"depth":  -1,
		},
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateEnum("disaster", input.Disaster, []string{"earthquake", "flood", "fire", "hurricane"}, vb)
	errors.ValidateRange("intensity", input.Intensity, 1, 10, vb)
	for dim, v := range input.Dims {
		errors.ValidatePositive(dim, v, vb)
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "name")
	s.Assert().Contains(validationErrors, "disaster")
	s.Assert().Contains(validationErrors, "intensity")
	s.Assert().Contains(validationErrors, "height")
	s.Assert().Contains(validationErrors, "depth")
	s.Assert().NotContains(validationErrors, "width")
}
