package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/studhub/eventrec/pkg/models"
)

// RequestValidator checks decoded requests against struct tags plus the fixed
// skill vocabulary. Violations are rejected here, before anything reaches the
// scoring engine, as structured per-field errors.
type RequestValidator struct {
	validate *validator.Validate
	skills   map[string]struct{}
}

func NewRequestValidator(skills []string) (*RequestValidator, error) {
	rv := &RequestValidator{
		validate: validator.New(),
		skills:   make(map[string]struct{}, len(skills)),
	}
	for _, s := range skills {
		rv.skills[s] = struct{}{}
	}

	// Error locations report json field names, not Go identifiers.
	rv.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := rv.validate.RegisterValidation("skill", rv.validSkill); err != nil {
		return nil, fmt.Errorf("failed to register skill validation: %w", err)
	}

	return rv, nil
}

func (rv *RequestValidator) validSkill(fl validator.FieldLevel) bool {
	_, ok := rv.skills[fl.Field().String()]
	return ok
}

// ValidateRequest returns one FieldError per violation; an empty slice means
// the request is valid.
func (rv *RequestValidator) ValidateRequest(request *models.RecommendationRequest) []models.FieldError {
	err := rv.validate.Struct(request)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "validation_error",
		}}
	}

	fieldErrors := make([]models.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, models.FieldError{
			Loc:   fieldLocation(fe.Namespace()),
			Msg:   rv.message(fe),
			Type:  fmt.Sprintf("value_error.%s", fe.Tag()),
			Input: fe.Value(),
		})
	}
	return fieldErrors
}

func (rv *RequestValidator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "skill":
		return fmt.Sprintf("Skill '%v' is not in the available skills list", fe.Value())
	case "required":
		return "Field required"
	case "min":
		return fmt.Sprintf("Value must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("Value must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("Failed validation '%s'", fe.Tag())
	}
}

// fieldLocation converts a validator namespace like
// "RecommendationRequest.user_profile.interesting_skills[2]" into
// ["body", "user_profile", "interesting_skills", "2"].
func fieldLocation(namespace string) []string {
	parts := strings.Split(namespace, ".")
	loc := []string{"body"}
	for i, part := range parts {
		if i == 0 {
			// Root struct name is implied by "body".
			continue
		}
		if idx := strings.IndexByte(part, '['); idx >= 0 {
			loc = append(loc, part[:idx], strings.TrimSuffix(part[idx+1:], "]"))
		} else {
			loc = append(loc, part)
		}
	}
	return loc
}
