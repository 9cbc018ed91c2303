// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	"pricing/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the pricing domain tags registered:
// "category" (product category or "all"), "rule_type" and "direction".
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValidFilter()
	})
	_ = v.RegisterValidation("rule_type", func(fl validator.FieldLevel) bool {
		return entity.RuleType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		return entity.AdjustDirection(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct and flattens field errors into one message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "category":
		return field + " must be one of fresh, frozen, canned, other or all"
	case "rule_type":
		return field + " must be one of expiration_based, age_based, demand_based or manual"
	case "direction":
		return field + " must be increase or decrease"
	case "gt", "gte", "lt", "lte", "min", "max":
		return field + " must satisfy " + fe.Tag() + "=" + fe.Param()
	default:
		return field + " is invalid"
	}
}
