package http

import (
	"errors"
	"reflect"
	"strings"

	"deliverydesk/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into echo. Field names in errors
// follow the json tags.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return &Validator{validate: v}
}

// Validate returns a ValueIsInvalidError naming every failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" "+validationMessage(fe))
	}
	return errs.NewValueIsInvalidErrorWithCause("request body", errors.New(strings.Join(fields, "; ")))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	}
	return "is invalid"
}
