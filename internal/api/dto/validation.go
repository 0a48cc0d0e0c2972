package dto

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/go-playground/validator/v10"
)

// FirstLetterUppercaseTag is the validator tag that requires the first
// character of a non-empty string to be uppercase.
const FirstLetterUppercaseTag = "primeraletramayuscula"

// Validation messages.
const (
	MsgFirstLetterUppercase = "La primera letra debe ser mayúscula."
	msgRequired             = "El campo %s es requerido."
	msgMaxLength            = "El campo %s no debe tener más de %s caracteres."
	msgMinLength            = "El campo %s debe tener al menos %s caracteres."
	msgEmail                = "El campo %s no es un correo electrónico válido."
	msgInvalid              = "El campo %s no es válido."
)

// ValidationErrors maps JSON field names to the message describing why the
// field was rejected.
type ValidationErrors map[string]string

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator checks request DTOs against their validate tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the custom tags registered and JSON
// names used as field names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation(FirstLetterUppercaseTag, firstLetterUppercase)
	return &Validator{validate: v}
}

func firstLetterUppercase(fl validator.FieldLevel) bool {
	return domain.FirstLetterUppercase(fl.Field().String())
}

// Validate returns nil when s is valid, ValidationErrors when a field fails
// and any other error when s cannot be validated at all.
func (v *Validator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case FirstLetterUppercaseTag:
		return MsgFirstLetterUppercase
	case "required":
		return fmt.Sprintf(msgRequired, field)
	case "max":
		return fmt.Sprintf(msgMaxLength, field, fe.Param())
	case "min":
		return fmt.Sprintf(msgMinLength, field, fe.Param())
	case "email":
		return fmt.Sprintf(msgEmail, field)
	default:
		return fmt.Sprintf(msgInvalid, field)
	}
}
