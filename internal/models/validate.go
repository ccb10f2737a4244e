package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/RogerGower/hsw-mvp/internal/catalog"
)

// FieldError kinds, kept stable for clients.
const (
	KindStructural     = "structural_error"
	KindEmptyChecklist = "empty_checklist"
)

// FieldError is one addressable validation failure. The full set is
// returned to the client verbatim for inline display.
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names, not Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Area/item membership comes from the catalog so the validator and the
	// published schema can never disagree about the vocabulary.
	_ = v.RegisterValidation("check_area", func(fl validator.FieldLevel) bool {
		return catalog.IsCheckArea(fl.Field().String())
	})
	_ = v.RegisterValidation("check_item", func(fl validator.FieldLevel) bool {
		return catalog.IsCheckItem(fl.Field().String())
	})

	return v
}

// Validate checks a candidate submission against the declared constraints.
// It is pure: no side effects, same candidate in, same errors out. All
// field-level violations are collected, not just the first.
func Validate(p *Prestart) []FieldError {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Kind: KindStructural, Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) FieldError {
	// Strip the root struct name from the namespace: "Prestart.checks[0].area"
	// becomes "checks[0].area".
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	if fe.Field() == "checks" && fe.Tag() == "min" {
		return FieldError{
			Field:   field,
			Kind:    KindEmptyChecklist,
			Message: "checklist must contain at least one check",
		}
	}

	return FieldError{
		Field:   field,
		Kind:    KindStructural,
		Message: structuralMessage(fe),
	}
}

func structuralMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing or empty"
	case "oneof", "check_area", "check_item":
		return fmt.Sprintf("value %q is not in the allowed set", fe.Value())
	case "datetime":
		return fmt.Sprintf("value %q is not a valid ISO date (YYYY-MM-DD)", fe.Value())
	case "gte":
		return "value must not be negative"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
