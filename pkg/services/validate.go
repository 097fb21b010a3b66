package services

import (
	"fmt"
	"strings"

	"devlinks-go/pkg/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is a machine-addressable validation failure: which record
// (link index), which field, and a human-readable message for inline
// display.
type FieldError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aborts a save before any remote call is made.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fmt.Sprintf("link %d %s: %s", fe.Index, fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Lookup returns the message for a given link index and field, if any.
func (v ValidationErrors) Lookup(index int, field string) (string, bool) {
	for _, fe := range v {
		if fe.Index == index && fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// ValidateLinks checks every link against the save gate: platform must be
// non-empty, URL must be non-empty and a syntactically valid absolute URL.
func ValidateLinks(links []models.Link) ValidationErrors {
	var errs ValidationErrors
	for i, link := range links {
		errs = append(errs, validateStruct(link, i)...)
	}
	return errs
}

// ValidateProfile checks the required profile fields. The index on profile
// errors is always zero; callers key them by field name.
func ValidateProfile(profile models.Profile) ValidationErrors {
	return validateStruct(profile, 0)
}

// validateStruct maps validator tag failures to positional field errors
// with the user-facing messages the editing UI shows inline.
func validateStruct(v any, index int) ValidationErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Index: index, Field: "", Message: err.Error()}}
	}
	var out ValidationErrors
	for _, fe := range verrs {
		field := fieldName(fe.Field())
		msg := "Can't be empty"
		if fe.Tag() == "url" {
			msg = "Please enter a valid URL"
		}
		out = append(out, FieldError{Index: index, Field: field, Message: msg})
	}
	return out
}

func fieldName(structField string) string {
	switch structField {
	case "Platform":
		return "platform"
	case "URL":
		return "url"
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	case "Email":
		return "email"
	case "Image":
		return "image"
	}
	return strings.ToLower(structField)
}
