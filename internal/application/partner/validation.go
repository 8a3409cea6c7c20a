package partner

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/crm/backend/internal/domain/partner"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

const nameSpecialCharacters = "-'."

var referencePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "personname", isPersonName)
	mustRegister(v, "reference", isReference)
	mustRegister(v, "calendardate", isCalendarDate)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// isPersonName accepts Unicode letters separated by single spaces or by
// one of - ' . and rejects surrounding whitespace.
func isPersonName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || s != strings.TrimSpace(s) {
		return false
	}

	var prev rune
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.Is(unicode.Mn, r):
		case r == ' ':
			if prev == ' ' {
				return false
			}
		case strings.ContainsRune(nameSpecialCharacters, r):
			if prev != 0 && strings.ContainsRune(nameSpecialCharacters, prev) {
				return false
			}
		default:
			return false
		}
		prev = r
	}
	return true
}

func isReference(fl validator.FieldLevel) bool {
	return referencePattern.MatchString(fl.Field().String())
}

func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := partner.ParseDate(fl.Field().String())
	return err == nil
}

// validateStruct runs the tag rules of req and collects every failing field
func validateStruct(req any) *shared.ValidationError {
	verr := shared.NewValidationError()

	err := validate.Struct(req)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable with a non-struct argument
		panic(err)
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", label, fe.Param())
	case "uuid":
		return fmt.Sprintf("The %s field must be a valid UUID.", label)
	case "personname":
		return fmt.Sprintf("The %s field may only contain letters, single spaces and single - ' . separators.", label)
	case "reference":
		return fmt.Sprintf("The %s field may only contain uppercase letters, digits and hyphens.", label)
	case "calendardate":
		return fmt.Sprintf("The %s field must be a valid date.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}
