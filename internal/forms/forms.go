// Package forms validates submitted form fields before they reach the
// services. Validation failures come back as field-level messages the
// handlers feed straight into the re-rendered form; nothing here panics
// or writes to the response.
package forms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UserForm carries signup and login credentials.
type UserForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// LanguageForm carries a language code to attach to the current user.
type LanguageForm struct {
	Language string `validate:"required,max=3"`
}

// ParseUserForm extracts and validates the username and password fields.
// The second return value is nil when the form is valid.
func ParseUserForm(r *http.Request) (UserForm, map[string]string) {
	f := UserForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	return f, check(f)
}

// ParseLanguageForm extracts and validates the language field.
// The second return value is nil when the form is valid.
func ParseLanguageForm(r *http.Request) (LanguageForm, map[string]string) {
	f := LanguageForm{
		Language: strings.TrimSpace(r.FormValue("language")),
	}
	return f, check(f)
}

// check runs struct validation and flattens the result into a map of
// lower-cased field name to user-facing message.
func check(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["form"] = "invalid input"
		return fieldErrors
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fieldErrors[field] = field + " is required"
		case "max":
			fieldErrors[field] = field + " must be at most " + fe.Param() + " characters"
		default:
			fieldErrors[field] = field + " is invalid"
		}
	}
	return fieldErrors
}
