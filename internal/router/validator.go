package router

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// CustomValidator wraps validator for Echo and registers the domain rules.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator builds the request validator.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	// Registration failures can only come from empty tag names, so ignored.
	_ = v.RegisterValidation("username", validUsername)
	_ = v.RegisterValidation("password_policy", validPassword)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// validPassword enforces the complexity policy: at least one digit, one
// lowercase, one uppercase, and one special character, no spaces. Length is
// handled by a separate min rule so its violation gets its own message.
func validPassword(fl validator.FieldLevel) bool {
	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSpecial = true
		}
	}
	return hasDigit && hasLower && hasUpper && hasSpecial
}
