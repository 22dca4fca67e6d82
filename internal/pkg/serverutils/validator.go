package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"pdf-chatbot-be/internal/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts the first failure
// into a ValidationError so controllers can map it to a 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if ok := errors.As(err, &validationErrors); ok && len(validationErrors) > 0 {
			fe := validationErrors[0]
			field := strings.ToLower(fe.Field())
			return apperror.NewValidationError(fmt.Sprintf("%s is %s", field, fe.Tag()))
		}
		return apperror.NewValidationError(err.Error())
	}
	return nil
}
