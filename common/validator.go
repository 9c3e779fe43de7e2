package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateQuery checks the validate tags of a query struct and maps the first
// failure to a 400 AppError. Missing required fields read "<Field> is required".
func ValidateQuery(query interface{}) *AppError {
	err := validate.Struct(query)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return NewAppError(http.StatusBadRequest, "Invalid query parameters", err)
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "required":
		return NewAppError(http.StatusBadRequest, fmt.Sprintf("%s is required", fe.Field()), nil)
	default:
		return NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid value for %s", fe.Field()), nil)
	}
}
