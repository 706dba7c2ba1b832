package requests

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"foodatlas-server/internal/domain/food"
	"foodatlas-server/internal/interfaces/httpserver/responses"
)

// CreateFoodRequest carries the catalog entry creation payload.
type CreateFoodRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Origin      string `json:"origin" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"required,min=10,max=1000"`
}

// UpdateFoodRequest carries optional catalog entry field updates.
type UpdateFoodRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Origin      *string `json:"origin" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,min=10,max=1000"`
}

// ToDomain converts the update request to the domain input.
func (r *UpdateFoodRequest) ToDomain() food.UpdateInput {
	return food.UpdateInput{
		Name:        r.Name,
		Origin:      r.Origin,
		Description: r.Description,
	}
}

var foodFieldMessages = map[string]string{
	"Name":        "Name must be between 2 and 100 characters",
	"Origin":      "Origin must be between 2 and 100 characters",
	"Description": "Description must be between 10 and 1000 characters",
}

var foodRequiredMessages = map[string]string{
	"Name":        "Name is required",
	"Origin":      "Origin is required",
	"Description": "Description is required",
}

var foodFieldNames = map[string]string{
	"Name":        "name",
	"Origin":      "origin",
	"Description": "description",
}

// TranslateBindingError turns gin's validator errors into per-field messages.
func TranslateBindingError(err error) []responses.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []responses.FieldError{{Field: "body", Message: "Request body is malformed"}}
	}

	errs := make([]responses.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := foodFieldNames[fieldErr.Field()]
		if field == "" {
			field = fieldErr.Field()
		}
		message := foodFieldMessages[fieldErr.Field()]
		if fieldErr.Tag() == "required" {
			message = foodRequiredMessages[fieldErr.Field()]
		}
		if message == "" {
			message = "Invalid value"
		}
		errs = append(errs, responses.FieldError{Field: field, Message: message})
	}
	return errs
}
