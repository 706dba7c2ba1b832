package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard response body: message plus optional data and
// per-field errors.
type Envelope struct {
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError names a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK writes a 200 envelope.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Message: message, Data: data})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Message: message, Data: data})
}

// Message aborts with a bare message envelope and the given status.
func Message(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Message: message})
}

// ValidationFailed aborts with a 400 envelope carrying per-field errors.
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{
		Message: "Validation error",
		Errors:  errs,
	})
}
