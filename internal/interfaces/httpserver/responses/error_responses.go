package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodatlas-server/internal/utils/platformerrors"
)

// HandleError maps an error to the response envelope. Platform errors carry
// their own status; anything else is an unexpected fault.
func HandleError(c *gin.Context, err error, message string) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		status := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())
		body := Envelope{Message: message}
		if status >= http.StatusInternalServerError {
			// Store and infrastructure details stay out of client responses.
			body.Message = "Internal Server Error"
		}
		c.AbortWithStatusJSON(status, body)
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{Message: "Internal Server Error"})
}
