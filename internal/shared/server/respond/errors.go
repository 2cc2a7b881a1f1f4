package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/telemetry"
)

// GenericFailure is the catch-all fault message shown to clients. All
// unexpected errors collapse to this one string.
const GenericFailure = "Что-то пошло не так, попробуйте снова"

// FieldError carries field-level validation detail, mirroring the shape the
// web client already consumes.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// Fail sends a {"message": ...} error body and logs the failure.
func Fail(c *gin.Context, status int, message string) {
	logError(c, status, message, nil)
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// ValidationFailed sends the aggregate message plus per-field details.
func ValidationFailed(c *gin.Context, message string, details []FieldError) {
	logError(c, http.StatusInternalServerError, message, details)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"errors":  details,
		"message": message,
	})
}

// ServerError sends the generic fault body and logs the underlying error.
func ServerError(c *gin.Context, err error) {
	fields := map[string]any{
		"status":     http.StatusInternalServerError,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	telemetry.Error("http.error", fields)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": GenericFailure})
}

func logError(c *gin.Context, status int, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if details != nil {
		fields["details"] = details
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)
}
