package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studhub/eventrec/internal/validation"
	"github.com/studhub/eventrec/pkg/models"
)

// ValidateRequestBody checks the raw body against the request envelope schema
// before handlers decode it. The body is restored for downstream reads.
func ValidateRequestBody(sv *validation.SchemaValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "BODY_READ_ERROR",
					"message": "Failed to read request body",
				},
			})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if len(bodyBytes) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "EMPTY_BODY",
					"message": "Request body is required",
				},
			})
			c.Abort()
			return
		}

		fieldErrors, err := sv.ValidateBody(bodyBytes)
		if err != nil {
			// Malformed JSON and schema machinery failures end up here.
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":       "INVALID_JSON",
					"message":    "Request body must be valid JSON",
					"request_id": uuid.New().String(),
				},
			})
			c.Abort()
			return
		}
		if len(fieldErrors) > 0 {
			c.Header("X-Request-ID", uuid.New().String())
			c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{Detail: fieldErrors})
			c.Abort()
			return
		}

		c.Next()
	}
}
