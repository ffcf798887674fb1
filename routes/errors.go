package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-report-server/models"
)

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	var validation *models.ValidationError
	var upload *models.UploadError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"message": validation.Error(),
			"fields":  validation.Fields,
		})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
	case errors.Is(err, models.ErrNotAssigned):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, models.ErrComplaintNotFound), errors.Is(err, models.ErrWorkerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, models.ErrComplaintResolved):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, models.ErrAfterPhotoRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
			"fields":  []string{"after_photo"},
		})
	case errors.As(err, &upload):
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "Photo upload failed",
			"message": "The photo could not be stored. Please try again later.",
		})
	default:
		log.Printf("❌ %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

func badRequest(c *gin.Context, message string, fields ...string) {
	body := gin.H{"success": false, "error": "Invalid request format", "message": message}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	c.JSON(http.StatusBadRequest, body)
}
