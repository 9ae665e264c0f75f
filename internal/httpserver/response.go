package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"laptopstore-backend/internal/domain"
)

// respondError maps the domain error taxonomy onto HTTP status codes:
// validation 400, unknown identity 401, missing privilege 403, absent
// aggregate or line item 404, unique-identifier conflict 409, otherwise 500.
func respondError(c *gin.Context, err error, notFoundMsg, conflictMsg string) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied."})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": conflictMsg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
	}
}
