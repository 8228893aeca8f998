// internal/handler/handler.go
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"parking-portal/internal/domain"
	"parking-portal/internal/middleware"
	val "parking-portal/internal/validator"
)

// respondError maps domain error kinds to HTTP statuses. Storage and
// external failures are never echoed to the client verbatim.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Operation conflicts with existing records"})
	case errors.Is(err, domain.ErrExternal):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment service is temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// subjectID extracts the authenticated subject set by the auth
// middleware and parses it as an entity id.
func subjectID(c *gin.Context) (uuid.UUID, bool) {
	subject, ok := c.Get(middleware.CtxSubject)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "subject missing"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(subject.(string))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "invalid subject"})
		return uuid.Nil, false
	}
	return id, true
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var errs []string
		for _, e := range err.(validator.ValidationErrors) {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "yearmonth":
		return fmt.Sprintf("%s must be in YYYY-MM format", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "min":
		if e.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", e.Field())
		}
		return fmt.Sprintf("%s is too short", e.Field())
	case "gt":
		return fmt.Sprintf("%s must be positive", e.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
