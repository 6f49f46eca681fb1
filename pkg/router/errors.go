package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/pkg/auth"
	"github.com/DominusMortem/foodgram-project-react/pkg/server"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

var errValidation = errors.New("request validation failed")

func statusFor(err error) int {
	switch {
	case errors.Is(err, server.ErrInvalidInput),
		errors.Is(err, server.ErrConflict),
		errors.Is(err, server.ErrInvalidOperation),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrBlocked):
		return http.StatusBadRequest
	case errors.Is(err, server.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, server.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, server.ErrUnauthenticated), errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (r *Router) renderError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = fieldMessage(fieldError)
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, rest.Error{Error: errValidation.Error(), Fields: fields})

		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		r.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(status, rest.Error{Error: http.StatusText(status)})

		return
	}

	c.AbortWithStatusJSON(status, rest.Error{Error: err.Error()})
}

func fieldMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fieldError.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fieldError.Tag())
	}
}

// bindJSON decodes the body into request. Malformed bodies are reported as
// invalid input, validation failures keep their field details.
func bindJSON(c *gin.Context, request any) error {
	err := c.ShouldBindJSON(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return err
	}

	return fmt.Errorf("%w: %w", server.ErrInvalidInput, err)
}
