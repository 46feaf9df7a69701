package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/engine"
	"github.com/poruwalabs/poruwa-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps well-known service errors onto HTTP statuses so
// individual handlers don't repeat the errors.Is ladder.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		RespondError(c, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, engine.ErrWeddingTypeNotFound):
		RespondError(c, http.StatusNotFound, "wedding_type_not_found", err)
	case errors.Is(err, engine.ErrNoRuleForCombination):
		RespondError(c, http.StatusNotFound, "no_rule_for_combination", err)
	case errors.Is(err, engine.ErrInvalidColorExpression):
		RespondError(c, http.StatusBadRequest, "invalid_color", err)
	default:
		RespondError(c, http.StatusBadRequest, "bad_request", err)
	}
}
