package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/services"
	"github.com/EduGate-2025/loan-service/internal/utils"
	"github.com/EduGate-2025/loan-service/internal/validator"
)

// BaseHandler carries the shared handler plumbing.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c.Request.Context(), h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.LoggerFromContext(c.Request.Context(), h.logger).Error(msg, args...)
}

// HandleServiceError maps service errors onto the HTTP contract. Validation
// failures carry field detail; everything else is a fixed caller-facing
// message so internals never leak.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Detail: "Validation failed",
			Errors: verrs,
		})
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "Email already registered",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Detail: "Invalid credentials",
		})
	case errors.Is(err, services.ErrLoanNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Detail: "Loan not found",
		})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: "Internal server error",
		})
	}
}
