package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/services"
	"github.com/EduGate-2025/loan-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authService: authService,
	}
}

// Signup registers a new account. No token is issued; clients log in
// separately.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid request body",
		})
		return
	}

	h.LogRequest(c, "Signup requested", "email", req.Email)

	if err := h.authService.Signup(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SignupResponse{
		Success: true,
		Message: "Signup successful",
	})
}

// Login verifies credentials and returns a bearer token embedding the
// stored role.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid request body",
		})
		return
	}

	h.LogRequest(c, "Login requested", "email", req.Email)

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Success:     true,
		AccessToken: result.Token,
		TokenType:   "bearer",
		Role:        result.Role,
		Name:        result.Name,
	})
}
