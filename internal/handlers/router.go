package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EduGate-2025/loan-service/internal/auth"
	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/services"
	"github.com/EduGate-2025/loan-service/internal/utils"
)

type HandlerManager struct {
	authHandler    *AuthHandler
	loanHandler    *LoanHandler
	authMiddleware *JWTAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:    NewAuthHandler(serviceManager.Auth(), logger),
		loanHandler:    NewLoanHandler(serviceManager.Loan(), serviceManager.Export(), logger),
		authMiddleware: NewJWTAuthMiddleware(tokens),
	}
}

// SetupRoutes sets up all API routes. Loan endpoints require a verified
// session; review operations are distributor-only.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Root responds with a fixed banner; uptime monitors match on it
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "EduGate Backend Running",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "loan-service",
		})
	})

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", hm.authHandler.Signup)
			authRoutes.POST("/login", hm.authHandler.Login)
		}

		loans := api.Group("/loans")
		loans.Use(hm.authMiddleware.AuthMiddleware())
		{
			loans.GET("", hm.loanHandler.List)
			loans.POST("/submit", hm.loanHandler.Submit)
			loans.GET("/:id", hm.loanHandler.Get)

			// Review operations - distributors only
			loans.POST("/:id/status", hm.authMiddleware.RequireRoleMiddleware(models.RoleDistributor), hm.loanHandler.UpdateStatus)
			loans.GET("/export", hm.authMiddleware.RequireRoleMiddleware(models.RoleDistributor), hm.loanHandler.Export)
		}
	}
}
