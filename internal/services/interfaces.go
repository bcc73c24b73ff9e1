package services

import (
	"context"

	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type SignupRequest = validator.SignupRequest
type LoginRequest = validator.LoginRequest
type LoanSubmitRequest = validator.LoanSubmitRequest
type LoanStatusUpdateRequest = validator.LoanStatusUpdateRequest

type LoginResult struct {
	Token string
	Role  models.UserRole
	Name  string
}

type LoanSubmitResult struct {
	Loan       *models.LoanRequest
	FraudScore float64
}

// LoanListFilters narrows the review listing. Zero values mean no filter.
type LoanListFilters struct {
	Status models.LoanStatus
	Email  string
	Limit  int
	Offset int
}

// ===== SERVICE INTERFACES =====

// AuthService orchestrates signup and login over the credential store, the
// password hasher and the token issuer.
type AuthService interface {
	// Signup creates an account. Duplicate emails fail with
	// ErrEmailAlreadyRegistered; there is no auto-login on success.
	Signup(ctx context.Context, req *SignupRequest) error

	// Login verifies credentials and issues a session token embedding the
	// stored role. Unknown email and wrong password are indistinguishable
	// (both ErrInvalidCredentials).
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
}

// LoanService handles loan intake and review.
type LoanService interface {
	Submit(ctx context.Context, req *LoanSubmitRequest) (*LoanSubmitResult, error)
	List(ctx context.Context, filters LoanListFilters) ([]*models.LoanRequest, error)
	GetByID(ctx context.Context, id uint) (*models.LoanRequest, error)
	UpdateStatus(ctx context.Context, id uint, req *LoanStatusUpdateRequest) error
}

// ExportService renders loan requests into downloadable reports.
type ExportService interface {
	// ExportLoans returns an xlsx workbook with one row per loan request.
	ExportLoans(ctx context.Context) ([]byte, error)
}

// ServiceManager aggregates all services behind one handle.
type ServiceManager interface {
	Auth() AuthService
	Loan() LoanService
	Export() ExportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
