package repositories

import (
	"context"

	"github.com/EduGate-2025/loan-service/internal/models"
)

// UserRepository stores account credentials. Creation is a single atomic
// insert; email uniqueness is enforced by the store's unique constraint, not
// by a prior existence check.
type UserRepository interface {
	// Create persists a new account. Returns ErrDuplicateEmail when the
	// email is already registered.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdatePasswordHash rewrites a stored digest, used when a login
	// verifies against a deprecated hashing scheme.
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
}

// LoanFilters narrows loan listings.
type LoanFilters struct {
	Status models.LoanStatus
	Email  string
	Limit  int
	Offset int
}

// LoanRepository stores loan requests. Requests are never deleted; review
// mutates only the status field.
type LoanRepository interface {
	Create(ctx context.Context, loan *models.LoanRequest) error
	GetByID(ctx context.Context, id uint) (*models.LoanRequest, error)
	List(ctx context.Context, filters LoanFilters) ([]*models.LoanRequest, error)

	// UpdateStatus mutates the status of one request. Returns ErrNotFound
	// for an unknown id.
	UpdateStatus(ctx context.Context, id uint, status models.LoanStatus) error
}

// Repository aggregates all sub-repositories behind one handle.
type Repository interface {
	User() UserRepository
	Loan() LoanRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
