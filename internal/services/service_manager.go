package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/EduGate-2025/loan-service/internal/auth"
	"github.com/EduGate-2025/loan-service/internal/events"
	"github.com/EduGate-2025/loan-service/internal/repositories"
	"github.com/EduGate-2025/loan-service/internal/validator"
)

// serviceManager wires all services over shared dependencies.
type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher

	authService   AuthService
	loanService   LoanService
	exportService ExportService

	mu          sync.RWMutex
	initialized bool
}

func NewDefaultServiceManager(
	repo repositories.Repository,
	hasher *auth.Hasher,
	tokens *auth.TokenManager,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ServiceManager {
	return &serviceManager{
		repo:          repo,
		logger:        logger,
		validator:     validator,
		publisher:     publisher,
		authService:   NewAuthService(repo, hasher, tokens, logger, validator),
		loanService:   NewLoanService(repo, publisher, logger, validator),
		exportService: NewExportService(repo, logger),
	}
}

func (m *serviceManager) Auth() AuthService     { return m.authService }
func (m *serviceManager) Loan() LoanService     { return m.loanService }
func (m *serviceManager) Export() ExportService { return m.exportService }

func (m *serviceManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := m.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	m.initialized = true
	m.logger.Info("Services initialized")
	return nil
}

func (m *serviceManager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil
	}

	if m.publisher != nil {
		if err := m.publisher.Close(); err != nil {
			m.logger.Warn("Failed to close event publisher", "error", err)
		}
	}

	m.initialized = false
	m.logger.Info("Services shut down")
	return nil
}
