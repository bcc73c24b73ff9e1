package services

import (
	"context"
	"sync"

	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/repositories"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	users *mockUserRepository
	loans *mockLoanRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users: &mockUserRepository{byEmail: map[string]*models.User{}},
		loans: &mockLoanRepository{byID: map[uint]*models.LoanRequest{}},
	}
}

func (m *mockRepository) User() repositories.UserRepository { return m.users }
func (m *mockRepository) Loan() repositories.LoanRepository { return m.loans }
func (m *mockRepository) Ping(ctx context.Context) error    { return nil }
func (m *mockRepository) Close() error                      { return nil }

type mockUserRepository struct {
	mu        sync.Mutex
	nextID    uint
	byEmail   map[string]*models.User
	existsErr error
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[user.Email]; exists {
		return repositories.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.byEmail[user.Email] = &stored
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.byEmail {
		if user.ID == id {
			user.PasswordHash = hash
			return nil
		}
	}
	return repositories.ErrNotFound
}

type mockLoanRepository struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*models.LoanRequest
}

func (m *mockLoanRepository) Create(ctx context.Context, loan *models.LoanRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	loan.ID = m.nextID
	stored := *loan
	m.byID[loan.ID] = &stored
	return nil
}

func (m *mockLoanRepository) GetByID(ctx context.Context, id uint) (*models.LoanRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	loan, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *loan
	return &copy, nil
}

func (m *mockLoanRepository) List(ctx context.Context, filters repositories.LoanFilters) ([]*models.LoanRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var loans []*models.LoanRequest
	for i := uint(1); i <= m.nextID; i++ {
		loan, ok := m.byID[i]
		if !ok {
			continue
		}
		if filters.Status != "" && loan.Status != filters.Status {
			continue
		}
		if filters.Email != "" && loan.StudentEmail != filters.Email {
			continue
		}
		copy := *loan
		loans = append(loans, &copy)
	}
	if filters.Offset > 0 {
		if filters.Offset >= len(loans) {
			return nil, nil
		}
		loans = loans[filters.Offset:]
	}
	if filters.Limit > 0 && filters.Limit < len(loans) {
		loans = loans[:filters.Limit]
	}
	return loans, nil
}

func (m *mockLoanRepository) UpdateStatus(ctx context.Context, id uint, status models.LoanStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loan, ok := m.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	loan.Status = status
	return nil
}
