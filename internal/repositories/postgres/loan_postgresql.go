package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/EduGate-2025/loan-service/internal/cache"
	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/repositories"
)

type LoanPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewLoanPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.LoanRepository {
	return &LoanPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *LoanPostgreSQL) Create(ctx context.Context, loan *models.LoanRequest) error {
	if err := r.db.WithContext(ctx).Create(loan).Error; err != nil {
		return fmt.Errorf("failed to create loan request: %w", err)
	}

	cache.InvalidateLoanCache(ctx, r.cacheManager, loan.ID)
	return nil
}

func (r *LoanPostgreSQL) GetByID(ctx context.Context, id uint) (*models.LoanRequest, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var loan models.LoanRequest

	err := r.cacheManager.Loan.CacheOrExecute(ctx, cacheKey, &loan, cache.LoanCacheConfig.TTL, func() (interface{}, error) {
		var dbLoan models.LoanRequest
		if err := r.db.WithContext(ctx).First(&dbLoan, id).Error; err != nil {
			return nil, err
		}
		return &dbLoan, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get loan request: %w", err)
	}

	return &loan, nil
}

func (r *LoanPostgreSQL) List(ctx context.Context, filters repositories.LoanFilters) ([]*models.LoanRequest, error) {
	// Only the unfiltered listing is cached; filtered views go straight to
	// the database.
	if filters == (repositories.LoanFilters{}) {
		var loans []*models.LoanRequest
		err := r.cacheManager.Loan.CacheOrExecute(ctx, "list:all", &loans, cache.LoanCacheConfig.TTL, func() (interface{}, error) {
			return r.listFromDB(ctx, filters)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list loan requests: %w", err)
		}
		return loans, nil
	}

	loans, err := r.listFromDB(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests: %w", err)
	}
	return loans, nil
}

func (r *LoanPostgreSQL) listFromDB(ctx context.Context, filters repositories.LoanFilters) ([]*models.LoanRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.LoanRequest{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Email != "" {
		query = query.Where("student_email = ?", filters.Email)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var loans []*models.LoanRequest
	if err := query.Order("request_date DESC").Find(&loans).Error; err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *LoanPostgreSQL) UpdateStatus(ctx context.Context, id uint, status models.LoanStatus) error {
	result := r.db.WithContext(ctx).Model(&models.LoanRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update loan status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	cache.InvalidateLoanCache(ctx, r.cacheManager, id)
	return nil
}
