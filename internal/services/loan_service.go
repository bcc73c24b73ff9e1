package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"gorm.io/datatypes"

	"github.com/EduGate-2025/loan-service/internal/events"
	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/repositories"
	"github.com/EduGate-2025/loan-service/internal/validator"
)

type loanService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewLoanService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) LoanService {
	return &loanService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *loanService) Submit(ctx context.Context, req *LoanSubmitRequest) (*LoanSubmitResult, error) {
	s.logger.Info("Submitting loan request", "email", req.Email, "amount", req.LoanAmount)

	if errs := s.validator.ValidateLoanSubmit(req); len(errs) > 0 {
		return nil, errs
	}

	// Placeholder scoring: a uniform draw from [10,95]. Kept for contract
	// compatibility until a real risk model exists.
	fraudScore := float64(models.FraudScoreMin + rand.IntN(models.FraudScoreMax-models.FraudScoreMin+1))

	details, err := marshalDetails(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode applicant details: %w", err)
	}

	loan := &models.LoanRequest{
		StudentName:  req.Name,
		StudentEmail: req.Email,
		Phone:        req.Phone,
		LoanAmount:   req.LoanAmount,
		Purpose:      req.Purpose,
		Course:       "N/A",
		FraudScore:   fraudScore,
		Status:       models.StatusUnderReview,
		Details:      details,
	}

	if err := s.repo.Loan().Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to persist loan request: %w", err)
	}

	s.publish(ctx, events.TypeLoanSubmitted, events.LoanSubmittedEvent{
		LoanID:     loan.ID,
		Email:      loan.StudentEmail,
		Amount:     loan.LoanAmount,
		FraudScore: loan.FraudScore,
	})

	s.logger.Info("Loan request submitted", "loan_id", loan.ID, "fraud_score", fraudScore)

	return &LoanSubmitResult{Loan: loan, FraudScore: fraudScore}, nil
}

func (s *loanService) List(ctx context.Context, filters LoanListFilters) ([]*models.LoanRequest, error) {
	if filters.Status != "" && !models.ValidLoanStatus(filters.Status) {
		return nil, validator.ValidationErrors{{
			Field:   "status",
			Message: "must be a known review status",
			Value:   filters.Status,
			Rule:    "loan_status",
		}}
	}

	loans, err := s.repo.Loan().List(ctx, repositories.LoanFilters{
		Status: filters.Status,
		Email:  filters.Email,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests: %w", err)
	}
	return loans, nil
}

func (s *loanService) GetByID(ctx context.Context, id uint) (*models.LoanRequest, error) {
	loan, err := s.repo.Loan().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan request: %w", err)
	}
	return loan, nil
}

func (s *loanService) UpdateStatus(ctx context.Context, id uint, req *LoanStatusUpdateRequest) error {
	s.logger.Info("Updating loan status", "loan_id", id, "status", req.Status)

	if errs := s.validator.ValidateStatusUpdate(req); len(errs) > 0 {
		return errs
	}

	existing, err := s.repo.Loan().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLoanNotFound
		}
		return fmt.Errorf("failed to get loan request: %w", err)
	}

	if err := s.repo.Loan().UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLoanNotFound
		}
		return fmt.Errorf("failed to update loan status: %w", err)
	}

	s.publish(ctx, events.TypeLoanStatusChanged, events.LoanStatusChangedEvent{
		LoanID:    id,
		OldStatus: string(existing.Status),
		NewStatus: string(req.Status),
	})

	return nil
}

// publish sends a lifecycle event; failures are logged, never returned, so
// eventing cannot fail the originating request.
func (s *loanService) publish(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Error("Failed to publish event", "type", eventType, "error", err)
	}
}

// marshalDetails collects the optional applicant fields into the JSON column.
// An empty detail set stores NULL rather than an empty object.
func marshalDetails(req *LoanSubmitRequest) (datatypes.JSON, error) {
	details := map[string]interface{}{}

	if req.LoanDuration != nil {
		details["loanDuration"] = *req.LoanDuration
	}
	if req.FamilyAnnualIncome != nil {
		details["familyannualincome"] = *req.FamilyAnnualIncome
	}
	if req.CreditScore != nil {
		details["creditScore"] = *req.CreditScore
	}
	if req.PreviousDefaults != nil {
		details["previousDefaults"] = *req.PreviousDefaults
	}
	if req.Aadhar != nil {
		details["aadhar"] = *req.Aadhar
	}
	if req.DOB != nil {
		details["dob"] = *req.DOB
	}

	if len(details) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(details)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
