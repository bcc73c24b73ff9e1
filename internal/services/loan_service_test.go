package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/EduGate-2025/loan-service/internal/events"
	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/validator"
)

func newLoanService(repo *mockRepository, publisher events.EventPublisher) LoanService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLoanService(repo, publisher, logger, validator.New())
}

func validSubmit() *LoanSubmitRequest {
	return &LoanSubmitRequest{
		Name:       "A",
		Email:      "a@x.com",
		LoanAmount: 50000,
	}
}

func TestLoanService_Submit(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(nil)
	service := newLoanService(repo, publisher)
	ctx := context.Background()

	result, err := service.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if result.FraudScore < models.FraudScoreMin || result.FraudScore > models.FraudScoreMax {
		t.Errorf("fraud score %v outside [%d,%d]", result.FraudScore, models.FraudScoreMin, models.FraudScoreMax)
	}
	if result.Loan.Status != models.StatusUnderReview {
		t.Errorf("initial status should be under_review, got %s", result.Loan.Status)
	}
	if result.Loan.Course != "N/A" {
		t.Errorf("course should default to N/A, got %s", result.Loan.Course)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if published[0].Type != events.TypeLoanSubmitted {
		t.Errorf("expected %s, got %s", events.TypeLoanSubmitted, published[0].Type)
	}
	if published[0].Source != "loan-service" {
		t.Errorf("expected source loan-service, got %s", published[0].Source)
	}
}

func TestLoanService_SubmitFraudScoreRange(t *testing.T) {
	repo := newMockRepository()
	service := newLoanService(repo, nil)
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		result, err := service.Submit(ctx, validSubmit())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if result.FraudScore < models.FraudScoreMin || result.FraudScore > models.FraudScoreMax {
			t.Fatalf("fraud score %v outside [%d,%d]", result.FraudScore, models.FraudScoreMin, models.FraudScoreMax)
		}
	}
}

func TestLoanService_SubmitValidation(t *testing.T) {
	service := newLoanService(newMockRepository(), nil)

	req := validSubmit()
	req.LoanAmount = -5

	_, err := service.Submit(context.Background(), req)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
}

func TestLoanService_SubmitStoresDetails(t *testing.T) {
	repo := newMockRepository()
	service := newLoanService(repo, nil)
	ctx := context.Background()

	duration := 24
	income := 120000.0
	req := validSubmit()
	req.LoanDuration = &duration
	req.FamilyAnnualIncome = &income

	result, err := service.Submit(ctx, req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(result.Loan.Details) == 0 {
		t.Error("optional applicant fields should be kept in the details column")
	}

	bare, err := service.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(bare.Loan.Details) != 0 {
		t.Error("details should stay empty when no optional fields are supplied")
	}
}

func TestLoanService_UpdateStatus(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(nil)
	service := newLoanService(repo, publisher)
	ctx := context.Background()

	result, err := service.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	publisher.ClearEvents()

	if err := service.UpdateStatus(ctx, result.Loan.ID, &LoanStatusUpdateRequest{Status: models.StatusApproved}); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	loan, err := service.GetByID(ctx, result.Loan.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loan.Status != models.StatusApproved {
		t.Errorf("status should persist, got %s", loan.Status)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.TypeLoanStatusChanged {
		t.Fatalf("expected one %s event, got %+v", events.TypeLoanStatusChanged, published)
	}
	data, ok := published[0].Data.(events.LoanStatusChangedEvent)
	if !ok {
		t.Fatalf("unexpected event payload type %T", published[0].Data)
	}
	if data.OldStatus != string(models.StatusUnderReview) || data.NewStatus != string(models.StatusApproved) {
		t.Errorf("status transition mismatch: %+v", data)
	}
}

func TestLoanService_UpdateStatusUnknownLoan(t *testing.T) {
	service := newLoanService(newMockRepository(), nil)

	err := service.UpdateStatus(context.Background(), 999, &LoanStatusUpdateRequest{Status: models.StatusApproved})
	if !errors.Is(err, ErrLoanNotFound) {
		t.Errorf("expected ErrLoanNotFound, got %v", err)
	}
}

func TestLoanService_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newMockRepository()
	service := newLoanService(repo, nil)
	ctx := context.Background()

	result, err := service.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	err = service.UpdateStatus(ctx, result.Loan.ID, &LoanStatusUpdateRequest{Status: "shipped"})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}

	loan, _ := service.GetByID(ctx, result.Loan.ID)
	if loan.Status != models.StatusUnderReview {
		t.Errorf("status must not change on rejected update, got %s", loan.Status)
	}
}

func TestLoanService_List(t *testing.T) {
	repo := newMockRepository()
	service := newLoanService(repo, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := service.Submit(ctx, validSubmit()); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	loans, err := service.List(ctx, LoanListFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(loans) != 3 {
		t.Errorf("expected 3 requests, got %d", len(loans))
	}
}

func TestLoanService_ListFiltered(t *testing.T) {
	repo := newMockRepository()
	service := newLoanService(repo, nil)
	ctx := context.Background()

	first, err := service.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	other := validSubmit()
	other.Email = "b@x.com"
	if _, err := service.Submit(ctx, other); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := service.UpdateStatus(ctx, first.Loan.ID, &LoanStatusUpdateRequest{Status: models.StatusApproved}); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	approved, err := service.List(ctx, LoanListFilters{Status: models.StatusApproved})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != first.Loan.ID {
		t.Errorf("status filter mismatch: %+v", approved)
	}

	byEmail, err := service.List(ctx, LoanListFilters{Email: "b@x.com"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].StudentEmail != "b@x.com" {
		t.Errorf("email filter mismatch: %+v", byEmail)
	}

	page, err := service.List(ctx, LoanListFilters{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page) != 1 {
		t.Errorf("expected 1 request on the second page, got %d", len(page))
	}

	_, err = service.List(ctx, LoanListFilters{Status: "shipped"})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Errorf("unknown status filter should fail validation, got %v", err)
	}
}
