package validator

import (
	"testing"

	"github.com/EduGate-2025/loan-service/internal/models"
)

func TestValidateSignup(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{
			name: "valid student",
			req:  SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1", Role: models.RoleStudent},
		},
		{
			name: "valid distributor",
			req:  SignupRequest{Name: "D", Email: "d@x.com", Password: "secret1", Role: models.RoleDistributor},
		},
		{
			name:    "role outside closed set",
			req:     SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1", Role: "admin"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     SignupRequest{Name: "A", Password: "secret1", Role: models.RoleStudent},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     SignupRequest{Name: "A", Email: "not-an-email", Password: "secret1", Role: models.RoleStudent},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     SignupRequest{Name: "A", Email: "a@x.com", Role: models.RoleStudent},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateSignup(&tt.req)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("ValidateSignup() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateLoanSubmit(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     LoanSubmitRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  LoanSubmitRequest{Name: "A", Email: "a@x.com", LoanAmount: 50000},
		},
		{
			name:    "zero amount",
			req:     LoanSubmitRequest{Name: "A", Email: "a@x.com", LoanAmount: 0},
			wantErr: true,
		},
		{
			name:    "negative amount",
			req:     LoanSubmitRequest{Name: "A", Email: "a@x.com", LoanAmount: -100},
			wantErr: true,
		},
		{
			name:    "absurd amount",
			req:     LoanSubmitRequest{Name: "A", Email: "a@x.com", LoanAmount: 100_000_000},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateLoanSubmit(&tt.req)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("ValidateLoanSubmit() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateStatusUpdate(t *testing.T) {
	v := New()

	for _, status := range []models.LoanStatus{
		models.StatusUnderReview, models.StatusApproved, models.StatusRejected, models.StatusCancelled,
	} {
		if errs := v.ValidateStatusUpdate(&LoanStatusUpdateRequest{Status: status}); len(errs) > 0 {
			t.Errorf("status %q should be accepted: %v", status, errs)
		}
	}

	if errs := v.ValidateStatusUpdate(&LoanStatusUpdateRequest{Status: "shipped"}); len(errs) == 0 {
		t.Error("status outside the whitelist should be rejected")
	}
}
