package validator

import (
	"github.com/EduGate-2025/loan-service/internal/models"
)

// SignupRequest is the signup payload. Role is restricted to the closed set;
// anything else fails validation instead of being stored as-is.
type SignupRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=100"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,max=128"`
	Role     models.UserRole `json:"role" validate:"required,account_role"`
	Photo    *string         `json:"photo" validate:"omitempty,max=100000"`
}

// LoginRequest is the login payload. Role is accepted for wire compatibility
// with older clients but has no effect; the stored role wins.
type LoginRequest struct {
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required"`
	Role     *models.UserRole `json:"role" validate:"omitempty"`
}

// LoanSubmitRequest is the loan submission payload. Field names follow the
// public API contract rather than Go conventions.
type LoanSubmitRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	LoanAmount float64 `json:"loanAmount" validate:"required,loan_amount"`
	Purpose    *string `json:"purpose" validate:"omitempty,max=2000"`

	// Optional applicant details, persisted as a JSON blob.
	LoanDuration       *int     `json:"loanDuration" validate:"omitempty,min=1,max=480"`
	FamilyAnnualIncome *float64 `json:"familyannualincome" validate:"omitempty,min=0"`
	CreditScore        *int     `json:"creditScore" validate:"omitempty,min=300,max=900"`
	PreviousDefaults   *string  `json:"previousDefaults" validate:"omitempty,max=10"`
	Aadhar             *string  `json:"aadhar" validate:"omitempty,max=20"`
	DOB                *string  `json:"dob" validate:"omitempty,max=20"`
}

// LoanStatusUpdateRequest mutates a request's review status.
type LoanStatusUpdateRequest struct {
	Status models.LoanStatus `json:"status" validate:"required,loan_status"`
}
