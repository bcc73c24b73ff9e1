package models

import (
	"time"

	"gorm.io/datatypes"
)

type LoanStatus string

const (
	StatusUnderReview LoanStatus = "under_review"
	StatusApproved    LoanStatus = "approved"
	StatusRejected    LoanStatus = "rejected"
	StatusCancelled   LoanStatus = "cancelled"
)

// ValidLoanStatus reports whether status is an accepted review outcome.
func ValidLoanStatus(status LoanStatus) bool {
	switch status {
	case StatusUnderReview, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Fraud score bounds. Scores are drawn uniformly from this range; there is
// no real risk model behind them.
const (
	FraudScoreMin = 10
	FraudScoreMax = 95
)

// LoanRequest is a submitted loan application. Requests are never deleted;
// review only mutates the status field.
type LoanRequest struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	StudentName  string  `json:"studentName" gorm:"not null;size:100"`
	StudentEmail string  `json:"studentEmail" gorm:"not null;index;size:255"`
	Phone        *string `json:"phone" gorm:"size:20"`
	LoanAmount   float64 `json:"loanAmount" gorm:"not null"`
	Purpose      *string `json:"purpose" gorm:"type:text"`
	Course       string  `json:"course" gorm:"size:100;default:N/A"`

	FraudScore float64    `json:"fraudScore" gorm:"default:0"`
	Status     LoanStatus `json:"status" gorm:"size:30;default:under_review;index"`

	// Optional applicant details supplied at submission (duration, income,
	// credit score, previous defaults, aadhar, dob). Kept as a JSON column
	// since none of them participate in queries.
	Details datatypes.JSON `json:"details,omitempty" gorm:"type:jsonb"`

	RequestDate time.Time `json:"requestDate" gorm:"autoCreateTime"`
}

func (LoanRequest) TableName() string {
	return "loan_requests"
}
