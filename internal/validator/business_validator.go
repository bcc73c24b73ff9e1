package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/EduGate-2025/loan-service/internal/models"
)

// ValidationError describes one failed field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator wraps go-playground validation with the service's business rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerBusinessRules()

	return v
}

func (v *Validator) registerBusinessRules() {
	// account_role: closed role set, nothing outside it is ever stored
	_ = v.validate.RegisterValidation("account_role", func(fl validator.FieldLevel) bool {
		return models.ValidRole(models.UserRole(fl.Field().String()))
	})

	// loan_amount: positive and within a sane intake ceiling
	_ = v.validate.RegisterValidation("loan_amount", func(fl validator.FieldLevel) bool {
		amount := fl.Field().Float()
		return amount > 0 && amount <= 10_000_000
	})

	// loan_status: review outcome whitelist
	_ = v.validate.RegisterValidation("loan_status", func(fl validator.FieldLevel) bool {
		return models.ValidLoanStatus(models.LoanStatus(fl.Field().String()))
	})
}

// Validate validates a struct against its tags and registered rules.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err != nil {
		return toValidationErrors(err)
	}
	return nil
}

// ValidateSignup validates the signup payload.
func (v *Validator) ValidateSignup(req *SignupRequest) ValidationErrors {
	return v.Validate(req)
}

// ValidateLogin validates the login payload.
func (v *Validator) ValidateLogin(req *LoginRequest) ValidationErrors {
	return v.Validate(req)
}

// ValidateLoanSubmit validates the loan submission payload.
func (v *Validator) ValidateLoanSubmit(req *LoanSubmitRequest) ValidationErrors {
	return v.Validate(req)
}

// ValidateStatusUpdate validates a status mutation.
func (v *Validator) ValidateStatusUpdate(req *LoanStatusUpdateRequest) ValidationErrors {
	return v.Validate(req)
}

func toValidationErrors(err error) ValidationErrors {
	var errors ValidationErrors

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	for _, fe := range fieldErrors {
		errors = append(errors, ValidationError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return errors
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "account_role":
		return fmt.Sprintf("must be one of: %s, %s", models.RoleStudent, models.RoleDistributor)
	case "loan_amount":
		return "must be a positive amount"
	case "loan_status":
		return fmt.Sprintf("must be one of: %s, %s, %s, %s",
			models.StatusUnderReview, models.StatusApproved, models.StatusRejected, models.StatusCancelled)
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}
