package models

// ===== RESPONSE DTOs =====

// ErrorResponse is the error body returned by all endpoints. Detail carries
// the caller-facing message; internals are never exposed here.
type ErrorResponse struct {
	Detail string      `json:"detail"`
	Errors interface{} `json:"errors,omitempty"`
}

type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success     bool     `json:"success"`
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	Role        UserRole `json:"role"`
	Name        string   `json:"name"`
}

type LoanSubmitResponse struct {
	Message    string  `json:"message"`
	FraudScore float64 `json:"fraudScore"`
}

type LoanListResponse struct {
	Requests []*LoanRequest `json:"requests"`
}

type StatusUpdateResponse struct {
	Message string `json:"message"`
}
