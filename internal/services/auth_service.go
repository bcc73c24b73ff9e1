package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/EduGate-2025/loan-service/internal/auth"
	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/repositories"
	"github.com/EduGate-2025/loan-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	hasher    *auth.Hasher
	tokens    *auth.TokenManager
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAuthService(repo repositories.Repository, hasher *auth.Hasher, tokens *auth.TokenManager, logger *slog.Logger, validator *validator.Validator) AuthService {
	return &authService{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
		validator: validator,
	}
}

func (s *authService) Signup(ctx context.Context, req *SignupRequest) error {
	s.logger.Info("Signing up account", "email", req.Email, "role", req.Role)

	if errs := s.validator.ValidateSignup(req); len(errs) > 0 {
		return errs
	}

	// Short-circuit known duplicates before the expensive hash. The insert's
	// unique constraint below stays authoritative, so a check failure or a
	// concurrent signup still resolves to the same error.
	if exists, err := s.repo.User().ExistsByEmail(ctx, req.Email); err == nil && exists {
		return ErrEmailAlreadyRegistered
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Photo:        req.Photo,
	}

	// Single atomic insert; the store's unique constraint decides the
	// duplicate case, so concurrent signups with the same email cannot race.
	if err := s.repo.User().Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return ErrEmailAlreadyRegistered
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Account created", "user_id", user.ID, "role", user.Role)
	return nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	if errs := s.validator.ValidateLogin(req); len(errs) > 0 {
		return nil, errs
	}

	// req.Role is accepted for wire compatibility but never consulted; the
	// stored role is authoritative.

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.maybeRehash(ctx, user, req.Password)

	token, err := s.tokens.Issue(user.Email, user.Role, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("Login succeeded", "user_id", user.ID, "role", user.Role)

	return &LoginResult{
		Token: token,
		Role:  user.Role,
		Name:  user.Name,
	}, nil
}

// maybeRehash upgrades a digest stored under a deprecated scheme. Failures
// only get logged; the login already succeeded.
func (s *authService) maybeRehash(ctx context.Context, user *models.User, password string) {
	if !s.hasher.NeedsRehash(user.PasswordHash) {
		return
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Warn("Failed to rehash password", "user_id", user.ID, "error", err)
		return
	}
	if err := s.repo.User().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		s.logger.Warn("Failed to store rehashed password", "user_id", user.ID, "error", err)
		return
	}
	s.logger.Info("Upgraded password digest scheme", "user_id", user.ID)
}
