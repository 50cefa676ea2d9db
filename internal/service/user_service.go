package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/trackme-api/internal/models"
	appErrors "github.com/noah-isme/trackme-api/pkg/errors"
)

type userRepository interface {
	EnsureByUsername(ctx context.Context, username string) (*models.User, error)
}

type ensureUserRequest struct {
	Username string `validate:"required,max=80"`
}

// UserService resolves the account requests act on.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs a UserService.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// Ensure returns the user with username, creating it when missing.
func (s *UserService) Ensure(ctx context.Context, username string) (*models.User, error) {
	req := ensureUserRequest{Username: strings.TrimSpace(username)}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid username")
	}
	user, err := s.repo.EnsureByUsername(ctx, req.Username)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to resolve user")
	}
	s.logger.Debug("user resolved", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}
