package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/divvyhq/divvy/internal/auth"
	"github.com/divvyhq/divvy/internal/models"
)

// AuthResult is a registered or logged-in user plus a signed session token.
type AuthResult struct {
	User  models.UserSummary `json:"user"`
	Token string             `json:"token"`
}

// AuthService implements registration and login. It is the identity
// collaborator: everything downstream trusts the user ID it establishes.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new user account and returns it with a session token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	s.logger.Info("Register request", "username", username, "email", email)

	user, err := s.authenticator.Register(ctx, username, email, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		switch {
		case errors.Is(err, auth.ErrMissingField),
			errors.Is(err, auth.ErrInvalidEmail),
			errors.Is(err, auth.ErrWeakPassword),
			errors.Is(err, auth.ErrEmailExists),
			errors.Is(err, auth.ErrUsernameExists):
			return nil, invalidInput(err.Error())
		default:
			return nil, unavailable("failed to register user", err)
		}
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, unavailable("failed to generate token", err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	return &AuthResult{User: user.Summary(), Token: token}, nil
}

// Login authenticates a user by email and password and returns a session
// token. Unknown email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	s.logger.Info("Login request", "email", email)

	if email == "" || password == "" {
		return nil, unauthenticated(auth.ErrInvalidCredentials.Error())
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email)
		return nil, unauthenticated(auth.ErrInvalidCredentials.Error())
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, unavailable("failed to generate token", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return &AuthResult{User: user.Summary(), Token: token}, nil
}
