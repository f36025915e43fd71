package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/apperrors"
	"github.com/yigit/conexao/internal/pkg/auth"
	"github.com/yigit/conexao/internal/pkg/simulate"
)

// AuthService switches the acting user. It checks fixture passwords but is
// not an authentication protocol.
type AuthService struct {
	userRepo *repositories.UserRepository
	sessions *auth.SessionService
	backend  *simulate.Backend
	now      Clock
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	sessions *auth.SessionService,
	backend *simulate.Backend,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		backend:  backend,
		now:      time.Now,
		logger:   logger,
	}
}

// Login checks the credentials and returns the user with a fresh session token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	var user *models.User
	err := s.backend.Do(ctx, "auth.login", func() error {
		found, err := s.userRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return apperrors.ErrInvalidCredentials
			}
			return err
		}
		if !auth.CheckPassword(found.PasswordHash, req.Password) {
			return apperrors.ErrInvalidCredentials
		}
		user = found
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		return nil, "", err
	}

	token, err := s.sessions.Issue(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error().Err(err).Str("userID", user.ID).Msg("Failed to issue session token")
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Msg("User logged in")
	return user, token, nil
}

// Register creates an in-memory member and signs them in
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		JoinDate:     s.now(),
		Role:         models.RoleUser,
		PasswordHash: hash,
	}
	if user.DisplayName == "" {
		if fields := strings.Fields(user.Name); len(fields) > 0 {
			user.DisplayName = fields[0]
		}
	}
	if user.Name == "" {
		return nil, "", apperrors.NewBadRequestError("name is blank")
	}

	err = s.backend.Do(ctx, "auth.register", func() error {
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("Registration failed")
		return nil, "", err
	}

	token, err := s.sessions.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Msg("User registered")
	return user, token, nil
}

// CurrentUser resolves a session token to the acting user
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, err := s.sessions.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		s.logger.Debug().Str("userID", claims.UserID).Msg("Session user no longer exists")
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}

// SessionTTL is how long a session cookie should live
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}
