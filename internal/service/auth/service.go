package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/auth"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/user"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login for the local terminal accounts.
type AuthService struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.Role, u.Department)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
		User: auth.UserResponse{
			ID:         u.ID,
			Username:   u.Username,
			Role:       string(u.Role),
			Department: u.Department,
		},
	}
	return resp, refreshToken, refreshExpiresAt, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.Role, u.Department)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User: auth.UserResponse{
			ID:         u.ID,
			Username:   u.Username,
			Role:       string(u.Role),
			Department: u.Department,
		},
	}, nil
}

// Logout revokes the refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

// CreateUser registers a terminal account. Admin only at the handler level.
func (s *AuthService) CreateUser(ctx context.Context, req auth.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	role := user.Role(req.Role)
	if !user.IsValidRole(role) {
		return user.User{}, user.ErrInvalidRole
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return user.User{}, user.ErrUsernameExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		Department:   req.Department,
	})
}

// ListUsers returns all terminal accounts.
func (s *AuthService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.userRepo.List(ctx)
}

// DeleteUser removes a terminal account.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// BootstrapAdmin creates the initial admin account when the users table is
// empty. Called once at startup.
func (s *AuthService) BootstrapAdmin(ctx context.Context, password string) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	if _, err := s.userRepo.Create(ctx, user.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	slog.Info("Bootstrap admin account created", "username", "admin")
	return nil
}
