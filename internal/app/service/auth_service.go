package service

import (
	"context"
	"errors"
	"fmt"

	"stayfinder/internal/common"
	"stayfinder/internal/common/security"
	"stayfinder/internal/domain/model"
	"stayfinder/internal/domain/repository"
	"stayfinder/internal/platform/session"
)

// AuthService owns the login state machine: a request is either
// unauthenticated or authenticated as one user, and the only transitions are
// register/login (issue a session) and logout (drop it).
type AuthService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	sessions session.Store
}

func NewAuthService(userRepo repository.UserRepository, hasher security.PasswordHasher, sessions session.Store) *AuthService {
	return &AuthService{userRepo: userRepo, hasher: hasher, sessions: sessions}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user and logs them in, returning the new session ID
// alongside the user.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, "", common.ErrBadRequest
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", fmt.Errorf("user already exists, try with different details: %w", common.ErrConflict)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Name, req.Email, hashedPassword)
	if err != nil {
		// Repo might return common.ErrConflict on a concurrent registration.
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	return user, sessionID, nil
}

// Login verifies credentials and issues a session. An unknown email and a
// wrong password both come back as ErrUnauthorized so the response never
// reveals whether the email is registered.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", common.ErrBadRequest
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		return nil, "", common.ErrUnauthorized
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	return user, sessionID, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves a session to its user. A missing or expired session is
// ErrUnauthenticated; a session whose user no longer exists is ErrNotFound.
// The two cases stay distinct for the response layer.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, common.ErrUnauthenticated
	}

	userID, err := s.sessions.UserID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("no user with that id: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
