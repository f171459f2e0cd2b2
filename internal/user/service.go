package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"arena/internal/auth"
	"arena/internal/logger"
	"arena/internal/metrics"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountPending     = errors.New("account is waiting for approval")
	ErrAccountRejected    = errors.New("account was rejected")
	ErrNotPending         = errors.New("account is not pending")
)

// Notifier sends account emails.
type Notifier interface {
	SendUserApproved(ctx context.Context, to, name string) error
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	ListPending(ctx context.Context) ([]User, error)
	Approve(ctx context.Context, userID int) (*User, error)
	Reject(ctx context.Context, userID int) (*User, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	repo      Repository
	notifier  Notifier
	jwtSecret string
}

func NewService(repo Repository, notifier Notifier, jwtSecret string) Service {
	return &service{
		repo:      repo,
		notifier:  notifier,
		jwtSecret: jwtSecret,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, &User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         auth.RoleMember,
		Status:       StatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RecordUserDecision(StatusPending)
	logger.Info("User registered", "user_id", u.ID)
	return u, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	switch u.Status {
	case StatusPending:
		return nil, "", "", ErrAccountPending
	case StatusRejected:
		return nil, "", "", ErrAccountRejected
	}

	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, u.Role, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	u, err := s.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}
	if u.Status != StatusApproved {
		return "", nil, ErrAccountPending
	}

	// Role comes from the stored user so a demotion takes effect on refresh.
	accessToken, err := auth.GenerateAccessToken(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return accessToken, u, nil
}

func (s *service) ListPending(ctx context.Context) ([]User, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

func (s *service) decide(ctx context.Context, userID int, status string) (*User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Status != StatusPending {
		return nil, ErrNotPending
	}

	updated, err := s.repo.UpdateStatus(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", userID, err)
	}

	metrics.RecordUserDecision(status)
	logger.Info("User reviewed", "user_id", userID, "status", status)
	return updated, nil
}

func (s *service) Approve(ctx context.Context, userID int) (*User, error) {
	u, err := s.decide(ctx, userID, StatusApproved)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendUserApproved(ctx, u.Email, u.Name); err != nil {
			logger.Error("Failed to queue approval email", "user_id", u.ID, "error", err)
		}
	}
	return u, nil
}

func (s *service) Reject(ctx context.Context, userID int) (*User, error) {
	return s.decide(ctx, userID, StatusRejected)
}

// EnsureAdmin creates an approved admin account when none exists for email.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	u, err := s.repo.Create(ctx, &User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
		Status:       StatusApproved,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logger.Info("Admin account created", "user_id", u.ID)
	return nil
}
