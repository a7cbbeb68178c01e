package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/classfit/class-booking/internal/auth"
	"github.com/classfit/class-booking/internal/models"
	"github.com/classfit/class-booking/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken   = errors.New("Email already registered")
	ErrInvalidRole  = errors.New("role must be 'instructor' or 'client'")
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string, role models.Role) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	jwt      *auth.JWTManager
}

func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, jwt *auth.JWTManager) AuthService {
	return &authService{userRepo: userRepo, hasher: hasher, jwt: jwt}
}

func (s *authService) Signup(ctx context.Context, username, email, password string, role models.Role) (*models.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two signups racing past the FindByEmail check land here; the
		// unique index on email is the authoritative arbiter.
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *authService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.Issue(user)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue token: %w", err)
	}
	return token, expiresAt, nil
}
