package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmarques/postline-be/internal/auth"
	"github.com/dmarques/postline-be/internal/models"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

// AccountService orchestrates registration and login: credential hashing,
// user persistence, and token issuance.
type AccountService struct {
	db     *sql.DB
	hasher *auth.Hasher
	issuer *auth.TokenIssuer
}

// NewAccountService creates a new AccountService.
func NewAccountService(db *sql.DB, hasher *auth.Hasher, issuer *auth.TokenIssuer) *AccountService {
	return &AccountService{db: db, hasher: hasher, issuer: issuer}
}

// Register creates a new user with a hashed credential and returns a signed
// token for the new account. The password hash never leaves this layer.
func (s *AccountService) Register(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingField
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users(id, email, password_hash) VALUES(?, ?, ?)",
		id, email, hashed)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.issuer.Issue(id)
}

// Login verifies the credentials for email and returns a signed token. An
// unknown email and a wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingField
	}

	var id, hash string
	row := s.db.QueryRowContext(ctx,
		"SELECT id, password_hash FROM users WHERE email = ?", email)
	if err := row.Scan(&id, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := s.hasher.Verify(password, hash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	return s.issuer.Issue(id)
}

// GetUserByID retrieves a single user by their ID.
func (s *AccountService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure. The modernc driver exposes no typed error for this, so the
// message is the contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
