// Package auth implements password-based authentication with bearer-token
// issuance. It orchestrates registration (create credential, bootstrap the
// new account, return the public profile) and login (verify credential,
// issue token) for the transport layer.
package auth

import (
	"context"
	"fmt"
	"strings"

	"finboard/models"

	"golang.org/x/crypto/bcrypt"
)

// Demo financial baselines assigned to every new account.
const (
	initialBalance  = 123500.21
	initialIncome   = 13640
	initialExpenses = 9752.52
)

// UserStore is the credential storage surface the service needs.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// Bootstrapper seeds a new account with its initial linked records.
type Bootstrapper interface {
	Seed(ctx context.Context, userID uint) error
}

// Profile is the public identity subset returned to clients. The password
// hash never leaves this package.
type Profile struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Service is the single authentication entry point for the transport layer.
type Service struct {
	users      UserStore
	tokens     *TokenIssuer
	boot       Bootstrapper
	bcryptCost int
}

func NewService(users UserStore, tokens *TokenIssuer, boot Bootstrapper, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = 10
	}
	return &Service{users: users, tokens: tokens, boot: boot, bcryptCost: bcryptCost}
}

// Register creates a credential and synchronously bootstraps the account's
// initial records. Any bootstrap failure aborts the registration as a whole;
// partially created records are left to the storage layer's own guarantees.
func (s *Service) Register(ctx context.Context, name, email, password string) (Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return Profile{}, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Balance:      initialBalance,
		Income:       initialIncome,
		Expenses:     initialExpenses,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if isUniqueConstraintError(err) {
			return Profile{}, ErrEmailTaken
		}
		return Profile{}, fmt.Errorf("create user: %w", err)
	}
	if err := s.boot.Seed(ctx, user.ID); err != nil {
		return Profile{}, fmt.Errorf("bootstrap account %d: %w", user.ID, err)
	}
	return Profile{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Login verifies the credential and issues a bearer token. Unknown email and
// wrong password return the identical ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (Profile, string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return Profile{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return Profile{}, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return Profile{}, "", fmt.Errorf("issue token: %w", err)
	}
	return Profile{ID: user.ID, Email: user.Email, Name: user.Name}, token, nil
}

// Logout is stateless on the server side: no revocation list exists, so a
// previously issued token stays technically valid until the session cookie
// the transport layer attached to it expires. Known limitation.
func (s *Service) Logout() {}

// isUniqueConstraintError matches the duplicate-key errors Postgres surfaces
// through gorm without depending on driver error types.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "already exists")
}
