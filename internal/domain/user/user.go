// Package user provides the user domain model and the registration/login flows.
package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foodatlas-server/internal/domain"
)

// User models a registered account. PasswordHash is a bcrypt digest and never
// leaves the domain layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         domain.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Repository defines storage operations for users. Lookups return (nil, nil)
// when no record matches; a non-nil error always means a store fault.
type Repository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, id string) error
}

var (
	// ErrUsernameTaken and ErrEmailTaken name the colliding field on registration.
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already in use")

	// ErrInvalidCredentials is deliberately shared between "no such email" and
	// "wrong password" so login failures do not leak account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrNotFound = errors.New("user not found")
)

// Service implements registration and login on top of the repository.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account after checking both uniqueness constraints.
// Concurrent duplicate registrations are backstopped by the store's unique
// indexes and surface as store faults.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleStandard,
	})
}

// Login resolves the account by email and verifies the password.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	usr, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return usr, nil
}

// List returns all registered users.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Delete removes an account by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Principal builds the request-scoped identity for this user.
func (u *User) Principal(method domain.AuthMethod) domain.Principal {
	return domain.Principal{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		AuthMethod: method,
	}
}
