// Package food provides the catalog entry domain model and CRUD behaviors.
package food

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Food is an owned catalog entry. CreatedBy references the creating user and
// is immutable after creation.
type Food struct {
	ID          string
	Name        string
	Origin      string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter narrows catalog listings.
type Filter struct {
	CreatedBy string
}

// UpdateInput carries optional field updates. Nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	Origin      *string
	Description *string
}

// Repository defines storage operations for catalog entries. Lookups return
// (nil, nil) when no record matches; a non-nil error always means a store fault.
type Repository interface {
	Create(ctx context.Context, entry *Food) (*Food, error)
	FindByID(ctx context.Context, id string) (*Food, error)
	FindByFilter(ctx context.Context, filter Filter) ([]*Food, error)
	Update(ctx context.Context, entry *Food) (*Food, error)
	Delete(ctx context.Context, id string) error
}

// ErrNotFound indicates the referenced entry does not exist.
var ErrNotFound = errors.New("food item not found")

// Service implements catalog CRUD on top of the repository.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new entry owned by createdBy.
func (s *Service) Create(ctx context.Context, name, origin, description, createdBy string) (*Food, error) {
	return s.repo.Create(ctx, &Food{
		ID:          uuid.NewString(),
		Name:        name,
		Origin:      origin,
		Description: description,
		CreatedBy:   createdBy,
	})
}

// List returns entries matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]*Food, error) {
	return s.repo.FindByFilter(ctx, filter)
}

// Get returns a single entry by id.
func (s *Service) Get(ctx context.Context, id string) (*Food, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Update applies the given field updates. Any authenticated principal may
// update any entry; CreatedBy is never touched.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*Food, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		entry.Name = *input.Name
	}
	if input.Origin != nil {
		entry.Origin = *input.Origin
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}

	return s.repo.Update(ctx, entry)
}

// Delete removes an entry by id. As with Update, ownership is not checked.
func (s *Service) Delete(ctx context.Context, id string) (*Food, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return entry, nil
}
