package dbschema

import (
	"time"

	"foodatlas-server/internal/domain/food"
)

// Food is the persisted catalog entry schema.
type Food struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Origin      string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(1000);not null"`
	CreatedBy   string    `gorm:"type:uuid;not null;index:idx_foods_created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// NewSchemaFood converts a domain entry into a schema instance.
func NewSchemaFood(f *food.Food) *Food {
	if f == nil {
		return nil
	}

	return &Food{
		ID:          f.ID,
		Name:        f.Name,
		Origin:      f.Origin,
		Description: f.Description,
		CreatedBy:   f.CreatedBy,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// EtoD converts a schema entry back to the domain representation.
func (f *Food) EtoD() *food.Food {
	if f == nil {
		return nil
	}

	return &food.Food{
		ID:          f.ID,
		Name:        f.Name,
		Origin:      f.Origin,
		Description: f.Description,
		CreatedBy:   f.CreatedBy,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
