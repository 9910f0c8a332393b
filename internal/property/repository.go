// File: internal/property/repository.go
package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AymenS02/united-real-estate/internal/common"
	"github.com/AymenS02/united-real-estate/internal/platform/gateway"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for listing persistence.
type Repository interface {
	FindAll(ctx context.Context) ([]Listing, error)
	FindByID(ctx context.Context, id string) (*Listing, error)
	// Create validates l against the schema, assigns its id and stores it.
	Create(ctx context.Context, l *Listing) error
	// Delete removes the listing if it exists. Missing ids are not an error.
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) (*Listing, error)
	// Migrate prepares tables or indexes.
	Migrate(ctx context.Context) error
}

// ErrPropertyNotFound is returned when no listing has the requested id.
var ErrPropertyNotFound = common.ErrNotFound.WithMessage("Property not found")

type gormRepository struct {
	gw *gateway.Gateway[*gorm.DB]
}

// NewGORMRepository creates a listing repository for the SQL drivers.
func NewGORMRepository(gw *gateway.Gateway[*gorm.DB]) Repository {
	return &gormRepository{gw: gw}
}

func (r *gormRepository) db(ctx context.Context) (*gorm.DB, error) {
	db, err := r.gw.EnsureConnected(ctx)
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx), nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Listing, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var listings []Listing
	if err := db.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	for i := range listings {
		listings[i].normalizeSequences()
	}
	if listings == nil {
		listings = []Listing{}
	}
	return listings, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Listing, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var l Listing
	if err := db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property %s: %w", id, err)
	}
	l.normalizeSequences()
	return &l, nil
}

func (r *gormRepository) Create(ctx context.Context, l *Listing) error {
	if err := ValidateSchema(l); err != nil {
		return err
	}
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if err := db.Create(l).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id string) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	if err := db.Delete(&Listing{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	return nil
}

func (r *gormRepository) UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) (*Listing, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	res := db.Model(&Listing{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": updatedAt})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update property %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrPropertyNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *gormRepository) Migrate(ctx context.Context) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&Listing{}); err != nil {
		return fmt.Errorf("failed to migrate properties table: %w", err)
	}
	return nil
}
