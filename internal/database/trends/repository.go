// Package trends provides database operations for trending collection records.
package trends

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lonamusi/trending-collections/internal/entities"
)

var ErrTrendNotFound = errors.New("trend not found")

// Partial carries the fields of an update request; nil fields are left
// untouched on the stored record.
type Partial struct {
	OriginalQuery       *string
	TrendTopic          *string
	Description         *string
	ReformulatedQueries *string
	Category            *string
}

// Repository handles all trend database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new trends repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new trend. CreatedAt/UpdatedAt are set by GORM.
func (r *Repository) Create(trend *entities.Trend) error {
	return r.db.Create(trend).Error
}

// GetByID retrieves a trend by ID.
func (r *Repository) GetByID(id uint) (*entities.Trend, error) {
	var trend entities.Trend
	err := r.db.First(&trend, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrendNotFound
		}
		return nil, err
	}
	return &trend, nil
}

// GetAll returns every trend record.
func (r *Repository) GetAll() ([]entities.Trend, error) {
	var trends []entities.Trend
	err := r.db.Find(&trends).Error
	return trends, err
}

// Update applies the non-nil fields of the partial to the stored record.
// Runs in a transaction so a failed save leaves the record untouched.
func (r *Repository) Update(id uint, partial Partial) (*entities.Trend, error) {
	var trend entities.Trend
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&trend, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTrendNotFound
			}
			return err
		}

		if partial.OriginalQuery != nil {
			trend.OriginalQuery = *partial.OriginalQuery
		}
		if partial.TrendTopic != nil {
			trend.TrendTopic = *partial.TrendTopic
		}
		if partial.Description != nil {
			trend.Description = *partial.Description
		}
		if partial.ReformulatedQueries != nil {
			trend.ReformulatedQueries = *partial.ReformulatedQueries
		}
		if partial.Category != nil {
			trend.Category = partial.Category
		}

		return tx.Save(&trend).Error
	})
	if err != nil {
		return nil, err
	}
	return &trend, nil
}

// Delete removes a trend by ID. Returns ErrTrendNotFound when no row exists.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var trend entities.Trend
		if err := tx.First(&trend, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTrendNotFound
			}
			return err
		}
		return tx.Delete(&trend).Error
	})
}

// Count returns the number of trend records.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Trend{}).Count(&count).Error
	return count, err
}
