package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oficinapp/repairshop-api/internal/domains/catalog/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists catalog parts in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&partRecord{})
	}
	return repo
}

type partRecord struct {
	ID            string    `gorm:"primaryKey;column:id;size:36"`
	Name          string    `gorm:"column:name"`
	Category      string    `gorm:"column:category;index"`
	UnitPrice     float64   `gorm:"column:unit_price"`
	StockQuantity int       `gorm:"column:stock_quantity"`
	Description   string    `gorm:"column:description"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (partRecord) TableName() string { return "parts" }

// Save inserts or updates a part keyed by id.
func (r *Repository) Save(ctx context.Context, part *domain.Part) (*projection.Projection[*domain.Part], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if part == nil {
		return nil, errors.New("cannot save nil part")
	}
	clone := *part
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "unit_price", "stock_quantity", "description", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a part by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Part], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record partRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// Delete removes a part by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&partRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all parts.
func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Part], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []partRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	parts := make([]*projection.Projection[*domain.Part], 0, len(records))
	for i := range records {
		parts = append(parts, records[i].toProjection())
	}
	return parts, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres part repository not configured")
	}
	return nil
}

func toRecord(part *domain.Part) partRecord {
	return partRecord{
		ID:            part.ID,
		Name:          part.Name,
		Category:      part.Category,
		UnitPrice:     part.UnitPrice,
		StockQuantity: part.StockQuantity,
		Description:   part.Description,
	}
}

func (r partRecord) toProjection() *projection.Projection[*domain.Part] {
	part := &domain.Part{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		UnitPrice:     r.UnitPrice,
		StockQuantity: r.StockQuantity,
		Description:   r.Description,
	}
	return projection.New(part, r.CreatedAt, r.UpdatedAt)
}
