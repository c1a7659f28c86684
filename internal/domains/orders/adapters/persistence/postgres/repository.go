package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oficinapp/repairshop-api/internal/domains/orders/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM. Line items are stored
// as parallel array columns keyed by position.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

type orderRecord struct {
	ID             string         `gorm:"primaryKey;column:id;size:36"`
	ClientID       string         `gorm:"column:client_id;index"`
	LinePartIDs    pq.StringArray `gorm:"column:line_part_ids;type:text[]"`
	LineQuantities pq.Int64Array  `gorm:"column:line_quantities;type:bigint[]"`
	Description    string         `gorm:"column:description"`
	Status         string         `gorm:"column:status;type:varchar(32);index"`
	CreatedAt      time.Time      `gorm:"column:created_at;index"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

func (r *Repository) Save(ctx context.Context, order *domain.Order) (*projection.Projection[*domain.Order], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("cannot save nil order")
	}
	clone := *order
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"client_id", "line_part_ids", "line_quantities", "description", "status", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Order], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Order], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*projection.Projection[*domain.Order], 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toProjection())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	partIDs := make(pq.StringArray, 0, len(order.LineItems))
	quantities := make(pq.Int64Array, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		partIDs = append(partIDs, item.PartID)
		quantities = append(quantities, int64(item.Quantity))
	}
	return orderRecord{
		ID:             order.ID,
		ClientID:       order.ClientID,
		LinePartIDs:    partIDs,
		LineQuantities: quantities,
		Description:    order.Description,
		Status:         string(order.Status),
	}
}

func (r orderRecord) toProjection() *projection.Projection[*domain.Order] {
	items := make([]domain.LineItem, 0, len(r.LinePartIDs))
	for i, partID := range r.LinePartIDs {
		quantity := 0
		if i < len(r.LineQuantities) {
			quantity = int(r.LineQuantities[i])
		}
		items = append(items, domain.LineItem{PartID: partID, Quantity: quantity})
	}
	order := &domain.Order{
		ID:          r.ID,
		ClientID:    r.ClientID,
		LineItems:   items,
		Description: r.Description,
		Status:      domain.Status(r.Status),
	}
	return projection.New(order, r.CreatedAt, r.UpdatedAt)
}
