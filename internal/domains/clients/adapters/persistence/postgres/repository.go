package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oficinapp/repairshop-api/internal/domains/clients/domain"
	"github.com/oficinapp/repairshop-api/internal/domains/clients/ports"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists clients in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&clientRecord{})
	}
	return repo
}

type clientRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:36"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;index"`
	Phone     string    `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (clientRecord) TableName() string { return "clients" }

func (r *Repository) Save(ctx context.Context, client *domain.Client) (*projection.Projection[*domain.Client], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("cannot save nil client")
	}
	clone := *client
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := clientRecord{ID: clone.ID, Name: clone.Name, Email: clone.Email, Phone: clone.Phone}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "phone", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Client], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record clientRecord
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
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&clientRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Client], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []clientRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	clients := make([]*projection.Projection[*domain.Client], 0, len(records))
	for i := range records {
		clients = append(clients, records[i].toProjection())
	}
	return clients, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres client repository not configured")
	}
	return nil
}

func (r clientRecord) toProjection() *projection.Projection[*domain.Client] {
	client := &domain.Client{ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone}
	return projection.New(client, r.CreatedAt, r.UpdatedAt)
}
