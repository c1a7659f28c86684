package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&partRecord{},
		&clientRecord{},
		&orderRecord{},
		&userRecord{},
	)
}

// Part schema mirrors the catalog Postgres adapter.
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

// Client schema mirrors the clients Postgres adapter.
type clientRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:36"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;index"`
	Phone     string    `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (clientRecord) TableName() string { return "clients" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID             string         `gorm:"primaryKey;column:id;size:36"`
	ClientID       string         `gorm:"column:client_id;size:36;index"`
	LinePartIDs    pq.StringArray `gorm:"column:line_part_ids;type:text[]"`
	LineQuantities pq.Int64Array  `gorm:"column:line_quantities;type:bigint[]"`
	Description    string         `gorm:"column:description"`
	Status         string         `gorm:"column:status;type:varchar(32);index"`
	CreatedAt      time.Time      `gorm:"column:created_at;index"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

// User schema mirrors the identity Postgres adapter.
type userRecord struct {
	ID           string    `gorm:"primaryKey;column:id;size:36"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }
