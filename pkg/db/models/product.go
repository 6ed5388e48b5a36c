package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry referenced by id from stock and ledger rows.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	IndexCode   string    `gorm:"column:index_code;not null;uniqueIndex"`
	Unit        string    `gorm:"column:unit;not null"`
	Category    string    `gorm:"column:category;not null;default:''"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
