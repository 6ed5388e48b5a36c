package models

import (
	"time"

	"github.com/google/uuid"
)

// StockSnapshot holds the current on-hand quantity for one (vehicle, product)
// pair. A missing row is equivalent to quantity zero. Rows are only mutated
// alongside a movement entry inside the same transaction.
type StockSnapshot struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CarPlate  string    `gorm:"column:car_plate;not null;uniqueIndex:idx_stock_snapshots_plate_product"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_stock_snapshots_plate_product"`
	Quantity  float64   `gorm:"column:quantity;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (StockSnapshot) TableName() string {
	return "stock_snapshots"
}
