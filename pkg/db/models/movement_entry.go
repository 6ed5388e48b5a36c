package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kwojtas/vanstock-backend/pkg/enums"
)

// MovementEntry records an immutable stock-affecting event. Quantity is
// positive for inbound movements and negative for outbound ones; rows are
// never updated or deleted after insert.
type MovementEntry struct {
	ID        uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID          `gorm:"column:user_id;type:uuid;not null"`
	CarPlate  string             `gorm:"column:car_plate;not null;index"`
	ProductID uuid.UUID          `gorm:"column:product_id;type:uuid;not null"`
	Quantity  float64            `gorm:"column:quantity;not null"`
	Type      enums.MovementType `gorm:"column:type;not null"`
	Place     *string            `gorm:"column:place"`
	ReceiptID *uuid.UUID         `gorm:"column:receipt_id;type:uuid"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
}

func (MovementEntry) TableName() string {
	return "movement_entries"
}
