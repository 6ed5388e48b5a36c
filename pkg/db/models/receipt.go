package models

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptHeader groups the items picked up from the external warehouse in one
// visit. DocumentDate is the caller-supplied calendar date, distinct from the
// server-assigned ledger timestamps.
type ReceiptHeader struct {
	ID           uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DocumentDate time.Time     `gorm:"column:document_date;type:date;not null"`
	TakerName    string        `gorm:"column:taker_name;not null"`
	GiverName    string        `gorm:"column:giver_name;not null"`
	CarPlate     string        `gorm:"column:car_plate;not null;index"`
	UserID       uuid.UUID     `gorm:"column:user_id;type:uuid;not null"`
	Items        []ReceiptItem `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime"`
}

func (ReceiptHeader) TableName() string {
	return "receipt_headers"
}

// ReceiptItem is one product line owned by a receipt header.
type ReceiptItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ReceiptID uuid.UUID `gorm:"column:receipt_id;type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Quantity  float64   `gorm:"column:quantity;not null"`
}

func (ReceiptItem) TableName() string {
	return "receipt_items"
}
