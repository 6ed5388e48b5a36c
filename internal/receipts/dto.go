package receipts

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptItemInput pairs a product with the received amount.
type ReceiptItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  float64   `json:"quantity" validate:"gt=0"`
}

// CreateReceiptRequest carries the goods-received document payload.
type CreateReceiptRequest struct {
	DocumentDate string             `json:"document_date" validate:"required,datetime=2006-01-02"`
	TakerName    string             `json:"taker_name" validate:"required"`
	GiverName    string             `json:"giver_name" validate:"required"`
	Items        []ReceiptItemInput `json:"items" validate:"required,min=1,dive"`
}

// CreateReceiptInput is the service-level shape with actor identity attached.
type CreateReceiptInput struct {
	UserID   uuid.UUID
	CarPlate string
	Request  CreateReceiptRequest
}

// ReceiptItemDTO is one document line joined with product identity.
type ReceiptItemDTO struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductIndex string    `json:"product_index"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
}

// ReceiptDTO is the full document shape.
type ReceiptDTO struct {
	ID           uuid.UUID        `json:"id"`
	DocumentDate time.Time        `json:"document_date"`
	TakerName    string           `json:"taker_name"`
	GiverName    string           `json:"giver_name"`
	CarPlate     string           `json:"car_plate"`
	UserID       uuid.UUID        `json:"user_id"`
	Items        []ReceiptItemDTO `json:"items"`
	CreatedAt    time.Time        `json:"created_at"`
}

// ReceiptSummaryDTO lists documents without their lines.
type ReceiptSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	DocumentDate time.Time `json:"document_date"`
	TakerName    string    `json:"taker_name"`
	GiverName    string    `json:"giver_name"`
	CarPlate     string    `json:"car_plate"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}
