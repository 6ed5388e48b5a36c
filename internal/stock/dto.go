package stock

import (
	"time"

	"github.com/google/uuid"
)

// ItemQuantity pairs a catalog product with an amount.
type ItemQuantity struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  float64   `json:"quantity"`
}

// ReceiveInput loads goods onto a vehicle.
type ReceiveInput struct {
	UserID   uuid.UUID
	CarPlate string
	Items    []ItemQuantity
}

// IssueInput hands goods over to a job site.
type IssueInput struct {
	UserID   uuid.UUID
	CarPlate string
	Place    string
	Items    []ItemQuantity
}

// ResetInput replaces the whole vehicle state after a physical stocktake.
type ResetInput struct {
	UserID   uuid.UUID
	CarPlate string
	Items    []ItemQuantity
}

// SnapshotDTO is one row of the vehicle stock view.
type SnapshotDTO struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductIndex string    `json:"product_index"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
	UpdatedAt    time.Time `json:"updated_at"`
}
