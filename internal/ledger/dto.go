package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/kwojtas/vanstock-backend/pkg/enums"
)

// HistoryQuery filters the movement history for one vehicle.
type HistoryQuery struct {
	CarPlate  string
	ProductID *uuid.UUID
	Type      *enums.MovementType
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// HistoryEntry is the row shape produced by the history join.
type HistoryEntry struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	CarPlate     string             `json:"car_plate"`
	ProductID    uuid.UUID          `json:"product_id"`
	ProductName  string             `json:"product_name"`
	ProductIndex string             `json:"product_index"`
	Unit         string             `json:"unit"`
	Quantity     float64            `json:"quantity"`
	Type         enums.MovementType `json:"type"`
	Place        *string            `json:"place,omitempty"`
	ReceiptID    *uuid.UUID         `json:"receipt_id,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// RecordMovementInput captures the immutable data a ledger entry requires.
type RecordMovementInput struct {
	UserID    uuid.UUID
	CarPlate  string
	ProductID uuid.UUID
	Quantity  float64
	Type      enums.MovementType
	Place     *string
	ReceiptID *uuid.UUID
}
