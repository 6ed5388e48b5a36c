package reports

import (
	"time"

	"github.com/google/uuid"

	"github.com/kwojtas/vanstock-backend/pkg/enums"
)

// SettlementRequest is the HTTP payload for a consumption report.
type SettlementRequest struct {
	From   string `json:"from" validate:"required,datetime=2006-01-02"`
	To     string `json:"to" validate:"required,datetime=2006-01-02"`
	Place  string `json:"place"`
	Format string `json:"format" validate:"required,oneof=xlsx pdf"`
}

// SettlementQuery is the resolved service-level input. Place is a
// descriptive label printed in the header, it does not narrow the
// aggregation window.
type SettlementQuery struct {
	CarPlate string
	UserName string
	Place    string
	From     time.Time
	To       time.Time
	Format   enums.ReportFormat
}

// ReportRow is one consumed product with the total issued amount.
type ReportRow struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductIndex string    `json:"product_index"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
}

// Artifact is a rendered report ready for download.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}
