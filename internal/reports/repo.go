package reports

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/pkg/enums"
)

// Repository aggregates movement entries for settlement reports.
type Repository interface {
	SumOutbound(ctx context.Context, carPlate string, from, to time.Time) ([]ReportRow, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a report repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// SumOutbound totals issued quantities per product for the vehicle inside
// the half-open window [from, to). Outbound entries carry negative amounts,
// so the sums come back negative and the service negates them.
func (r *repository) SumOutbound(ctx context.Context, carPlate string, from, to time.Time) ([]ReportRow, error) {
	var rows []ReportRow
	err := r.db.WithContext(ctx).
		Table("movement_entries").
		Select(`movement_entries.product_id,
			products.name AS product_name,
			products.index_code AS product_index,
			products.unit,
			SUM(movement_entries.quantity) AS quantity`).
		Joins("JOIN products ON products.id = movement_entries.product_id").
		Where("movement_entries.car_plate = ?", carPlate).
		Where("movement_entries.type = ?", enums.MovementTypeOut).
		Where("movement_entries.created_at >= ?", from).
		Where("movement_entries.created_at < ?", to).
		Group("movement_entries.product_id, products.name, products.index_code, products.unit").
		Order("products.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
