package ledger

import (
	"context"

	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/pkg/db/models"
)

// Repository manages persistence for movement entries.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, entry *models.MovementEntry) error
	List(ctx context.Context, query HistoryQuery) ([]HistoryEntry, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a movement repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, entry *models.MovementEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns the vehicle's movement history, newest first, joined with
// product identity so clients do not need a second lookup.
func (r *repository) List(ctx context.Context, query HistoryQuery) ([]HistoryEntry, error) {
	q := r.db.WithContext(ctx).
		Table("movement_entries").
		Select(`movement_entries.id,
			movement_entries.user_id,
			movement_entries.car_plate,
			movement_entries.product_id,
			products.name AS product_name,
			products.index_code AS product_index,
			products.unit,
			movement_entries.quantity,
			movement_entries.type,
			movement_entries.place,
			movement_entries.receipt_id,
			movement_entries.created_at`).
		Joins("JOIN products ON products.id = movement_entries.product_id").
		Where("movement_entries.car_plate = ?", query.CarPlate)

	if query.ProductID != nil {
		q = q.Where("movement_entries.product_id = ?", *query.ProductID)
	}
	if query.Type != nil {
		q = q.Where("movement_entries.type = ?", *query.Type)
	}
	if query.From != nil {
		q = q.Where("movement_entries.created_at >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("movement_entries.created_at < ?", *query.To)
	}

	q = q.Order("movement_entries.created_at DESC")
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if query.Offset > 0 {
		q = q.Offset(query.Offset)
	}

	var rows []HistoryEntry
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
