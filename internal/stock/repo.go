package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kwojtas/vanstock-backend/pkg/db/models"
)

// Repository manages the derived per-vehicle stock cache.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListForPlate(ctx context.Context, plate string) ([]SnapshotDTO, error)
	Get(ctx context.Context, plate string, productID uuid.UUID) (*models.StockSnapshot, error)
	UpsertIncrement(ctx context.Context, plate string, productID uuid.UUID, qty float64) error
	DecrementIfAvailable(ctx context.Context, plate string, productID uuid.UUID, qty float64) (bool, error)
	DeleteForPlate(ctx context.Context, plate string) error
	Insert(ctx context.Context, snapshot *models.StockSnapshot) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a stock repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListForPlate(ctx context.Context, plate string) ([]SnapshotDTO, error) {
	var rows []SnapshotDTO
	err := r.db.WithContext(ctx).
		Table("stock_snapshots").
		Select(`stock_snapshots.product_id,
			products.name AS product_name,
			products.index_code AS product_index,
			products.unit,
			stock_snapshots.quantity,
			stock_snapshots.updated_at`).
		Joins("JOIN products ON products.id = stock_snapshots.product_id").
		Where("stock_snapshots.car_plate = ?", plate).
		Order("products.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Get(ctx context.Context, plate string, productID uuid.UUID) (*models.StockSnapshot, error) {
	var snapshot models.StockSnapshot
	err := r.db.WithContext(ctx).
		Where("car_plate = ? AND product_id = ?", plate, productID).
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// UpsertIncrement adds qty to the snapshot, creating the row when the
// vehicle has never carried the product. The single statement keeps
// concurrent receives additive.
func (r *repository) UpsertIncrement(ctx context.Context, plate string, productID uuid.UUID, qty float64) error {
	snapshot := &models.StockSnapshot{
		ID:        uuid.New(),
		CarPlate:  plate,
		ProductID: productID,
		Quantity:  qty,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "car_plate"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("stock_snapshots.quantity + ?", qty),
				"updated_at": snapshot.UpdatedAt,
			}),
		}).
		Create(snapshot).Error
}

// DecrementIfAvailable subtracts qty only when the row holds at least that
// much. The guard in the WHERE clause closes the read-then-write race two
// technicians sharing a vehicle could otherwise hit.
func (r *repository) DecrementIfAvailable(ctx context.Context, plate string, productID uuid.UUID, qty float64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.StockSnapshot{}).
		Where("car_plate = ? AND product_id = ? AND quantity >= ?", plate, productID, qty).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity - ?", qty),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) DeleteForPlate(ctx context.Context, plate string) error {
	return r.db.WithContext(ctx).
		Where("car_plate = ?", plate).
		Delete(&models.StockSnapshot{}).Error
}

func (r *repository) Insert(ctx context.Context, snapshot *models.StockSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}
