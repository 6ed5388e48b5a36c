package receipts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/pkg/db/models"
)

// Repository manages goods-received documents.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, header *models.ReceiptHeader) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ReceiptHeader, error)
	ListByPlate(ctx context.Context, plate string) ([]models.ReceiptHeader, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, receiptID uuid.UUID) ([]ReceiptItemDTO, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a receipts repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// Create persists the header together with its lines.
func (r *repository) Create(ctx context.Context, header *models.ReceiptHeader) error {
	return r.db.WithContext(ctx).Create(header).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ReceiptHeader, error) {
	var header models.ReceiptHeader
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&header, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}

func (r *repository) ListByPlate(ctx context.Context, plate string) ([]models.ReceiptHeader, error) {
	var headers []models.ReceiptHeader
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("car_plate = ?", plate).
		Order("document_date DESC, created_at DESC").
		Find(&headers).Error
	if err != nil {
		return nil, err
	}
	return headers, nil
}

// Delete removes the document and its lines. Lines are deleted explicitly so
// the operation does not depend on database-level cascade support.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("receipt_id = ?", id).
		Delete(&models.ReceiptItem{}).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&models.ReceiptHeader{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListItems(ctx context.Context, receiptID uuid.UUID) ([]ReceiptItemDTO, error) {
	var rows []ReceiptItemDTO
	err := r.db.WithContext(ctx).
		Table("receipt_items").
		Select(`receipt_items.product_id,
			products.name AS product_name,
			products.index_code AS product_index,
			products.unit,
			receipt_items.quantity`).
		Joins("JOIN products ON products.id = receipt_items.product_id").
		Where("receipt_items.receipt_id = ?", receiptID).
		Order("products.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
