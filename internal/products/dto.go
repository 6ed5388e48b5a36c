package products

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kwojtas/vanstock-backend/pkg/db/models"
)

// ProductDTO is the catalog transport shape.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IndexCode   string    `json:"index_code"`
	Unit        string    `json:"unit"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest carries the payload for adding a catalog item.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	IndexCode   string  `json:"index_code" validate:"required"`
	Unit        string  `json:"unit" validate:"required"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
}

// UpdateProductRequest carries a partial catalog update.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	IndexCode   *string `json:"index_code,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListQuery narrows the catalog listing.
type ListQuery struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		IndexCode:   p.IndexCode,
		Unit:        p.Unit,
		Category:    p.Category,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (c CreateProductRequest) ToModel() *models.Product {
	return &models.Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(c.Name),
		IndexCode:   strings.ToUpper(strings.TrimSpace(c.IndexCode)),
		Unit:        strings.TrimSpace(c.Unit),
		Category:    strings.TrimSpace(c.Category),
		Description: c.Description,
	}
}
