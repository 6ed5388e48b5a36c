package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kwojtas/vanstock-backend/pkg/db/models"
	"github.com/kwojtas/vanstock-backend/pkg/enums"
)

// Service defines operations that record and query the movement ledger.
type Service interface {
	Record(ctx context.Context, input RecordMovementInput) (*models.MovementEntry, error)
	History(ctx context.Context, query HistoryQuery) ([]HistoryEntry, error)
}

type service struct {
	repo Repository
}

// NewService wires a ledger service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ledger repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, input RecordMovementInput) (*models.MovementEntry, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(input.CarPlate) == "" {
		return nil, fmt.Errorf("car plate is required")
	}
	if input.ProductID == uuid.Nil {
		return nil, fmt.Errorf("product id is required")
	}
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("invalid movement type %q", input.Type)
	}
	if input.Quantity == 0 {
		return nil, fmt.Errorf("quantity must be non-zero")
	}
	switch input.Type {
	case enums.MovementTypeIn, enums.MovementTypeReset:
		if input.Quantity < 0 {
			return nil, fmt.Errorf("%s entries require positive quantity", input.Type)
		}
	case enums.MovementTypeOut:
		if input.Quantity > 0 {
			return nil, fmt.Errorf("OUT entries require negative quantity")
		}
	}

	entry := &models.MovementEntry{
		ID:        uuid.New(),
		UserID:    input.UserID,
		CarPlate:  input.CarPlate,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Type:      input.Type,
		Place:     input.Place,
		ReceiptID: input.ReceiptID,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) History(ctx context.Context, query HistoryQuery) ([]HistoryEntry, error) {
	if strings.TrimSpace(query.CarPlate) == "" {
		return nil, fmt.Errorf("car plate is required")
	}
	return s.repo.List(ctx, query)
}
