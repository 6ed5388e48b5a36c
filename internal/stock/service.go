package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/internal/ledger"
	"github.com/kwojtas/vanstock-backend/internal/products"
	"github.com/kwojtas/vanstock-backend/pkg/db"
	"github.com/kwojtas/vanstock-backend/pkg/db/models"
	"github.com/kwojtas/vanstock-backend/pkg/enums"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
)

// Service covers vehicle stock mutations and the stock view.
type Service interface {
	Receive(ctx context.Context, input ReceiveInput) ([]SnapshotDTO, error)
	Issue(ctx context.Context, input IssueInput) ([]SnapshotDTO, error)
	Reset(ctx context.Context, input ResetInput) ([]SnapshotDTO, error)
	VehicleStock(ctx context.Context, plate string) ([]SnapshotDTO, error)
}

type service struct {
	db       *db.Client
	stock    Repository
	ledger   ledger.Repository
	products products.Repository
}

// ServiceParams bundles the dependencies for the stock service.
type ServiceParams struct {
	DB       *db.Client
	Stock    Repository
	Ledger   ledger.Repository
	Products products.Repository
}

// NewService wires the stock service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client required")
	}
	if params.Stock == nil || params.Ledger == nil || params.Products == nil {
		return nil, fmt.Errorf("stock, ledger and products repositories required")
	}
	return &service{
		db:       params.DB,
		stock:    params.Stock,
		ledger:   params.Ledger,
		products: params.Products,
	}, nil
}

// Receive loads goods onto the vehicle. Snapshot increments and the IN
// ledger entries commit together or not at all.
func (s *service) Receive(ctx context.Context, input ReceiveInput) ([]SnapshotDTO, error) {
	plate, err := requirePlateAndUser(input.CarPlate, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := validatePositiveItems(input.Items); err != nil {
		return nil, err
	}
	if err := s.requireKnownProducts(ctx, collectProductIDs(input.Items)); err != nil {
		return nil, err
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		stockRepo := s.stock.WithTx(tx)
		ledgerRepo := s.ledger.WithTx(tx)

		for _, item := range input.Items {
			if err := stockRepo.UpsertIncrement(ctx, plate, item.ProductID, item.Quantity); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increment stock")
			}
			entry := &models.MovementEntry{
				ID:        uuid.New(),
				UserID:    input.UserID,
				CarPlate:  plate,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Type:      enums.MovementTypeIn,
			}
			if err := ledgerRepo.Create(ctx, entry); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record inbound movement")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.VehicleStock(ctx, plate)
}

// Issue hands goods to a job site. Every decrement is guarded against the
// current balance so an overdraw aborts the whole batch.
func (s *service) Issue(ctx context.Context, input IssueInput) ([]SnapshotDTO, error) {
	plate, err := requirePlateAndUser(input.CarPlate, input.UserID)
	if err != nil {
		return nil, err
	}
	place := strings.TrimSpace(input.Place)
	if place == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "place is required")
	}
	if err := validatePositiveItems(input.Items); err != nil {
		return nil, err
	}
	if err := s.requireKnownProducts(ctx, collectProductIDs(input.Items)); err != nil {
		return nil, err
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		stockRepo := s.stock.WithTx(tx)
		ledgerRepo := s.ledger.WithTx(tx)

		for _, item := range input.Items {
			ok, err := stockRepo.DecrementIfAvailable(ctx, plate, item.ProductID, item.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decrement stock")
			}
			if !ok {
				available := 0.0
				if snapshot, err := stockRepo.Get(ctx, plate, item.ProductID); err == nil {
					available = snapshot.Quantity
				} else if !errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read stock balance")
				}
				return pkgerrors.New(pkgerrors.CodeInsufficientStock,
					fmt.Sprintf("insufficient stock: available %g", available)).
					WithDetails(map[string]any{
						"product_id": item.ProductID,
						"available":  available,
						"requested":  item.Quantity,
					})
			}

			entry := &models.MovementEntry{
				ID:        uuid.New(),
				UserID:    input.UserID,
				CarPlate:  plate,
				ProductID: item.ProductID,
				Quantity:  -item.Quantity,
				Type:      enums.MovementTypeOut,
				Place:     &place,
			}
			if err := ledgerRepo.Create(ctx, entry); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record outbound movement")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.VehicleStock(ctx, plate)
}

// Reset replaces the vehicle's whole state after a physical stocktake.
// Zero quantities are skipped, negatives rejected.
func (s *service) Reset(ctx context.Context, input ResetInput) ([]SnapshotDTO, error) {
	plate, err := requirePlateAndUser(input.CarPlate, input.UserID)
	if err != nil {
		return nil, err
	}

	kept := make([]ItemQuantity, 0, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
		}
		if item.Quantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
		if item.Quantity == 0 {
			continue
		}
		kept = append(kept, item)
	}
	if err := s.requireKnownProducts(ctx, collectProductIDs(kept)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		stockRepo := s.stock.WithTx(tx)
		ledgerRepo := s.ledger.WithTx(tx)

		if err := stockRepo.DeleteForPlate(ctx, plate); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear vehicle stock")
		}

		for _, item := range kept {
			snapshot := &models.StockSnapshot{
				ID:        uuid.New(),
				CarPlate:  plate,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UpdatedAt: now,
			}
			if err := stockRepo.Insert(ctx, snapshot); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert stocktake row")
			}

			entry := &models.MovementEntry{
				ID:        uuid.New(),
				UserID:    input.UserID,
				CarPlate:  plate,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Type:      enums.MovementTypeReset,
			}
			if err := ledgerRepo.Create(ctx, entry); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record stocktake movement")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.VehicleStock(ctx, plate)
}

func (s *service) VehicleStock(ctx context.Context, plate string) ([]SnapshotDTO, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "car plate is required")
	}
	rows, err := s.stock.ListForPlate(ctx, plate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vehicle stock")
	}
	return rows, nil
}

func (s *service) requireKnownProducts(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup products")
	}
	known := make(map[uuid.UUID]struct{}, len(found))
	for _, p := range found {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return pkgerrors.New(pkgerrors.CodeNotFound, "unknown product").
				WithDetails(map[string]any{"product_id": id})
		}
	}
	return nil
}

func requirePlateAndUser(plate string, userID uuid.UUID) (string, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "car plate is required")
	}
	if userID == uuid.Nil {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user identity")
	}
	return plate, nil
}

func validatePositiveItems(items []ItemQuantity) error {
	if len(items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "items cannot be empty")
	}
	for _, item := range items {
		if item.ProductID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
		}
		if item.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
	}
	return nil
}

func collectProductIDs(items []ItemQuantity) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	out := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		out = append(out, item.ProductID)
	}
	return out
}
