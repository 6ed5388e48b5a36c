package receipts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/internal/ledger"
	"github.com/kwojtas/vanstock-backend/internal/products"
	"github.com/kwojtas/vanstock-backend/internal/stock"
	"github.com/kwojtas/vanstock-backend/pkg/db"
	"github.com/kwojtas/vanstock-backend/pkg/db/models"
	"github.com/kwojtas/vanstock-backend/pkg/enums"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
)

const documentDateLayout = "2006-01-02"

var nameCaser = cases.Title(language.Polish)

// Service covers goods-received documents. Creating one also loads the
// vehicle, so the document, snapshots and ledger move together.
type Service interface {
	Create(ctx context.Context, input CreateReceiptInput) (*ReceiptDTO, error)
	List(ctx context.Context, plate string) ([]ReceiptSummaryDTO, error)
	Get(ctx context.Context, id uuid.UUID, plate string) (*ReceiptDTO, error)
	Delete(ctx context.Context, id uuid.UUID, plate string) error
}

type service struct {
	db       *db.Client
	receipts Repository
	stock    stock.Repository
	ledger   ledger.Repository
	products products.Repository
}

// ServiceParams bundles the dependencies for the receipts service.
type ServiceParams struct {
	DB       *db.Client
	Receipts Repository
	Stock    stock.Repository
	Ledger   ledger.Repository
	Products products.Repository
}

// NewService wires the receipts service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client required")
	}
	if params.Receipts == nil || params.Stock == nil || params.Ledger == nil || params.Products == nil {
		return nil, fmt.Errorf("receipts, stock, ledger and products repositories required")
	}
	return &service{
		db:       params.DB,
		receipts: params.Receipts,
		stock:    params.Stock,
		ledger:   params.Ledger,
		products: params.Products,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateReceiptInput) (*ReceiptDTO, error) {
	plate := strings.TrimSpace(input.CarPlate)
	if plate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "car plate is required")
	}
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user identity")
	}

	req := input.Request
	documentDate, err := time.Parse(documentDateLayout, strings.TrimSpace(req.DocumentDate))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid document date (expected YYYY-MM-DD)")
	}
	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "items cannot be empty")
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProductID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
		ids = append(ids, item.ProductID)
	}
	if err := s.requireKnownProducts(ctx, ids); err != nil {
		return nil, err
	}

	header := &models.ReceiptHeader{
		ID:           uuid.New(),
		DocumentDate: documentDate,
		TakerName:    nameCaser.String(strings.TrimSpace(req.TakerName)),
		GiverName:    nameCaser.String(strings.TrimSpace(req.GiverName)),
		CarPlate:     plate,
		UserID:       input.UserID,
	}
	for _, item := range req.Items {
		header.Items = append(header.Items, models.ReceiptItem{
			ID:        uuid.New(),
			ReceiptID: header.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		receiptRepo := s.receipts.WithTx(tx)
		stockRepo := s.stock.WithTx(tx)
		ledgerRepo := s.ledger.WithTx(tx)

		if err := receiptRepo.Create(ctx, header); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create receipt")
		}

		for _, item := range header.Items {
			if err := stockRepo.UpsertIncrement(ctx, plate, item.ProductID, item.Quantity); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increment stock")
			}
			receiptID := header.ID
			entry := &models.MovementEntry{
				ID:        uuid.New(),
				UserID:    input.UserID,
				CarPlate:  plate,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Type:      enums.MovementTypeIn,
				ReceiptID: &receiptID,
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

	return s.Get(ctx, header.ID, plate)
}

func (s *service) List(ctx context.Context, plate string) ([]ReceiptSummaryDTO, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "car plate is required")
	}
	headers, err := s.receipts.ListByPlate(ctx, plate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list receipts")
	}
	out := make([]ReceiptSummaryDTO, 0, len(headers))
	for i := range headers {
		h := &headers[i]
		out = append(out, ReceiptSummaryDTO{
			ID:           h.ID,
			DocumentDate: h.DocumentDate,
			TakerName:    h.TakerName,
			GiverName:    h.GiverName,
			CarPlate:     h.CarPlate,
			ItemCount:    len(h.Items),
			CreatedAt:    h.CreatedAt,
		})
	}
	return out, nil
}

// Get loads one document. A non-empty plate scopes the lookup to that
// vehicle so technicians cannot read each other's documents.
func (s *service) Get(ctx context.Context, id uuid.UUID, plate string) (*ReceiptDTO, error) {
	header, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "receipt not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup receipt")
	}
	if plate = strings.TrimSpace(plate); plate != "" && header.CarPlate != plate {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "receipt not found")
	}

	items, err := s.receipts.ListItems(ctx, header.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load receipt items")
	}

	return &ReceiptDTO{
		ID:           header.ID,
		DocumentDate: header.DocumentDate,
		TakerName:    header.TakerName,
		GiverName:    header.GiverName,
		CarPlate:     header.CarPlate,
		UserID:       header.UserID,
		Items:        items,
		CreatedAt:    header.CreatedAt,
	}, nil
}

// Delete removes the document only. Ledger entries and stock stay as they
// are; the paper trail of what was loaded remains in the history.
func (s *service) Delete(ctx context.Context, id uuid.UUID, plate string) error {
	header, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "receipt not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup receipt")
	}
	if plate = strings.TrimSpace(plate); plate != "" && header.CarPlate != plate {
		return pkgerrors.New(pkgerrors.CodeNotFound, "receipt not found")
	}

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.receipts.WithTx(tx).Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete receipt")
		}
		return nil
	})
}

func (s *service) requireKnownProducts(ctx context.Context, ids []uuid.UUID) error {
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
