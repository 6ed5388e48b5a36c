package receipts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/internal/ledger"
	"github.com/kwojtas/vanstock-backend/internal/products"
	"github.com/kwojtas/vanstock-backend/internal/stock"
	"github.com/kwojtas/vanstock-backend/pkg/db"
	"github.com/kwojtas/vanstock-backend/pkg/db/models"
	"github.com/kwojtas/vanstock-backend/pkg/enums"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
)

func setupReceiptsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{`
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  index_code TEXT NOT NULL UNIQUE,
  unit TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS stock_snapshots (
  id TEXT PRIMARY KEY,
  car_plate TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity REAL NOT NULL DEFAULT 0,
  updated_at DATETIME,
  UNIQUE (car_plate, product_id)
);`, `
CREATE TABLE IF NOT EXISTS movement_entries (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  car_plate TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity REAL NOT NULL,
  type TEXT NOT NULL,
  place TEXT,
  receipt_id TEXT,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS receipt_headers (
  id TEXT PRIMARY KEY,
  document_date DATETIME NOT NULL,
  taker_name TEXT NOT NULL,
  giver_name TEXT NOT NULL,
  car_plate TEXT NOT NULL,
  user_id TEXT NOT NULL,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS receipt_items (
  id TEXT PRIMARY KEY,
  receipt_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity REAL NOT NULL
);`}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}

	t.Cleanup(func() {
		_ = conn.Exec("DELETE FROM receipt_items").Error
		_ = conn.Exec("DELETE FROM receipt_headers").Error
		_ = conn.Exec("DELETE FROM movement_entries").Error
		_ = conn.Exec("DELETE FROM stock_snapshots").Error
		_ = conn.Exec("DELETE FROM products").Error
	})

	return conn
}

func buildReceiptsService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		DB:       db.FromGorm(conn),
		Receipts: NewRepository(conn),
		Stock:    stock.NewRepository(conn),
		Ledger:   ledger.NewRepository(conn),
		Products: products.NewRepository(conn),
	})
	require.NoError(t, err)
	return svc
}

func mustCreateReceiptProduct(t *testing.T, conn *gorm.DB, name, index string) *models.Product {
	t.Helper()
	product := &models.Product{ID: uuid.New(), Name: name, IndexCode: index, Unit: "szt"}
	require.NoError(t, conn.Create(product).Error)
	return product
}

func TestServiceCreateLoadsVehicleAtomically(t *testing.T) {
	conn := setupReceiptsTestDB(t)
	svc := buildReceiptsService(t, conn)
	ctx := context.Background()

	cable := mustCreateReceiptProduct(t, conn, "Kabel UTP", "KAB-001")
	userID := uuid.New()

	created, err := svc.Create(ctx, CreateReceiptInput{
		UserID:   userID,
		CarPlate: "WZ1234A",
		Request: CreateReceiptRequest{
			DocumentDate: "2026-03-15",
			TakerName:    "jan kowalski",
			GiverName:    "adam nowak",
			Items:        []ReceiptItemInput{{ProductID: cable.ID, Quantity: 20}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Jan Kowalski", created.TakerName)
	require.Equal(t, "Adam Nowak", created.GiverName)
	require.Len(t, created.Items, 1)
	require.Equal(t, "Kabel UTP", created.Items[0].ProductName)

	var snapshot models.StockSnapshot
	require.NoError(t, conn.Where("car_plate = ? AND product_id = ?", "WZ1234A", cable.ID).First(&snapshot).Error)
	require.Equal(t, 20.0, snapshot.Quantity)

	var entry models.MovementEntry
	require.NoError(t, conn.Where("type = ?", enums.MovementTypeIn).First(&entry).Error)
	require.NotNil(t, entry.ReceiptID)
	require.Equal(t, created.ID, *entry.ReceiptID)
}

func TestServiceCreateRejectsBadDate(t *testing.T) {
	conn := setupReceiptsTestDB(t)
	svc := buildReceiptsService(t, conn)

	cable := mustCreateReceiptProduct(t, conn, "Kabel UTP", "KAB-001")

	_, err := svc.Create(context.Background(), CreateReceiptInput{
		UserID:   uuid.New(),
		CarPlate: "WZ1234A",
		Request: CreateReceiptRequest{
			DocumentDate: "15-03-2026",
			TakerName:    "Jan",
			GiverName:    "Adam",
			Items:        []ReceiptItemInput{{ProductID: cable.ID, Quantity: 1}},
		},
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestServiceCreateRejectsUnknownProduct(t *testing.T) {
	conn := setupReceiptsTestDB(t)
	svc := buildReceiptsService(t, conn)

	_, err := svc.Create(context.Background(), CreateReceiptInput{
		UserID:   uuid.New(),
		CarPlate: "WZ1234A",
		Request: CreateReceiptRequest{
			DocumentDate: "2026-03-15",
			TakerName:    "Jan",
			GiverName:    "Adam",
			Items:        []ReceiptItemInput{{ProductID: uuid.New(), Quantity: 1}},
		},
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	var headers int64
	require.NoError(t, conn.Table("receipt_headers").Count(&headers).Error)
	require.Zero(t, headers)
}

func TestServiceGetScopedToPlate(t *testing.T) {
	conn := setupReceiptsTestDB(t)
	svc := buildReceiptsService(t, conn)
	ctx := context.Background()

	cable := mustCreateReceiptProduct(t, conn, "Kabel UTP", "KAB-001")
	created, err := svc.Create(ctx, CreateReceiptInput{
		UserID:   uuid.New(),
		CarPlate: "WZ1234A",
		Request: CreateReceiptRequest{
			DocumentDate: "2026-03-15",
			TakerName:    "Jan",
			GiverName:    "Adam",
			Items:        []ReceiptItemInput{{ProductID: cable.ID, Quantity: 2}},
		},
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, "KR7777B")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	got, err := svc.Get(ctx, created.ID, "WZ1234A")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestServiceDeleteRemovesDocumentKeepsLedger(t *testing.T) {
	conn := setupReceiptsTestDB(t)
	svc := buildReceiptsService(t, conn)
	ctx := context.Background()

	cable := mustCreateReceiptProduct(t, conn, "Kabel UTP", "KAB-001")
	created, err := svc.Create(ctx, CreateReceiptInput{
		UserID:   uuid.New(),
		CarPlate: "WZ1234A",
		Request: CreateReceiptRequest{
			DocumentDate: "2026-03-15",
			TakerName:    "Jan",
			GiverName:    "Adam",
			Items:        []ReceiptItemInput{{ProductID: cable.ID, Quantity: 2}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, "WZ1234A"))

	var headerCount, itemCount, entryCount int64
	require.NoError(t, conn.Model(&models.ReceiptHeader{}).Count(&headerCount).Error)
	require.NoError(t, conn.Model(&models.ReceiptItem{}).Count(&itemCount).Error)
	require.NoError(t, conn.Model(&models.MovementEntry{}).Count(&entryCount).Error)
	require.Zero(t, headerCount)
	require.Zero(t, itemCount)
	require.Equal(t, int64(1), entryCount)
}

func TestServiceListSummaries(t *testing.T) {
	conn := setupReceiptsTestDB(t)
	svc := buildReceiptsService(t, conn)
	ctx := context.Background()

	cable := mustCreateReceiptProduct(t, conn, "Kabel UTP", "KAB-001")
	for _, date := range []string{"2026-03-10", "2026-03-15"} {
		_, err := svc.Create(ctx, CreateReceiptInput{
			UserID:   uuid.New(),
			CarPlate: "WZ1234A",
			Request: CreateReceiptRequest{
				DocumentDate: date,
				TakerName:    "Jan",
				GiverName:    "Adam",
				Items:        []ReceiptItemInput{{ProductID: cable.ID, Quantity: 1}},
			},
		})
		require.NoError(t, err)
	}

	summaries, err := svc.List(ctx, "WZ1234A")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.True(t, summaries[0].DocumentDate.After(summaries[1].DocumentDate))
	require.Equal(t, 1, summaries[0].ItemCount)
}
