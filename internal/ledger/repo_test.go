package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/pkg/db/models"
	"github.com/kwojtas/vanstock-backend/pkg/enums"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  index_code TEXT NOT NULL UNIQUE,
  unit TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	movements := `
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
);`

	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec(movements).Error)

	t.Cleanup(func() {
		_ = db.Exec("DELETE FROM movement_entries").Error
		_ = db.Exec("DELETE FROM products").Error
	})

	return db
}

func mustCreateLedgerProduct(t *testing.T, db *gorm.DB, name, index string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:        uuid.New(),
		Name:      name,
		IndexCode: index,
		Unit:      "szt",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestRepositoryListJoinsProductsNewestFirst(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	cable := mustCreateLedgerProduct(t, db, "Kabel UTP", "KAB-001")
	socket := mustCreateLedgerProduct(t, db, "Gniazdo RJ45", "GNI-002")
	userID := uuid.New()

	older := &models.MovementEntry{
		ID:        uuid.New(),
		UserID:    userID,
		CarPlate:  "WZ1234A",
		ProductID: cable.ID,
		Quantity:  10,
		Type:      enums.MovementTypeIn,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	newer := &models.MovementEntry{
		ID:        uuid.New(),
		UserID:    userID,
		CarPlate:  "WZ1234A",
		ProductID: socket.ID,
		Quantity:  -4,
		Type:      enums.MovementTypeOut,
		CreatedAt: time.Now().Add(-1 * time.Hour),
	}
	otherVehicle := &models.MovementEntry{
		ID:        uuid.New(),
		UserID:    userID,
		CarPlate:  "KR7777B",
		ProductID: cable.ID,
		Quantity:  3,
		Type:      enums.MovementTypeIn,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, otherVehicle))

	rows, err := repo.List(ctx, HistoryQuery{CarPlate: "WZ1234A"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, newer.ID, rows[0].ID)
	require.Equal(t, "Gniazdo RJ45", rows[0].ProductName)
	require.Equal(t, "GNI-002", rows[0].ProductIndex)
	require.Equal(t, older.ID, rows[1].ID)
}

func TestRepositoryListFilters(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	cable := mustCreateLedgerProduct(t, db, "Kabel UTP", "KAB-001")
	userID := uuid.New()

	now := time.Now()
	entries := []*models.MovementEntry{
		{ID: uuid.New(), UserID: userID, CarPlate: "WZ1234A", ProductID: cable.ID, Quantity: 10, Type: enums.MovementTypeIn, CreatedAt: now.Add(-72 * time.Hour)},
		{ID: uuid.New(), UserID: userID, CarPlate: "WZ1234A", ProductID: cable.ID, Quantity: -2, Type: enums.MovementTypeOut, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: uuid.New(), UserID: userID, CarPlate: "WZ1234A", ProductID: cable.ID, Quantity: -1, Type: enums.MovementTypeOut, CreatedAt: now.Add(-1 * time.Hour)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	outType := enums.MovementTypeOut
	rows, err := repo.List(ctx, HistoryQuery{CarPlate: "WZ1234A", Type: &outType})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	from := now.Add(-48 * time.Hour)
	rows, err = repo.List(ctx, HistoryQuery{CarPlate: "WZ1234A", From: &from})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = repo.List(ctx, HistoryQuery{CarPlate: "WZ1234A", Limit: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, float64(-1), rows[0].Quantity)
}
