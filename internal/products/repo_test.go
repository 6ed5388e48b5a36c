package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kwojtas/vanstock-backend/pkg/db/models"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
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
	require.NoError(t, db.Exec(schema).Error)

	t.Cleanup(func() {
		_ = db.Exec("DELETE FROM products").Error
	})

	return db
}

func TestRepositoryUniqueIndexCode(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := &models.Product{ID: uuid.New(), Name: "Kabel UTP", IndexCode: "KAB-001", Unit: "m"}
	require.NoError(t, repo.Create(ctx, first))

	dup := &models.Product{ID: uuid.New(), Name: "Kabel FTP", IndexCode: "KAB-001", Unit: "m"}
	require.Error(t, repo.Create(ctx, dup))
}

func TestRepositoryListFiltersAndSearch(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seed := []*models.Product{
		{ID: uuid.New(), Name: "Kabel UTP kat.5e", IndexCode: "KAB-001", Unit: "m", Category: "kable"},
		{ID: uuid.New(), Name: "Gniazdo RJ45", IndexCode: "GNI-002", Unit: "szt", Category: "osprzet"},
		{ID: uuid.New(), Name: "Kabel koncentryczny", IndexCode: "KAB-003", Unit: "m", Category: "kable"},
	}
	for _, p := range seed {
		require.NoError(t, repo.Create(ctx, p))
	}

	rows, err := repo.List(ctx, ListQuery{Category: "kable"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = repo.List(ctx, ListQuery{Search: "rj45"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "GNI-002", rows[0].IndexCode)

	rows, err = repo.List(ctx, ListQuery{Search: "kab-0"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestRepositoryDeleteMissing(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
