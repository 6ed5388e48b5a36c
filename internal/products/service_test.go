package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
)

func TestServiceCreateNormalizesIndexCode(t *testing.T) {
	db := setupProductsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:      "  Kabel UTP ",
		IndexCode: " kab-001 ",
		Unit:      "m",
	})
	require.NoError(t, err)
	require.Equal(t, "Kabel UTP", created.Name)
	require.Equal(t, "KAB-001", created.IndexCode)
}

func TestServiceCreateDuplicateIndexCodeConflicts(t *testing.T) {
	db := setupProductsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Create(ctx, CreateProductRequest{Name: "Kabel UTP", IndexCode: "KAB-001", Unit: "m"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateProductRequest{Name: "Kabel FTP", IndexCode: "KAB-001", Unit: "m"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestServiceUpdatePartial(t *testing.T) {
	db := setupProductsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{Name: "Kabel UTP", IndexCode: "KAB-001", Unit: "m"})
	require.NoError(t, err)

	newName := "Kabel UTP kat.6"
	updated, err := svc.Update(ctx, created.ID, UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)
	require.Equal(t, "KAB-001", updated.IndexCode)
}

func TestServiceGetMissingReturnsNotFound(t *testing.T) {
	db := setupProductsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
