package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
)

func TestCVRepository_ResolveOrCreateStatusIdempotent(t *testing.T) {
	db := newTestDB(t)
	createCVTables(t, db)
	repo := NewCVRepository(db)
	ctx := context.Background()

	first, err := repo.ResolveOrCreateStatus(ctx, "Apto")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first)

	second, err := repo.ResolveOrCreateStatus(ctx, "Apto")
	require.NoError(t, err)
	require.Equal(t, first, second, "same name must resolve to the same id")

	var count int64
	require.NoError(t, db.Table("cv_statuses").Where("name = ?", "Apto").Count(&count).Error)
	require.EqualValues(t, 1, count, "no duplicate status rows")

	other, err := repo.ResolveOrCreateStatus(ctx, "No Apto")
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestCVRepository_CreateAndDetail(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createCVTables(t, db)
	userRepo := NewUserRepository(db)
	repo := NewCVRepository(db)
	ctx := context.Background()

	owner := &entities.User{Email: "ana@nexuserv.pe", FirstName: "Ana", LastName: "Gómez", Role: entities.UserRoleApplicant, Status: true}
	require.NoError(t, userRepo.Create(ctx, owner))

	statusID, err := repo.ResolveOrCreateStatus(ctx, "Apto")
	require.NoError(t, err)

	cv := &entities.CV{
		UserID:   owner.ID,
		StatusID: statusID,
		FilePath: "abc_cv.pdf",
		IAResult: "Cumple el perfil.\n✅ Apto",
	}
	require.NoError(t, repo.Create(ctx, cv))
	require.False(t, cv.UploadedAt.IsZero(), "upload timestamp assigned at insert")

	detail, err := repo.GetDetail(ctx, cv.ID)
	require.NoError(t, err)
	require.Equal(t, "Ana Gómez", detail.Nombre)
	require.Equal(t, "abc_cv.pdf", detail.CVPath)
	require.Contains(t, detail.ResultadoIA, "✅ Apto")

	_, err = repo.GetDetail(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCVRepository_ListByStatus(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createCVTables(t, db)
	userRepo := NewUserRepository(db)
	repo := NewCVRepository(db)
	ctx := context.Background()

	owner := &entities.User{Email: "ana@nexuserv.pe", FirstName: "Ana", LastName: "Gómez", Role: entities.UserRoleApplicant, Status: true}
	require.NoError(t, userRepo.Create(ctx, owner))

	aptoID, err := repo.ResolveOrCreateStatus(ctx, "Apto")
	require.NoError(t, err)
	noAptoID, err := repo.ResolveOrCreateStatus(ctx, "No Apto")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, &entities.CV{UserID: owner.ID, StatusID: aptoID, FilePath: "a.pdf", IAResult: "✅ Apto"}))
	require.NoError(t, repo.Create(ctx, &entities.CV{UserID: owner.ID, StatusID: noAptoID, FilePath: "b.pdf", IAResult: "❌ No apto"}))

	aptos, err := repo.ListByStatus(ctx, "Apto")
	require.NoError(t, err)
	require.Len(t, aptos, 1)
	require.Equal(t, "a.pdf", aptos[0].FilePath)
	require.Equal(t, "ana@nexuserv.pe", aptos[0].Email)
	require.Equal(t, owner.ID, aptos[0].UserID)

	none, err := repo.ListByStatus(ctx, "Pendiente")
	require.NoError(t, err)
	require.Empty(t, none)
}
