package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
)

func TestUnitOfWork_Commit(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createCVTables(t, db)
	uow := NewUnitOfWork(db)
	userRepo := NewUserRepository(db)
	cvRepo := NewCVRepository(db)
	ctx := context.Background()

	user := &entities.User{Email: "a@nexuserv.pe", FirstName: "Ana", LastName: "Mora", Role: entities.UserRoleApplicant, Status: true}
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := userRepo.Create(txCtx, user); err != nil {
			return err
		}
		statusID, err := cvRepo.ResolveOrCreateStatus(txCtx, entities.CVStatusApto)
		if err != nil {
			return err
		}
		return cvRepo.Create(txCtx, &entities.CV{
			UserID:   user.ID,
			StatusID: statusID,
			FilePath: "abc_cv.pdf",
			IAResult: "✅ Apto",
		})
	})
	require.NoError(t, err)

	got, err := userRepo.GetByEmail(ctx, "a@nexuserv.pe")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	var cvCount int64
	require.NoError(t, db.Table("cvs").Count(&cvCount).Error)
	require.EqualValues(t, 1, cvCount)
}

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	uow := NewUnitOfWork(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		user := &entities.User{Email: "a@nexuserv.pe", FirstName: "Ana", LastName: "Mora", Role: entities.UserRoleApplicant, Status: true}
		if err := userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = userRepo.GetByEmail(ctx, "a@nexuserv.pe")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGetDB_FallbackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)
	require.Same(t, db, GetDB(context.Background(), db))
}
