package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		Email:          "ana@nexuserv.pe",
		FirstName:      "Ana",
		LastName:       "Gómez",
		Role:           entities.UserRoleApplicant,
		Status:         true,
		PhoneNumber:    null.StringFrom("999888777"),
		DocumentNumber: null.StringFrom("12345678"),
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEqual(t, uuid.Nil, u.ID, "Create should assign an id")

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "ana@nexuserv.pe", byID.Email)
	require.Equal(t, entities.UserRoleApplicant, byID.Role)
	require.Equal(t, "999888777", byID.PhoneNumber.String)

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmailsAllowed(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &entities.User{Email: "dup@nexuserv.pe", FirstName: "A", LastName: "B", Role: entities.UserRoleApplicant, Status: true}
	second := &entities.User{Email: "dup@nexuserv.pe", FirstName: "A", LastName: "B", Role: entities.UserRoleApplicant, Status: true}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NotEqual(t, first.ID, second.ID)
}

func TestUserRepository_GetByIDAndRole(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{Email: "p@nexuserv.pe", FirstName: "Pedro", LastName: "Ruiz", Role: entities.UserRoleApplicant, Status: true}
	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.GetByIDAndRole(ctx, u.ID, entities.UserRoleApplicant)
	require.NoError(t, err)
	require.Equal(t, u.ID, found.ID)

	_, err = repo.GetByIDAndRole(ctx, u.ID, entities.UserRoleSpecialist)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByIDAndRole(ctx, uuid.New(), entities.UserRoleApplicant)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_PromoteToSpecialist(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{Email: "p@nexuserv.pe", FirstName: "Pedro", LastName: "Ruiz", Role: entities.UserRoleApplicant, Status: true}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.PromoteToSpecialist(ctx, u.ID, "new-hash"))

	promoted, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserRoleSpecialist, promoted.Role)
	require.Equal(t, "new-hash", promoted.PasswordHash)

	require.ErrorIs(t, repo.PromoteToSpecialist(ctx, uuid.New(), "x"), domainerrors.ErrNotFound)
}

func TestUserRepository_UpdateStatusAndList(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{Email: "c@nexuserv.pe", FirstName: "Clara", LastName: "Luz", Role: entities.UserRoleClient, Status: true}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.UpdateStatus(ctx, u.ID, false))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.False(t, users[0].Status)
	require.Equal(t, entities.UserRoleClient, users[0].Role)

	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), true), domainerrors.ErrNotFound)
}
