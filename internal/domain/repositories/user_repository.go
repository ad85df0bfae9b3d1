package repositories

import (
	"context"

	"github.com/google/uuid"
	"nexuserv.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// GetByIDAndRole returns the user only when it exists with the given
	// role; used by the approval workflow to find pending applicants.
	GetByIDAndRole(ctx context.Context, id uuid.UUID, role entities.UserRole) (*entities.User, error)
	// PromoteToSpecialist swaps the credential and role in one update.
	PromoteToSpecialist(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status bool) error
	List(ctx context.Context) ([]*entities.AdminUser, error)
}
