package repositories

import (
	"context"

	"github.com/google/uuid"
	"nexuserv.backend/internal/domain/entities"
)

// CVRepository defines application (CV) data operations
type CVRepository interface {
	Create(ctx context.Context, cv *entities.CV) error
	// ResolveOrCreateStatus looks up the status row by name, creating it
	// on first use. Idempotent by name.
	ResolveOrCreateStatus(ctx context.Context, name string) (uuid.UUID, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*entities.CVDetail, error)
	ListByStatus(ctx context.Context, statusName string) ([]*entities.CVWithUser, error)
}
