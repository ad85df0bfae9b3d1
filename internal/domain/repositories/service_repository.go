package repositories

import (
	"context"

	"github.com/google/uuid"
	"nexuserv.backend/internal/domain/entities"
)

// ServiceRepository defines catalog operations
type ServiceRepository interface {
	Create(ctx context.Context, input *entities.ServiceInput) (*entities.Service, error)
	List(ctx context.Context) ([]*entities.Service, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.ServiceInput) (*entities.Service, error)
	Delete(ctx context.Context, id uuid.UUID) (*entities.Service, error)
}

// ServiceRequestRepository defines service request read operations
type ServiceRequestRepository interface {
	ListDetails(ctx context.Context) ([]*entities.ServiceRequestDetail, error)
	ListAdmin(ctx context.Context, filter entities.ServiceRequestFilter) ([]*entities.AdminServiceRequest, error)
}

// PaymentRepository defines payment operations
type PaymentRepository interface {
	ListAdmin(ctx context.Context) ([]*entities.AdminPayment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
