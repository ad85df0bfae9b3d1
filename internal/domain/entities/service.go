package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Service is a catalog entry offered on the platform
type Service struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	ImageURL    null.String `json:"image_url"`
}

// ServiceInput is the create/update payload for a catalog entry
type ServiceInput struct {
	Name        string      `json:"name" binding:"required"`
	Description null.String `json:"description"`
	ImageURL    null.String `json:"image_url"`
}

// ServiceRequest ties a requesting client to a service, optionally
// assigned to a specialist.
type ServiceRequest struct {
	ID               uuid.UUID   `json:"id"`
	ServiceID        uuid.UUID   `json:"service_id"`
	UserID           uuid.UUID   `json:"user_id"`
	SpecialistID     null.String `json:"specialist_id"`
	ServiceDetails   string      `json:"service_details"`
	PhoneNumber      string      `json:"phone_number"`
	Status           string      `json:"status"`
	AcceptanceStatus string      `json:"acceptance_status"`
	RequestedAt      time.Time   `json:"requested_at"`
}

// ServiceRequestDetail is the joined row for /service-requests/detalles
type ServiceRequestDetail struct {
	ID             uuid.UUID `json:"id"`
	ServiceName    string    `json:"service_name"`
	UserName       string    `json:"user_name"`
	ServiceDetails string    `json:"service_details"`
	PhoneNumber    string    `json:"phone_number"`
}

// AdminServiceRequest is the joined row for /admin/solicitudes
type AdminServiceRequest struct {
	ID               uuid.UUID   `json:"id"`
	ServiceName      string      `json:"service_name"`
	ClientName       string      `json:"client_name"`
	SpecialistName   null.String `json:"specialist_name"`
	Status           string      `json:"status"`
	AcceptanceStatus string      `json:"acceptance_status"`
	RequestedAt      time.Time   `json:"requested_at"`
}

// ServiceRequestFilter narrows the admin listing
type ServiceRequestFilter struct {
	Status           string
	AcceptanceStatus string
}

// Payment records money moving from a client to a specialist
type Payment struct {
	ID           uuid.UUID `json:"id"`
	SpecialistID uuid.UUID `json:"specialist_id"`
	ClientID     uuid.UUID `json:"client_id"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminPayment is the joined row for /admin/pagos
type AdminPayment struct {
	ID             uuid.UUID `json:"id"`
	SpecialistName string    `json:"specialist_name"`
	ClientName     string    `json:"client_name"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
