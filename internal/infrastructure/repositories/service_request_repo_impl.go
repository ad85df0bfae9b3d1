package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"nexuserv.backend/internal/domain/entities"
)

// ServiceRequestRepository implements service request reads
type ServiceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository creates a new service request repository
func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

// ListDetails returns requests joined to the service name and the
// requesting user's full name.
func (r *ServiceRequestRepository) ListDetails(ctx context.Context) ([]*entities.ServiceRequestDetail, error) {
	var rows []struct {
		ID             uuid.UUID
		ServiceName    string
		FirstName      string
		LastName       string
		ServiceDetails string
		PhoneNumber    string
	}

	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("service_requests").
		Select(`service_requests.id, services.name AS service_name,
			users.first_name, users.last_name,
			service_requests.service_details, service_requests.phone_number`).
		Joins("JOIN users ON service_requests.user_id = users.id").
		Joins("JOIN services ON service_requests.service_id = services.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.ServiceRequestDetail, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entities.ServiceRequestDetail{
			ID:             row.ID,
			ServiceName:    row.ServiceName,
			UserName:       row.FirstName + " " + row.LastName,
			ServiceDetails: row.ServiceDetails,
			PhoneNumber:    row.PhoneNumber,
		})
	}
	return result, nil
}

// ListAdmin returns requests joined to service, client and (when
// assigned) specialist names, optionally filtered by status fields.
func (r *ServiceRequestRepository) ListAdmin(ctx context.Context, filter entities.ServiceRequestFilter) ([]*entities.AdminServiceRequest, error) {
	var rows []struct {
		ID                  uuid.UUID
		ServiceName         string
		ClientFirstName     string
		ClientLastName      string
		SpecialistFirstName *string
		SpecialistLastName  *string
		Status              string
		AcceptanceStatus    string
		RequestedAt         time.Time
	}

	query := GetDB(ctx, r.db).WithContext(ctx).
		Table("service_requests").
		Select(`service_requests.id, services.name AS service_name,
			c.first_name AS client_first_name, c.last_name AS client_last_name,
			e.first_name AS specialist_first_name, e.last_name AS specialist_last_name,
			service_requests.status, service_requests.acceptance_status,
			service_requests.requested_at`).
		Joins("JOIN users c ON service_requests.user_id = c.id").
		Joins("JOIN services ON service_requests.service_id = services.id").
		Joins("LEFT JOIN users e ON service_requests.specialist_id = e.id")

	if filter.Status != "" {
		query = query.Where("service_requests.status = ?", filter.Status)
	}
	if filter.AcceptanceStatus != "" {
		query = query.Where("service_requests.acceptance_status = ?", filter.AcceptanceStatus)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.AdminServiceRequest, 0, len(rows))
	for _, row := range rows {
		specialist := null.String{}
		if row.SpecialistFirstName != nil && row.SpecialistLastName != nil {
			specialist = null.StringFrom(*row.SpecialistFirstName + " " + *row.SpecialistLastName)
		}
		result = append(result, &entities.AdminServiceRequest{
			ID:               row.ID,
			ServiceName:      row.ServiceName,
			ClientName:       row.ClientFirstName + " " + row.ClientLastName,
			SpecialistName:   specialist,
			Status:           row.Status,
			AcceptanceStatus: row.AcceptanceStatus,
			RequestedAt:      row.RequestedAt,
		})
	}
	return result, nil
}
