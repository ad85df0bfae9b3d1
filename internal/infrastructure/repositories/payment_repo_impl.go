package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/infrastructure/models"
)

// PaymentRepository implements payment operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListAdmin returns payments joined to specialist and client names
func (r *PaymentRepository) ListAdmin(ctx context.Context) ([]*entities.AdminPayment, error) {
	var rows []struct {
		ID                  uuid.UUID
		SpecialistFirstName string
		SpecialistLastName  string
		ClientFirstName     string
		ClientLastName      string
		Amount              float64
		Status              string
		CreatedAt           time.Time
	}

	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("payments").
		Select(`payments.id,
			s.first_name AS specialist_first_name, s.last_name AS specialist_last_name,
			c.first_name AS client_first_name, c.last_name AS client_last_name,
			payments.amount, payments.status, payments.created_at`).
		Joins("JOIN users s ON payments.specialist_id = s.id").
		Joins("JOIN users c ON payments.client_id = c.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.AdminPayment, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entities.AdminPayment{
			ID:             row.ID,
			SpecialistName: row.SpecialistFirstName + " " + row.SpecialistLastName,
			ClientName:     row.ClientFirstName + " " + row.ClientLastName,
			Amount:         row.Amount,
			Status:         row.Status,
			CreatedAt:      row.CreatedAt,
		})
	}
	return result, nil
}

// UpdateStatus sets a payment's status
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
