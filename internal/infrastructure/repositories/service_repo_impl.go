package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/infrastructure/models"
)

// ServiceRepository implements catalog operations
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// Create inserts a catalog entry
func (r *ServiceRepository) Create(ctx context.Context, input *entities.ServiceInput) (*entities.Service, error) {
	m := &models.Service{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description.Ptr(),
		ImageURL:    input.ImageURL.Ptr(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return toServiceEntity(m), nil
}

// List returns all catalog entries
func (r *ServiceRepository) List(ctx context.Context) ([]*entities.Service, error) {
	var serviceModels []models.Service
	if err := GetDB(ctx, r.db).WithContext(ctx).Find(&serviceModels).Error; err != nil {
		return nil, err
	}

	services := make([]*entities.Service, 0, len(serviceModels))
	for i := range serviceModels {
		services = append(services, toServiceEntity(&serviceModels[i]))
	}
	return services, nil
}

// Update replaces the mutable fields of a catalog entry
func (r *ServiceRepository) Update(ctx context.Context, id uuid.UUID, input *entities.ServiceInput) (*entities.Service, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Service{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        input.Name,
		"description": input.Description.Ptr(),
		"image_url":   input.ImageURL.Ptr(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}

	var m models.Service
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toServiceEntity(&m), nil
}

// Delete removes a catalog entry, returning the deleted row
func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.Service
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	if err := db.Delete(&models.Service{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toServiceEntity(&m), nil
}

func toServiceEntity(m *models.Service) *entities.Service {
	return &entities.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: null.StringFromPtr(m.Description),
		ImageURL:    null.StringFromPtr(m.ImageURL),
	}
}
