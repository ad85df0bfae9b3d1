package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/infrastructure/models"
)

// CVRepository implements application (CV) data operations
type CVRepository struct {
	db *gorm.DB
}

// NewCVRepository creates a new CV repository
func NewCVRepository(db *gorm.DB) *CVRepository {
	return &CVRepository{db: db}
}

// Create inserts a CV row. The upload timestamp is assigned here.
func (r *CVRepository) Create(ctx context.Context, cv *entities.CV) error {
	if cv.ID == uuid.Nil {
		cv.ID = uuid.New()
	}
	cv.UploadedAt = time.Now()

	m := &models.CV{
		ID:         cv.ID,
		UserID:     cv.UserID,
		StatusID:   cv.StatusID,
		FilePath:   cv.FilePath,
		IAResult:   cv.IAResult,
		UploadedAt: cv.UploadedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ResolveOrCreateStatus looks up the status by name, inserting the row
// on first use. Idempotent: a second call with the same name returns
// the same id.
func (r *CVRepository) ResolveOrCreateStatus(ctx context.Context, name string) (uuid.UUID, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.CVStatus
	err := db.Where("name = ?", name).First(&m).Error
	if err == nil {
		return m.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	m = models.CVStatus{ID: uuid.New(), Name: name}
	if err := db.Create(&m).Error; err != nil {
		return uuid.Nil, err
	}
	return m.ID, nil
}

// GetDetail returns the applicant name, stored path and classifier text
// for a CV.
func (r *CVRepository) GetDetail(ctx context.Context, id uuid.UUID) (*entities.CVDetail, error) {
	var row struct {
		IAResult  string
		FilePath  string
		FirstName string
		LastName  string
	}

	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("cvs").
		Select("cvs.ia_result, cvs.file_path, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = cvs.user_id").
		Where("cvs.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.CVDetail{
		Nombre:      row.FirstName + " " + row.LastName,
		CVPath:      row.FilePath,
		ResultadoIA: row.IAResult,
	}, nil
}

// ListByStatus returns CVs joined to their owners, filtered by status
// name.
func (r *CVRepository) ListByStatus(ctx context.Context, statusName string) ([]*entities.CVWithUser, error) {
	var rows []struct {
		CVID       uuid.UUID
		FilePath   string
		UploadedAt time.Time
		UserID     uuid.UUID
		Email      string
		FirstName  string
		LastName   string
	}

	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("cvs").
		Select(`cvs.id AS cv_id, cvs.file_path, cvs.uploaded_at,
			users.id AS user_id, users.email, users.first_name, users.last_name`).
		Joins("JOIN cv_statuses ON cvs.status_id = cv_statuses.id").
		Joins("JOIN users ON cvs.user_id = users.id").
		Where("cv_statuses.name = ?", statusName).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.CVWithUser, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entities.CVWithUser{
			CVID:       row.CVID,
			FilePath:   row.FilePath,
			UploadedAt: row.UploadedAt,
			UserID:     row.UserID,
			Email:      row.Email,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
		})
	}
	return result, nil
}
