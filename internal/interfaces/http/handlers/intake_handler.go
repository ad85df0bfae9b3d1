package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/domain/repositories"
	"nexuserv.backend/internal/interfaces/http/response"
	"nexuserv.backend/internal/infrastructure/storage"
	"nexuserv.backend/internal/usecases"
)

// IntakeHandler handles application submission and CV read endpoints
type IntakeHandler struct {
	intakeUsecase *usecases.IntakeUsecase
	cvRepo        repositories.CVRepository
	blob          storage.BlobStorage
	signedURLTTL  time.Duration
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(
	intakeUsecase *usecases.IntakeUsecase,
	cvRepo repositories.CVRepository,
	blob storage.BlobStorage,
	signedURLTTL time.Duration,
) *IntakeHandler {
	return &IntakeHandler{
		intakeUsecase: intakeUsecase,
		cvRepo:        cvRepo,
		blob:          blob,
		signedURLTTL:  signedURLTTL,
	}
}

// CreateApplication handles a résumé submission
// POST /postulaciones
func (h *IntakeHandler) CreateApplication(c *gin.Context) {
	var input entities.IntakeInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	fileHeader, err := c.FormFile("cv")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("cv file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}
	defer file.Close()

	result, err := h.intakeUsecase.Submit(c.Request.Context(), &input, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetCVDetail returns the applicant name, stored path and classifier text
// GET /cvs/detalle/:id
func (h *IntakeHandler) GetCVDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid cv id"))
		return
	}

	detail, err := h.cvRepo.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.NotFound(c, "CV no encontrado")
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// ListApproved lists CVs with the approved status
// GET /cvs/apto
func (h *IntakeHandler) ListApproved(c *gin.Context) {
	h.listByStatus(c, entities.CVStatusApto)
}

// ListByStatus lists CVs filtered by an arbitrary status name
// GET /cvs/estado/:estado
func (h *IntakeHandler) ListByStatus(c *gin.Context) {
	h.listByStatus(c, c.Param("estado"))
}

func (h *IntakeHandler) listByStatus(c *gin.Context, estado string) {
	cvs, err := h.cvRepo.ListByStatus(c.Request.Context(), estado)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, cvs)
}

// GetCVURL mints a time-limited signed read URL for a stored blob
// GET /get-cv-url/:blobName
func (h *IntakeHandler) GetCVURL(c *gin.Context) {
	blobName := c.Param("blobName")

	url, err := h.blob.SignedURL(blobName, h.signedURLTTL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}
