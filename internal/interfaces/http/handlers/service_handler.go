package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/domain/repositories"
	"nexuserv.backend/internal/interfaces/http/response"
)

// ServiceHandler handles the service catalog CRUD
type ServiceHandler struct {
	serviceRepo repositories.ServiceRepository
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(serviceRepo repositories.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{serviceRepo: serviceRepo}
}

// CreateService creates a catalog entry
// POST /services/
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var input entities.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	service, err := h.serviceRepo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, service)
}

// ListServices lists all catalog entries
// GET /services/
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.serviceRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, services)
}

// UpdateService updates a catalog entry
// PUT /services/:id
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service id"))
		return
	}

	var input entities.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	service, err := h.serviceRepo.Update(c.Request.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.NotFound(c, "Servicio no encontrado")
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, service)
}

// DeleteService removes a catalog entry
// DELETE /services/:id
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service id"))
		return
	}

	service, err := h.serviceRepo.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.NotFound(c, "Servicio no encontrado")
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, service)
}
