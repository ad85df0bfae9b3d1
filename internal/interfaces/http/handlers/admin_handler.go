package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/domain/repositories"
	"nexuserv.backend/internal/interfaces/http/response"
	"nexuserv.backend/internal/usecases"
)

// AdminHandler handles administrative read/update endpoints
type AdminHandler struct {
	userRepo           repositories.UserRepository
	paymentRepo        repositories.PaymentRepository
	serviceRequestRepo repositories.ServiceRequestRepository
	approvalUsecase    *usecases.ApprovalUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	serviceRequestRepo repositories.ServiceRequestRepository,
	approvalUsecase *usecases.ApprovalUsecase,
) *AdminHandler {
	return &AdminHandler{
		userRepo:           userRepo,
		paymentRepo:        paymentRepo,
		serviceRequestRepo: serviceRequestRepo,
		approvalUsecase:    approvalUsecase,
	}
}

// ListUsers lists all users
// GET /admin/usuarios
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// UpdateUserStatus flips a user's active flag
// PUT /admin/usuarios/:id/estado
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input struct {
		Estado *bool `form:"estado" binding:"required"`
	}
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.userRepo.UpdateStatus(c.Request.Context(), id, *input.Estado); err != nil {
		response.Error(c, err)
		return
	}

	label := "Inactivo"
	if *input.Estado {
		label = "Activo"
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Usuario %s actualizado a estado %s", id, label),
	})
}

// ListPayments lists payments with specialist and client names
// GET /admin/pagos
func (h *AdminHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentRepo.ListAdmin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payments)
}

// UpdatePaymentStatus sets a payment's status
// PUT /admin/pagos/:id/estado
func (h *AdminHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid payment id"))
		return
	}

	var input struct {
		Estado string `form:"estado" binding:"required"`
	}
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.paymentRepo.UpdateStatus(c.Request.Context(), id, input.Estado); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Pago %s actualizado a estado %s", id, input.Estado),
	})
}

// ListServiceRequests lists service requests for the admin view
// GET /admin/solicitudes
func (h *AdminHandler) ListServiceRequests(c *gin.Context) {
	filter := entities.ServiceRequestFilter{
		Status:           c.Query("status"),
		AcceptanceStatus: c.Query("acceptance_status"),
	}

	requests, err := h.serviceRequestRepo.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, requests)
}

// ListServiceRequestDetails lists requests with service and user names
// GET /service-requests/detalles
func (h *AdminHandler) ListServiceRequestDetails(c *gin.Context) {
	details, err := h.serviceRequestRepo.ListDetails(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, details)
}

// AcceptApplicant promotes an applicant to specialist
// PUT /postulantes/aceptar/:id
func (h *AdminHandler) AcceptApplicant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid applicant id"))
		return
	}

	result, err := h.approvalUsecase.Accept(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
