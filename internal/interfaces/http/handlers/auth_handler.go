package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/interfaces/http/response"
	"nexuserv.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// LoginClient handles client login
// POST /auth/cliente
func (h *AuthHandler) LoginClient(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.authUsecase.LoginClient(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.ErrorWithStatus(c, http.StatusUnauthorized, "Credenciales inválidas o rol incorrecto.")
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}
