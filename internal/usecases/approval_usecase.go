package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/domain/repositories"
	"nexuserv.backend/internal/infrastructure/mail"
	"nexuserv.backend/pkg/crypto"
	"nexuserv.backend/pkg/logger"
	"nexuserv.backend/pkg/metrics"
)

const (
	acceptedSubject = "Acceso como Especialista"

	acceptedBodyTemplate = `Hola %s %s,

Tu postulación ha sido aceptada. Ya puedes acceder a la plataforma movil como especialista.

Tus credenciales son:
- Usuario: %s
- Contraseña: %s

Recuerda descargar la aplicacion desde google play.

Saludos,
Equipo Nexuserv
`
)

// ApprovalResult reports the outcome of accepting an applicant.
type ApprovalResult struct {
	Mensaje       string `json:"mensaje"`
	CorreoEnviado bool   `json:"correo_enviado"`
}

// ApprovalUsecase promotes an applicant to specialist and notifies them
// of their new credentials.
type ApprovalUsecase struct {
	userRepo repositories.UserRepository
	mailer   mail.Sender
}

// NewApprovalUsecase creates a new approval usecase
func NewApprovalUsecase(userRepo repositories.UserRepository, mailer mail.Sender) *ApprovalUsecase {
	return &ApprovalUsecase{
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// Accept looks up a pending applicant, generates a fresh credential,
// promotes the account to specialist and emails the credential in plain
// text. A failed email does not roll back the promotion; it is reported
// in the result instead.
func (u *ApprovalUsecase) Accept(ctx context.Context, id uuid.UUID) (*ApprovalResult, error) {
	user, err := u.userRepo.GetByIDAndRole(ctx, id, entities.UserRoleApplicant)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Postulante no encontrado o ya no es postulante.")
		}
		return nil, err
	}

	password, err := crypto.GeneratePassword(user.FirstName, user.LastName)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	if err := u.userRepo.PromoteToSpecialist(ctx, user.ID, passwordHash); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	body := fmt.Sprintf(acceptedBodyTemplate, user.FirstName, user.LastName, user.Email, password)
	if err := u.mailer.Send(user.Email, acceptedSubject, body); err != nil {
		// The promotion is already committed; the applicant just never
		// learned their credential.
		metrics.EmailSendErrors.Inc()
		logger.Error(ctx, "failed to send acceptance email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return &ApprovalResult{
			Mensaje:       "Postulante aceptado, pero no se pudo enviar el correo.",
			CorreoEnviado: false,
		}, nil
	}

	return &ApprovalResult{
		Mensaje:       "Postulante aceptado y correo enviado.",
		CorreoEnviado: true,
	}, nil
}
