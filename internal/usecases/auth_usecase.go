package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/domain/repositories"
	"nexuserv.backend/pkg/crypto"
	"nexuserv.backend/pkg/jwt"
	"nexuserv.backend/pkg/logger"
	"nexuserv.backend/pkg/redis"
)

const sessionTTL = 24 * time.Hour

// AuthUsecase handles client authentication
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, sessionStore *redis.SessionStore) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// LoginClient authenticates a client account. Wrong email, wrong
// password and wrong role all collapse to the same unauthorized error.
func (u *AuthUsecase) LoginClient(ctx context.Context, input *entities.LoginInput) (*entities.ClientProfile, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Role != entities.UserRoleClient {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()
	if u.sessionStore != nil {
		err = u.sessionStore.CreateSession(ctx, sessionID, &redis.SessionData{
			UserID:      user.ID.String(),
			Email:       user.Email,
			Role:        string(user.Role),
			AccessToken: token,
		}, sessionTTL)
		if err != nil {
			// Login still succeeds with the bare token.
			logger.Warn(ctx, "failed to create session", zap.Error(err))
			sessionID = ""
		}
	} else {
		sessionID = ""
	}

	return &entities.ClientProfile{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           user.Role,
		PhoneNumber:    user.PhoneNumber,
		DocumentNumber: user.DocumentNumber,
		AccessToken:    token,
		SessionID:      sessionID,
	}, nil
}
