package usecases

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexuserv.backend/internal/domain/entities"
	domainerrors "nexuserv.backend/internal/domain/errors"
	"nexuserv.backend/internal/domain/repositories"
	"nexuserv.backend/internal/infrastructure/ai"
	"nexuserv.backend/internal/infrastructure/extract"
	"nexuserv.backend/internal/infrastructure/storage"
	"nexuserv.backend/pkg/logger"
	"nexuserv.backend/pkg/metrics"
)

// IntakeUsecase orchestrates the submission workflow: scratch save,
// text extraction, eligibility classification, blob upload and
// transactional persistence.
type IntakeUsecase struct {
	userRepo   repositories.UserRepository
	cvRepo     repositories.CVRepository
	uow        repositories.UnitOfWork
	classifier ai.Classifier
	extractor  extract.TextExtractor
	blob       storage.BlobStorage
	uploadsDir string
}

// NewIntakeUsecase creates a new intake usecase
func NewIntakeUsecase(
	userRepo repositories.UserRepository,
	cvRepo repositories.CVRepository,
	uow repositories.UnitOfWork,
	classifier ai.Classifier,
	extractor extract.TextExtractor,
	blob storage.BlobStorage,
	uploadsDir string,
) *IntakeUsecase {
	return &IntakeUsecase{
		userRepo:   userRepo,
		cvRepo:     cvRepo,
		uow:        uow,
		classifier: classifier,
		extractor:  extractor,
		blob:       blob,
		uploadsDir: uploadsDir,
	}
}

// Submit runs the end-to-end application workflow. A classifier
// failure does not abort the request: the error text is substituted as
// the verdict and the submission lands as "No Apto". The blob is
// uploaded regardless of the verdict, and the scratch file is removed
// on every path.
func (u *IntakeUsecase) Submit(ctx context.Context, input *entities.IntakeInput, filename string, file io.Reader) (*entities.IntakeResult, error) {
	scratchPath, err := u.saveScratch(filename, file)
	if err != nil {
		return nil, domainerrors.InternalError(fmt.Errorf("failed to save upload: %w", err))
	}
	defer os.Remove(scratchPath)

	text, err := u.extractor.ExtractText(scratchPath)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	resultado, err := u.classifier.Classify(ctx, text)
	if err != nil {
		// A provider outage is absorbed into the not-approved branch;
		// the error text becomes the stored result.
		metrics.ClassifierErrors.Inc()
		logger.Warn(ctx, "classifier call failed, continuing as No Apto", zap.Error(err))
		resultado = "❌ Error al procesar el CV: " + err.Error()
	}

	estado := entities.CVStatusNoApto
	if ai.IsApproved(resultado) {
		estado = entities.CVStatusApto
	}

	blobName := uuid.New().String() + "_" + filename
	if err := u.uploadScratch(ctx, scratchPath, blobName); err != nil {
		return nil, domainerrors.InternalError(fmt.Errorf("failed to upload blob: %w", err))
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		applicant := &entities.User{
			Email:          input.Correo,
			FirstName:      input.Nombres,
			LastName:       input.Apellidos,
			Role:           entities.UserRoleApplicant,
			Status:         true,
			PhoneNumber:    nullStringFrom(input.Celular),
			DocumentNumber: nullStringFrom(input.DNI),
		}
		if err := u.userRepo.Create(txCtx, applicant); err != nil {
			return err
		}

		statusID, err := u.cvRepo.ResolveOrCreateStatus(txCtx, estado)
		if err != nil {
			return err
		}

		return u.cvRepo.Create(txCtx, &entities.CV{
			UserID:   applicant.ID,
			StatusID: statusID,
			FilePath: blobName,
			IAResult: resultado,
		})
	})
	if err != nil {
		// The uploaded blob stays behind; there is no compensating delete.
		return nil, domainerrors.NewAppError(http.StatusInternalServerError,
			"No se pudo guardar en la base de datos: "+err.Error(), err)
	}

	metrics.IntakeSubmissions.WithLabelValues(estado).Inc()
	logger.Info(ctx, "application processed",
		zap.String("estado", estado),
		zap.String("blob", blobName),
	)

	return &entities.IntakeResult{
		Usuario:     input.Usuario,
		Estado:      estado,
		RutaEnBlob:  blobName,
		ResultadoIA: resultado,
	}, nil
}

func (u *IntakeUsecase) saveScratch(filename string, file io.Reader) (string, error) {
	if err := os.MkdirAll(u.uploadsDir, 0o755); err != nil {
		return "", err
	}

	scratchPath := filepath.Join(u.uploadsDir, filepath.Base(filename))
	out, err := os.Create(scratchPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(scratchPath)
		return "", err
	}
	return scratchPath, nil
}

func (u *IntakeUsecase) uploadScratch(ctx context.Context, scratchPath, blobName string) error {
	f, err := os.Open(scratchPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return u.blob.Upload(ctx, blobName, f)
}
