package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nexuserv.backend/internal/config"
	"nexuserv.backend/internal/infrastructure/ai"
	"nexuserv.backend/internal/infrastructure/extract"
	"nexuserv.backend/internal/infrastructure/mail"
	"nexuserv.backend/internal/infrastructure/repositories"
	"nexuserv.backend/internal/infrastructure/storage"
	"nexuserv.backend/internal/interfaces/http/handlers"
	"nexuserv.backend/internal/interfaces/http/middleware"
	"nexuserv.backend/internal/usecases"
	"nexuserv.backend/pkg/jwt"
	"nexuserv.backend/pkg/logger"
	"nexuserv.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis backs the client session store; a missing instance is not
	// fatal, logins simply return bare tokens.
	var sessionStore *redis.SessionStore
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, sessions disabled", zap.Error(err))
	} else {
		var err error
		sessionStore, err = newSessionStore(cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	}

	blobStore, err := storage.NewS3Storage(cfg.Blob)
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	cvRepo := repositories.NewCVRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	serviceRequestRepo := repositories.NewServiceRequestRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// External collaborators
	classifier := ai.NewEligibilityClassifier(ai.NewOpenAIClient(cfg.OpenAI))
	extractor := extract.NewPDFExtractor()
	mailer := mail.NewSMTPSender(cfg.SMTP)

	// Usecases
	intakeUsecase := usecases.NewIntakeUsecase(userRepo, cvRepo, uow, classifier, extractor, blobStore, cfg.Uploads.Dir)
	approvalUsecase := usecases.NewApprovalUsecase(userRepo, mailer)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore)

	// Handlers
	intakeHandler := handlers.NewIntakeHandler(intakeUsecase, cvRepo, blobStore, cfg.Blob.SignedURLTTL)
	authHandler := handlers.NewAuthHandler(authUsecase)
	adminHandler := handlers.NewAdminHandler(userRepo, paymentRepo, serviceRequestRepo, approvalUsecase)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerRoutes(r, routeDeps{
		authHandler:    authHandler,
		intakeHandler:  intakeHandler,
		adminHandler:   adminHandler,
		serviceHandler: serviceHandler,
	})

	logger.Info(context.Background(), "Nexuserv backend starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
