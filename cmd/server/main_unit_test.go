package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nexuserv.backend/internal/config"
	plog "nexuserv.backend/pkg/logger"
	"nexuserv.backend/pkg/redis"
)

var testDBCounter int

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origNewSessionStore := newSessionStore
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		newSessionStore = origNewSessionStore
		runServer = origRunServer
	})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "nexuserv",
			SSLMode:  "disable",
		},
		Redis: config.RedisConfig{
			URL:      "redis://localhost:6379",
			Password: "",
		},
		JWT: config.JWTConfig{
			Secret:       "secret",
			AccessExpiry: 24 * time.Hour,
		},
		Blob: config.BlobConfig{
			Region:       "us-east-1",
			Bucket:       "postulaciones",
			SignedURLTTL: 30 * time.Minute,
		},
		Uploads: config.UploadsConfig{
			Dir: "uploads",
		},
		Security: config.SecurityConfig{
			SessionEncryptionKey: "0000000000000000000000000000000000000000000000000000000000000000",
		},
	}
}

func openTestDB(t *testing.T) func(string) (*gorm.DB, error) {
	t.Helper()
	testDBCounter++
	dsn := fmt.Sprintf("file:main_test_%d?mode=memory&cache=shared", testDBCounter)
	return func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	newSessionStore = redis.NewSessionStore
	openDB = func(string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_RedisDownIsNotFatal(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return errors.New("redis down") }
	openDB = openTestDB(t)
	runServer = func(*gin.Engine, string) error { return nil }

	if err := runMainProcess(); err != nil {
		t.Fatalf("redis outage must not abort startup: %v", err)
	}
}

func TestRunMainProcess_SessionStoreError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	newSessionStore = func(string) (*redis.SessionStore, error) { return nil, errors.New("bad session key") }
	openDB = openTestDB(t)

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected session store error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	newSessionStore = redis.NewSessionStore
	openDB = openTestDB(t)
	runServer = func(*gin.Engine, string) error { return errors.New("port busy") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_RegistersAllRoutes(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	newSessionStore = redis.NewSessionStore
	openDB = openTestDB(t)

	var engine *gin.Engine
	runServer = func(r *gin.Engine, port string) error {
		engine = r
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine == nil {
		t.Fatal("server was never started")
	}

	paths := map[string]bool{}
	for _, info := range engine.Routes() {
		paths[info.Method+" "+info.Path] = true
	}
	for _, want := range []string{
		"POST /postulaciones",
		"POST /auth/cliente",
		"PUT /postulantes/aceptar/:id",
		"GET /health",
		"GET /metrics",
	} {
		if !paths[want] {
			t.Fatalf("missing route %s", want)
		}
	}
}
