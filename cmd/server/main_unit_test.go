package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rewear.backend/internal/config"
	domainrepos "rewear.backend/internal/domain/repositories"
	"rewear.backend/internal/infrastructure/storage"
	plog "rewear.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origCheckDB := checkDB
	origNewAssetStore := newAssetStore
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		checkDB = origCheckDB
		newAssetStore = origNewAssetStore
		runServer = origRunServer
	})

	loadDotenv = func(...string) error { return nil }
	initLog = plog.Init
	checkDB = func(config.DatabaseConfig) error { return nil }
}

func baseTestConfig(t *testing.T) func() *config.Config {
	dir := t.TempDir()
	return func() *config.Config {
		return &config.Config{
			Server: config.ServerConfig{
				Port:        "18080",
				Env:         "development",
				FrontendURL: "http://localhost:3000",
			},
			Database: config.DatabaseConfig{
				Driver:     "sqlite",
				SQLitePath: filepath.Join(dir, "server.db"),
			},
			Redis: config.RedisConfig{
				URL: "redis://localhost:6379",
			},
			JWT: config.JWTConfig{
				Secret:        "secret",
				AccessExpiry:  15 * time.Minute,
				RefreshExpiry: 24 * time.Hour,
			},
			Storage: config.StorageConfig{
				Driver:    "local",
				LocalPath: filepath.Join(dir, "public"),
				PublicURL: "http://localhost:18080/storage",
			},
			Upload: config.UploadConfig{MaxBytes: 1 << 20},
		}
	}
}

func sqliteOpener(name string) func(config.DatabaseConfig) (*gorm.DB, error) {
	return func(config.DatabaseConfig) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	}
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig(t)
	initRedis = func(string, string) error { return errors.New("redis down") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected redis init error")
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig(t)
	initRedis = func(string, string) error { return nil }
	openDB = func(config.DatabaseConfig) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_AssetStoreError(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig(t)
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_asset_err")
	newAssetStore = func(context.Context, config.StorageConfig) (domainrepos.AssetStore, error) {
		return nil, errors.New("bucket missing")
	}

	if err := runMainProcess(); err == nil {
		t.Fatal("expected asset store error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig(t)
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_server_err")
	newAssetStore = storage.New
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_DatabaseUnavailableStillBoots(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig(t)
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_db_down")
	checkDB = func(config.DatabaseConfig) error { return errors.New("connection refused") }
	newAssetStore = storage.New
	runServer = func(*gin.Engine, string) error { return nil }

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)

	loadCfg = baseTestConfig(t)
	initRedis = func(string, string) error { return nil }
	openDB = sqliteOpener("main_success")
	newAssetStore = storage.New

	var routes gin.RoutesInfo
	runServer = func(r *gin.Engine, port string) error {
		if port != "18080" {
			t.Errorf("unexpected port %q", port)
		}
		routes = r.Routes()
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) == 0 {
		t.Fatal("expected routes to be registered")
	}
}
