// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	mealadapters "diet_backend/internal/feature/meals/adapters"
	"diet_backend/internal/feature/users/domain/entity"
)

const (
	ClientSQLite   = "sqlite"
	ClientPostgres = "postgres"

	defaultSQLitePath = "./db/app.db"
	connectTimeout    = 60 * time.Second
	retryInterval     = 3 * time.Second
)

// Config はデータベース接続設定を保持します。
type Config struct {
	Client        string
	Path          string
	User          string
	Password      string
	Name          string
	Host          string
	Port          string
	SSLMode       string
	RunMigrations bool
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Client:        strings.ToLower(os.Getenv("DATABASE_CLIENT")),
		Path:          os.Getenv("DATABASE_URL"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		SSLMode:       os.Getenv("DB_SSLMODE"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
	if cfg.Client == "" {
		cfg.Client = ClientSQLite
	}
	if cfg.Path == "" {
		cfg.Path = defaultSQLitePath
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg
}

// BuildDSN は設定からDSN文字列を構築します。
// sqliteの場合はファイルパスをそのまま返します。
func BuildDSN(cfg Config) string {
	if cfg.Client == ClientPostgres {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
	}
	return cfg.Path
}

// Opener はDSNからDB接続を開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry はタイムアウトまで一定間隔で接続を再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// NewOpener はクライアント種別に応じたOpenerを返します。
// TranslateErrorを有効にし、一意制約違反をgorm.ErrDuplicatedKeyとして扱えるようにします。
func NewOpener(client string) (Opener, error) {
	gcfg := &gorm.Config{TranslateError: true}
	switch client {
	case ClientPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	case ClientSQLite:
		return func(dsn string) (*gorm.DB, error) {
			if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
				if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
					return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
				}
			}
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_CLIENT %q", client)
	}
}

// OpenDB は接続を確立し、必要に応じてマイグレーションを実行します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	opener, err := NewOpener(cfg.Client)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), connectTimeout, opener)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "client", cfg.Client)

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate はusersとmealsのテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&mealadapters.MealModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
