package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `envconfig:"APP_ENV" default:"development"`
		Port        string `envconfig:"PORT" default:"8000"`
		FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	}
	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     string `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:"password"`
		Name     string `envconfig:"DB_NAME" default:"gambo_db"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}
	JWT struct {
		Secret      string `envconfig:"JWT_SECRET" default:"supersecret"`
		ExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`
	}
	Booking struct {
		OpenHour   int     `envconfig:"BOOKING_OPEN_HOUR" default:"8"`
		CloseHour  int     `envconfig:"BOOKING_CLOSE_HOUR" default:"20"`
		SlotHours  int     `envconfig:"BOOKING_SLOT_HOURS" default:"2"`
		SlotPrice  float64 `envconfig:"BOOKING_SLOT_PRICE" default:"50"`
		WindowDays int     `envconfig:"BOOKING_WINDOW_DAYS" default:"7"`
	}
}

// Global DB instance, set by ConnectDB via Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads .env (if present) and parses the environment into Config.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables.")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.JWT.Secret == "supersecret" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default JWT secret in production. Set JWT_SECRET.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB opens the Postgres connection and sets the global DB handle.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey so controllers can answer 409.
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Println("Successfully connected to database")
	return gormDB, nil
}

// Initialize loads configuration and connects to the database, once.
func Initialize() error {
	var initErr error
	once.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			initErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		if _, err := ConnectDB(cfg); err != nil {
			initErr = err
		}
	})
	return initErr
}

// GetConfig returns the loaded configuration. Initialize must run first.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}
