package testutil

import (
	"time"

	"github.com/clubops/checkin-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// TestAdminPassword is the plaintext matching the bcrypt hash in NewTestConfig.
const TestAdminPassword = "test-password"

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	// MinCost keeps the hash cheap; these credentials never leave the test
	// process.
	hash, err := bcrypt.GenerateFromPassword([]byte(TestAdminPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	return &config.Config{
		App: config.AppConfig{
			Name: "club-checkin-api-test",
			Env:  "test",
			Port: 8080,
		},
		Store: config.StoreConfig{
			Backend: config.BackendGorm,
		},
		Database: config.DatabaseConfig{
			Engine:          config.EngineSQLite,
			Path:            ":memory:",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		Admin: config.AdminConfig{
			Username:     "admin",
			PasswordHash: string(hash),
		},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        24 * time.Hour,
			RefreshExpiry: 168 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
	}
}
