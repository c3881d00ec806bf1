package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Set required environment variables
	os.Setenv("DB_PASSWORD", "test_password")
	os.Setenv("JWT_SECRET_KEY", "this_is_a_test_secret_key_with_32_chars_minimum")
	defer func() {
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("JWT_SECRET_KEY")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DBPassword != "test_password" {
		t.Errorf("DBPassword = %q, want %q", cfg.DBPassword, "test_password")
	}

	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost = %q, want default %q", cfg.DBHost, "localhost")
	}

	if cfg.BooksPageSize != 20 {
		t.Errorf("BooksPageSize = %d, want default 20", cfg.BooksPageSize)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "Missing DB password",
			env: map[string]string{
				"JWT_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
			},
		},
		{
			name: "Missing JWT secret",
			env: map[string]string{
				"DB_PASSWORD": "test_password",
			},
		},
		{
			name: "Short JWT secret",
			env: map[string]string{
				"DB_PASSWORD":    "test_password",
				"JWT_SECRET_KEY": "too_short",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("DB_PASSWORD")
			os.Unsetenv("JWT_SECRET_KEY")
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer func() {
				for k := range tt.env {
					os.Unsetenv(k)
				}
			}()

			if _, err := LoadConfig(); err == nil {
				t.Error("LoadConfig() expected error, got nil")
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "dbhost",
		DBPort:     "5433",
		DBUser:     "bine",
		DBPassword: "secret",
		DBName:     "bine_db",
		DBSSLMode:  "disable",
	}

	want := "host=dbhost port=5433 user=bine password=secret dbname=bine_db sslmode=disable"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}

func TestValidateProductionSecurity(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "Development skips checks",
			cfg: Config{
				AppEnv:    "development",
				DBSSLMode: "disable",
				JWTSecret: "whatever",
			},
			wantErr: false,
		},
		{
			name: "Production requires ssl",
			cfg: Config{
				AppEnv:    "production",
				DBSSLMode: "disable",
				JWTSecret: "a_sufficiently_long_production_secret_key",
			},
			wantErr: true,
		},
		{
			name: "Production with default secret",
			cfg: Config{
				AppEnv:    "production",
				DBSSLMode: "require",
				JWTSecret: "your_jwt_secret_minimum_32_chars_here_change_this",
			},
			wantErr: true,
		},
		{
			name: "Hardened production",
			cfg: Config{
				AppEnv:    "production",
				DBSSLMode: "require",
				JWTSecret: "a_sufficiently_long_production_secret_key",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateProductionSecurity()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProductionSecurity() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
