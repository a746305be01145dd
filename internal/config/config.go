// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads pharmactl settings from the environment.
// Only non-secret settings live here; tokens go to the OS keychain.
package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// APIURL is the base URL of the pharmacy-network backend.
	APIURL string `env:"PHARMACTL_API_URL, default=http://localhost:8000"`
	// LogLevel is the minimum level written to the log file.
	LogLevel string `env:"PHARMACTL_LOG_LEVEL, default=info"`
	// HTTPTimeout bounds every backend call.
	HTTPTimeout time.Duration `env:"PHARMACTL_HTTP_TIMEOUT, default=10s"`
	// PageLimit is the default page size for list screens.
	PageLimit int `env:"PHARMACTL_PAGE_LIMIT, default=100"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is honoured first when present; a missing file is not an error.
func Load(ctx context.Context) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
