package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Role constants
const (
	RoleAdmin = "ADMIN" // Operations controller: decides approvals, manages capacity and resources
	RoleUser  = "USER"  // Requester: creates job requests that queue for approval
)

// Capacity policy defaults. FallbackDailyLimit applies when a date has no
// stored ceiling; RestoreDailyLimit is written back when a holiday is
// unmarked. The two values are intentionally distinct; see DESIGN.md.
const (
	DefaultFallbackDailyLimit = 5
	DefaultRestoreDailyLimit  = 10
)

// Config represents the flat dispatch configuration
type Config struct {
	Version            string `json:"version"`
	Role               string `json:"role"`                           // "ADMIN" or "USER"
	OperatorID         string `json:"operator_id,omitempty"`          // e.g. ADM-001, USR-001
	FallbackDailyLimit int    `json:"fallback_daily_limit,omitempty"` // per-date ceiling fallback
	RestoreDailyLimit  int    `json:"restore_daily_limit,omitempty"`  // ceiling restored after a holiday is unmarked
}

// LoadConfig reads .dispatch/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".dispatch", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.FallbackDailyLimit == 0 {
		cfg.FallbackDailyLimit = DefaultFallbackDailyLimit
	}
	if cfg.RestoreDailyLimit == 0 {
		cfg.RestoreDailyLimit = DefaultRestoreDailyLimit
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	dispatchDir := filepath.Join(dir, ".dispatch")
	if err := os.MkdirAll(dispatchDir, 0755); err != nil {
		return fmt.Errorf("failed to create .dispatch dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dispatchDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// IsAdminRole returns true if the role carries administrative privileges.
func IsAdminRole(role string) bool {
	return role == RoleAdmin
}
