package cli

import (
	gocontext "context"
	"os"

	"github.com/example/dispatch/internal/config"
	"github.com/example/dispatch/internal/ctxutil"
)

// loadedConfig caches the config for the current invocation.
// A missing config is not an error: commands fall back to the USER role
// so read-only use works before `dispatch init`.
var loadedConfig *config.Config

func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	cwd, err := os.Getwd()
	if err == nil {
		if cfg, err := config.LoadConfig(cwd); err == nil {
			loadedConfig = cfg
			return cfg
		}
	}
	loadedConfig = &config.Config{
		Role:               config.RoleUser,
		FallbackDailyLimit: config.DefaultFallbackDailyLimit,
		RestoreDailyLimit:  config.DefaultRestoreDailyLimit,
	}
	return loadedConfig
}

// NewContext builds the operation context carrying the configured operator
// identity and role. The engine trusts these inputs; resolving who the
// operator actually is belongs to the host's authentication layer.
func NewContext() gocontext.Context {
	cfg := currentConfig()
	return ctxutil.WithActor(gocontext.Background(), cfg.OperatorID, cfg.Role)
}

// actorID returns the configured operator ID.
func actorID() string {
	return currentConfig().OperatorID
}

// actorRole returns the configured operator role.
func actorRole() string {
	return currentConfig().Role
}
