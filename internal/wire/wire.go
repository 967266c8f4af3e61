// Package wire provides dependency injection for the dispatch application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/example/dispatch/internal/adapters/sqlite"
	"github.com/example/dispatch/internal/app"
	"github.com/example/dispatch/internal/config"
	"github.com/example/dispatch/internal/core/capacity"
	"github.com/example/dispatch/internal/db"
	"github.com/example/dispatch/internal/ports/primary"
)

var (
	jobService      primary.JobService
	capacityService primary.CapacityService
	resourceService primary.ResourceService
	once            sync.Once
)

// JobService returns the singleton JobService instance.
func JobService() primary.JobService {
	once.Do(initServices)
	return jobService
}

// CapacityService returns the singleton CapacityService instance.
func CapacityService() primary.CapacityService {
	once.Do(initServices)
	return capacityService
}

// ResourceService returns the singleton ResourceService instance.
func ResourceService() primary.ResourceService {
	once.Do(initServices)
	return resourceService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	defaults := capacity.StandardDefaults()
	if cwd, err := os.Getwd(); err == nil {
		if cfg, err := config.LoadConfig(cwd); err == nil {
			defaults = capacity.Defaults{
				FallbackLimit: cfg.FallbackDailyLimit,
				RestoreLimit:  cfg.RestoreDailyLimit,
			}
		}
	}

	// Repository adapters (secondary ports) - sqlite adapters with injected DB
	jobRepo := sqlite.NewJobRepository(database)
	settingsRepo := sqlite.NewSettingsRepository(database)
	personnelRepo := sqlite.NewPersonnelRepository(database)
	vehicleRepo := sqlite.NewVehicleRepository(database)

	// Services (primary ports implementation)
	jobService = app.NewJobService(jobRepo, settingsRepo, defaults)
	capacityService = app.NewCapacityService(settingsRepo, jobRepo, defaults)
	resourceService = app.NewResourceService(personnelRepo, vehicleRepo)
}
