package app

import (
	"fmt"
	"os"

	"github.com/cherryclub/campus-api/api"
	"github.com/cherryclub/campus-api/config"
	"github.com/cherryclub/campus-api/database"
	"github.com/cherryclub/campus-api/router"
	"github.com/cherryclub/campus-api/services/cron"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	// Background jobs (stat snapshots, log cleanup), unless disabled
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" {
		cronManager = cron.NewCronManager(store.DB())
		if err := cronManager.Start(); err != nil {
			print("Warning: Failed to start cron jobs\n")
			print("Error: ", err.Error(), "\n")
			// Don't fail the app, just log the warning
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (also attaches logging/recovery/security middleware)
	if err := router.SetupRoutes(app, store, getEnv); err != nil {
		return err
	}

	return server.Run()
}
