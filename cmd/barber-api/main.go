package main

import (
	"os"

	"github.com/Goofygiraffe06/barber/api"
	"github.com/Goofygiraffe06/barber/internal/app"
	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/config"
	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/manager"
	"github.com/Goofygiraffe06/barber/store"
)

func main() {
	f, err := logging.InitLogger(config.APILogFile())
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer f.Close()
	defer logging.Sync()

	logging.InfoLog("Starting barber development API")

	// Secure SQLite DB file if it exists
	dbFile := config.DBPath()
	if _, err := os.Stat(dbFile); err == nil {
		if err := os.Chmod(dbFile, 0600); err != nil {
			logging.ErrorLog("Failed to set restrictive permissions on %s: %v", dbFile, err)
		} else {
			logging.DebugLog("Permissions on %s set to 0600", dbFile)
		}
	}

	userStore, err := store.NewSQLiteStore(dbFile)
	if err != nil {
		logging.FatalLog("Failed to connect to DB: %v", err)
	}
	defer userStore.Close()
	logging.InfoLog("Connected to SQLite database: %s", dbFile)

	mgr := manager.NewWorkManager()
	defer mgr.Close()

	signer := auth.NewSessionSigner(config.APITokenSecret(), "barber-api", config.APITokenTTL())

	router := api.NewRouter(userStore, mgr, signer, api.RouterConfig{
		AllowedOrigins: config.CORSAllowedOrigins(),
		MaxBodyBytes:   config.MaxRequestBodyBytes(),
	})

	if err := app.Serve("barber API", app.NewServer(":"+config.APIPort(), router)); err != nil {
		logging.FatalLog("Server failed: %v", err)
	}
}
