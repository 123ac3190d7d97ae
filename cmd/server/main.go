package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"chili/config"
	"chili/database"
	"chili/router"

	// Auth
	authCtrlImp "chili/pkg/auth/controllerImp"

	// Credentials
	credRepoImp "chili/pkg/credential/repositoryImp"

	// Activity log
	actCtrlImp "chili/pkg/activity/controllerImp"
	actRepoImp "chili/pkg/activity/repositoryImp"

	// Planting records
	chiliCtrlImp "chili/pkg/chili/controllerImp"
	chiliRepoImp "chili/pkg/chili/repositoryImp"
	chiliSvcImp "chili/pkg/chili/serviceImp"

	// Dashboard
	statsCtrlImp "chili/pkg/stats/controllerImp"

	// Import/export
	transferCtrlImp "chili/pkg/transfer/controllerImp"

	// Photos
	"chili/pkg/blob"

	// Health
	healthCtrlImp "chili/pkg/health/controllerImp"

	"chili/pkg/middleware"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Photo storage
	photos, err := blob.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// 4) Repos/services
	creds := credRepoImp.New(db)
	actRepo := actRepoImp.New(db)
	chiliRepo := chiliRepoImp.New(db)
	chiliSvc := chiliSvcImp.New(chiliRepo, actRepo)

	// 5) Controllers
	authCtrl := authCtrlImp.NewAuthController(creds)
	chCtrl := chiliCtrlImp.New(chiliSvc, photos)
	actCtrl := actCtrlImp.New(actRepo)
	stCtrl := statsCtrlImp.New(chiliSvc, cfg.OverdueDays)
	trCtrl := transferCtrlImp.New(chiliSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Static("/uploads", photos.Dir())

	// 7) Router
	r := router.New(
		e,
		middleware.Session(creds),
		authCtrl,
		chCtrl,
		actCtrl,
		stCtrl,
		trCtrl,
		hCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
