package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/officeflow/officeflow-backend-go/internal/config"
	appHTTP "github.com/officeflow/officeflow-backend-go/internal/handler/http"
	"github.com/officeflow/officeflow-backend-go/internal/pkg/database"
	"github.com/officeflow/officeflow-backend-go/internal/pkg/jwt"
	"github.com/officeflow/officeflow-backend-go/internal/pkg/oauth"
	announcementService "github.com/officeflow/officeflow-backend-go/internal/service/announcement"
	assetService "github.com/officeflow/officeflow-backend-go/internal/service/asset"
	authService "github.com/officeflow/officeflow-backend-go/internal/service/auth"
	dashboardService "github.com/officeflow/officeflow-backend-go/internal/service/dashboard"
	employeeService "github.com/officeflow/officeflow-backend-go/internal/service/employee"
	leaveService "github.com/officeflow/officeflow-backend-go/internal/service/leave"
	payrollService "github.com/officeflow/officeflow-backend-go/internal/service/payroll"
	projectService "github.com/officeflow/officeflow-backend-go/internal/service/project"
	teamService "github.com/officeflow/officeflow-backend-go/internal/service/team"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()

	var documentStore store.Store
	switch cfg.Store.Type {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		documentStore, err = postgres.New(ctx, db)
		if err != nil {
			log.Fatal("Error initializing document store: ", err)
		}
	case "memory":
		documentStore = store.NewMemoryStore()
	default:
		log.Fatal("Unsupported store type: ", cfg.Store.Type)
	}

	cache := store.NewCache()
	if err := cache.Run(ctx, documentStore); err != nil {
		log.Fatal("Error subscribing to collections: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	authSvc := authService.NewService(documentStore, cache, jwtService)
	employeeSvc := employeeService.NewService(documentStore, cache)
	projectSvc := projectService.NewService(documentStore, cache)
	teamSvc := teamService.NewService(documentStore, cache)
	leaveSvc := leaveService.NewService(documentStore, cache)
	payrollSvc := payrollService.NewService(cache)
	assetSvc := assetService.NewService(documentStore, cache)
	announcementSvc := announcementService.NewService(documentStore, cache)
	dashboardSvc := dashboardService.NewService(cache)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Nav:          appHTTP.NewNavHandler(),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Project:      appHTTP.NewProjectHandler(projectSvc),
		Team:         appHTTP.NewTeamHandler(teamSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Asset:        appHTTP.NewAssetHandler(assetSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
	}

	router := appHTTP.NewRouter(jwtService, authSvc, handlers, cfg.App.AllowedOrigins, cfg.App.Env)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
