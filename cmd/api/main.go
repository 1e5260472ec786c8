package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/config"
	appHTTP "github.com/hostwebit342-png/gatemaster-backend-go/internal/handler/http"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/cron"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/database"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/email"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/genai"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/jwt"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/repository/postgresql"
	authService "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/auth"
	dashboardService "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/dashboard"
	gatelogService "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/gatelog"
	settingsService "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/settings"
	staffService "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/staff"
	visitorService "github.com/hostwebit342-png/gatemaster-backend-go/internal/service/visitor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	visitorRepo := postgresql.NewVisitorRepository(db)
	gateLogRepo := postgresql.NewGateLogRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	insightClient := genai.NewClient(cfg.Insight.APIKey, cfg.Insight.Model)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	staffSvc := staffService.NewStaffService(staffRepo, gateLogRepo, settingsRepo)
	visitorSvc := visitorService.NewVisitorService(visitorRepo, gateLogRepo, settingsRepo)
	gateLogSvc := gatelogService.NewGateLogService(gateLogRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(staffRepo, visitorRepo, insightClient)

	if err := authSvc.BootstrapAdmin(context.Background(), cfg.App.BootstrapAdminPassword); err != nil {
		log.Fatal("Failed to bootstrap admin account:", err)
	}

	overdueJobs := cron.NewOverdueJobs(staffRepo, settingsRepo, emailService)
	scheduler := cron.NewScheduler()
	overdueJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(JWTService, authSvc),
		Staff:     appHTTP.NewStaffHandler(staffSvc),
		Visitor:   appHTTP.NewVisitorHandler(visitorSvc),
		GateLog:   appHTTP.NewGateLogHandler(gateLogSvc),
		Settings:  appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(JWTService, handlers, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
