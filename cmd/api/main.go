package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/asistia/homecare-backend-go/internal/config"
	"github.com/asistia/homecare-backend-go/internal/domain/route"
	appHTTP "github.com/asistia/homecare-backend-go/internal/handler/http"
	"github.com/asistia/homecare-backend-go/internal/pkg/cron"
	"github.com/asistia/homecare-backend-go/internal/pkg/database"
	"github.com/asistia/homecare-backend-go/internal/pkg/maps"
	"github.com/asistia/homecare-backend-go/internal/pkg/session"
	"github.com/asistia/homecare-backend-go/internal/pkg/sse"
	"github.com/asistia/homecare-backend-go/internal/repository/postgresql"
	assignmentService "github.com/asistia/homecare-backend-go/internal/service/assignment"
	holidayService "github.com/asistia/homecare-backend-go/internal/service/holiday"
	hoursService "github.com/asistia/homecare-backend-go/internal/service/hours"
	notificationService "github.com/asistia/homecare-backend-go/internal/service/notification"
	routeService "github.com/asistia/homecare-backend-go/internal/service/route"
	serviceUserService "github.com/asistia/homecare-backend-go/internal/service/serviceuser"
	workerService "github.com/asistia/homecare-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	workerRepo := postgresql.NewWorkerRepository(db)
	serviceUserRepo := postgresql.NewServiceUserRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	verifier := session.NewVerifier(cfg.Session.Secret, cfg.Session.AcceptableSkew)
	hub := sse.NewHub()

	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notificationSvc.Stop()

	hoursSvc := hoursService.NewHoursService(holidayRepo)

	var provider route.DirectionsProvider
	if cfg.Maps.APIKey != "" {
		provider, err = maps.NewClient(cfg.Maps.APIKey, cfg.Maps.BaseURL)
		if err != nil {
			fmt.Println("Error initializing maps client:", err)
			return
		}
	} else {
		slog.Warn("MAPS_API_KEY not set, external route estimation disabled")
	}

	routeSvc := routeService.NewRouteService(provider, routeService.Config{
		DefaultCity: cfg.Maps.DefaultCity,
		Country:     cfg.Maps.Country,
	})

	workerSvc := workerService.NewWorkerService(workerRepo)
	serviceUserSvc := serviceUserService.NewServiceUserService(serviceUserRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, workerRepo, notificationSvc)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, workerRepo, serviceUserRepo, hoursSvc, notificationSvc)

	scheduler := cron.NewScheduler()
	cron.NewHoursVarianceJobs(assignmentRepo, hoursSvc, notificationSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, verifier, appHTTP.Handlers{
		Worker:       appHTTP.NewWorkerHandler(workerSvc),
		ServiceUser:  appHTTP.NewServiceUserHandler(serviceUserSvc),
		Assignment:   appHTTP.NewAssignmentHandler(assignmentSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Route:        appHTTP.NewRouteHandler(routeSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, verifier),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		slog.Info("server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := server.Close(); err != nil {
		slog.Error("server close error", "error", err)
	}
}
