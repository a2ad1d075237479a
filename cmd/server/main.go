package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staff-planner/internal/config"
	"staff-planner/internal/handler"
	"staff-planner/internal/repository"
	"staff-planner/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetServerConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// foreign keys are off by default in SQLite
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	personRepo, err := repository.NewGormPersonRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create person repository")
	}

	projectRepo, err := repository.NewGormProjectRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create project repository")
	}

	holidayRepo, err := repository.NewGormHolidayRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create holiday repository")
	}

	assignmentRepo, err := repository.NewGormAssignmentRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create assignment repository")
	}

	staffingService := service.NewStaffingService(assignmentRepo, personRepo, projectRepo)
	capacityService := service.NewCapacityService(personRepo, projectRepo, assignmentRepo, holidayRepo)
	rosterService := service.NewRosterService(personRepo, projectRepo, holidayRepo, assignmentRepo)

	if cfg.HolidayCalendarFile != "" {
		if err := rosterService.LoadHolidayCalendarFile(cfg.HolidayCalendarFile); err != nil {
			logrus.WithError(err).Fatal("Failed to seed holiday calendar")
		}
	}

	apiServer := handler.NewServer(staffingService, capacityService, rosterService, cfg)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: apiServer,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("Server listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Server failed:", err)
		}
	}()

	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.Infof("Error during shutdown: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
