package main

import (
	"fmt"
	"log"

	noopalert "hungerguard/internal/alert/noop"
	sesalert "hungerguard/internal/alert/ses"
	"hungerguard/internal/config"
	"hungerguard/internal/dataset"
	"hungerguard/internal/handler"
	"hungerguard/internal/planner"
	"hungerguard/internal/planner/gemini"
	"hungerguard/internal/port"
	nooprecorder "hungerguard/internal/recorder/noop"
	sqliterecorder "hungerguard/internal/recorder/sqlite"
	"hungerguard/internal/router"
	"hungerguard/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Register planner providers
	planner.RegisterProvider("pattern", func(_ *config.PlannerConfig) (port.Planner, error) {
		return planner.NewPatternPlanner(), nil
	})
	planner.RegisterProvider("gemini", func(pc *config.PlannerConfig) (port.Planner, error) {
		return gemini.NewPlanner(pc), nil
	})

	p, err := planner.NewPlanner(&cfg.Planner)
	if err != nil {
		return fmt.Errorf("failed to initialize planner: %w", err)
	}

	// Initialize plan record store
	var recorder port.PlanRecorder
	switch cfg.Recorder.Driver {
	case "sqlite":
		sqlRec, err := sqliterecorder.NewRecorder(cfg.Recorder.Path)
		if err != nil {
			return fmt.Errorf("failed to open plan store: %w", err)
		}
		defer sqlRec.Close()
		recorder = sqlRec
	case "noop":
		recorder = nooprecorder.NewRecorder()
	default:
		return fmt.Errorf("unknown recorder driver: %s", cfg.Recorder.Driver)
	}

	// Initialize alert delivery
	var alerts port.AlertSender
	switch cfg.Alert.Provider {
	case "ses":
		alerts, err = sesalert.NewSESSender(cfg.Alert.Region, cfg.Alert.FromAddress)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	case "noop":
		alerts = noopalert.NewSender()
	default:
		return fmt.Errorf("unknown alert provider: %s", cfg.Alert.Provider)
	}

	// Initialize datasets and services
	datasets := dataset.NewMemoryProvider()
	planSvc := service.NewPlanService(p, recorder, alerts, cfg.Alert.ToAddress)
	defer planSvc.Drain()
	dashboardSvc := service.NewDashboardService(datasets)

	// Initialize handlers
	planH := handler.NewPlanHandler(planSvc)
	dashboardH := handler.NewDashboardHandler(datasets, dashboardSvc)
	exportH := handler.NewExportHandler(datasets)
	healthH := handler.NewHealthHandler(recorder)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, planH, dashboardH, exportH, healthH)

	log.Printf("Server starting on %s (planner=%s)", cfg.Server.Port, cfg.Planner.Provider)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
