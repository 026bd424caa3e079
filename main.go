package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ms-attendance/internal/attendance"
	"ms-attendance/internal/attendance/attendance_api"
	"ms-attendance/internal/config"
	"ms-attendance/internal/humanitix"
	"ms-attendance/internal/logger"
	"ms-attendance/internal/utils"
)

func main() {
	envErr := godotenv.Load()
	cfg := config.Load()

	logger := logger.NewLogger(logger.Options{Dir: cfg.Log.Dir, Level: cfg.Log.Level})
	defer logger.Close()

	logger.Info("APP", "Starting Attendance Service initialization")
	if envErr != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		logger.Info("CONFIG", "Loaded environment variables from .env file")
	}

	for _, key := range cfg.MissingKeys() {
		logger.Warn("CONFIG", fmt.Sprintf("%s not set, dependent routes will fail with 500", key))
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("CONFIG", err.Error())
	}
	logger.Info("CONFIG", fmt.Sprintf("Week windows resolved in %s", loc))

	client := humanitix.NewClient(cfg.Humanitix, &http.Client{Timeout: cfg.Humanitix.Timeout}, logger)
	service := attendance.NewService(client, utils.SystemClock(), loc, logger)
	handler := attendance_api.NewHandler(service, logger)

	logger.Info("HTTP", "Setting up router and middleware")
	router := attendance_api.NewRouter(handler, cfg.Auth.APIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("🚀 Attendance Service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "✅ Attendance Service shutdown complete")
	}
}
