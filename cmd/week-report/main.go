// Command week-report prints the current-week attendee summary of each event
// id given on the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ms-attendance/internal/attendance"
	"ms-attendance/internal/config"
	"ms-attendance/internal/format"
	"ms-attendance/internal/humanitix"
	"ms-attendance/internal/logger"
	"ms-attendance/internal/utils"
)

func main() {
	_ = godotenv.Load()
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute returns the process exit code so that every deferred cleanup runs
// before main exits.
func execute(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Usage: week-report <eventId> [eventId...]")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.NewLogger(logger.Options{Level: "warn", Terminal: stderr})
	defer log.Close()

	if err := run(ctx, cfg, log, stdout, args); err != nil {
		log.Error("REPORT", err.Error())
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, out io.Writer, eventIDs []string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	client := humanitix.NewClient(cfg.Humanitix, &http.Client{Timeout: cfg.Humanitix.Timeout}, log)
	service := attendance.NewService(client, utils.SystemClock(), loc, log)

	for i, eventID := range eventIDs {
		summary, err := service.CurrentWeekSummary(ctx, eventID)
		if err != nil {
			if errors.Is(err, humanitix.ErrConfigMissing) {
				return fmt.Errorf("HUMANITIX_API_KEY must be set: %w", err)
			}
			return fmt.Errorf("event %s: %w", eventID, err)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, format.Narrative(summary))
	}
	return nil
}
