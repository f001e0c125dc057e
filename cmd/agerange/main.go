// Package main provides a CLI for exercising the age range service locally.
// Without a registered platform prompter every request is served by the
// mock provider, so scenarios and profiles drive the output.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"agerange/internal/agerange/metrics"
	"agerange/internal/agerange/providers"
)

// Exit codes for failed requests, one per error kind.
const (
	exitFailure        = 1
	exitNotAvailable   = 2
	exitInvalidRequest = 3
	exitUnknown        = 4
	exitCancelled      = 5
)

// Metrics register once per process against the default registry.
var cliMetrics = sync.OnceValue(func() *metrics.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
})

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "agerange: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "agerange",
		Short: "request declared age ranges from the configured provider",
		Long: `Requests a person's declared age range through the age range service.

Configuration comes from AGERANGE_* environment variables, optionally loaded
from a .env file, and is overridden by command flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading AGERANGE_* variables")

	root.AddCommand(newRequestCmd(), newScenariosCmd(), newSettingsCmd())
	return root
}

// loadEnvFile loads path if it exists. Variables already set in the
// environment win over the file.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func exitCode(err error) int {
	if kind, ok := providers.KindOf(err); ok {
		switch kind {
		case providers.KindNotAvailable:
			return exitNotAvailable
		case providers.KindInvalidRequest:
			return exitInvalidRequest
		default:
			return exitUnknown
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return exitCancelled
	}
	return exitFailure
}
