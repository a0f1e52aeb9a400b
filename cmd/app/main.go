package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand(viper.New()).Execute(); err != nil {
		log.Fatalf("Failed to run food delivery service: %v", err)
	}
}

// newRootCommand builds the service command with its flags bound into v.
func newRootCommand(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fooddelivery",
		Short:         "Food ordering backend",
		Long:          "Serves the menu and order API and moves orders through their delivery lifecycle.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := getConfigs(v)
			if err != nil {
				return err
			}
			return run(c.Context(), configs)
		},
	}

	defaults := cmd.DefaultConfig()
	flags := rootCmd.Flags()
	flags.String("http-port", defaults.HTTPPort, "port the HTTP API listens on")
	flags.Duration("order-tick-interval", defaults.OrderTickInterval, "time between order lifecycle steps, in whole seconds")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	_ = v.BindPFlag("HTTP_PORT", flags.Lookup("http-port"))
	_ = v.BindPFlag("ORDER_TICK_INTERVAL", flags.Lookup("order-tick-interval"))
	_ = v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))

	return rootCmd
}

// getConfigs merges flags, the environment and an optional .env file.
// A flag set on the command line wins over the environment.
func getConfigs(v *viper.Viper) (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}
	v.AutomaticEnv()

	configs := cmd.Config{
		HTTPPort:          v.GetString("HTTP_PORT"),
		OrderTickInterval: v.GetDuration("ORDER_TICK_INTERVAL"),
		LogLevel:          v.GetString("LOG_LEVEL"),
	}
	if err := configs.Validate(); err != nil {
		return cmd.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return configs, nil
}

func run(ctx context.Context, configs cmd.Config) error {
	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	app := cmd.NewCompositionRoot(configs, logger)

	e, err := app.CreateHTTPRouter()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()
	logger.Info("Food delivery service started",
		"port", configs.HTTPPort,
		"order_tick_interval", configs.OrderTickInterval.String())

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
