package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/errs"
)

const (
	DefaultHTTPPort          = "8081"
	DefaultOrderTickInterval = 10 * time.Second
	DefaultLogLevel          = "info"
)

type Config struct {
	HTTPPort          string
	OrderTickInterval time.Duration
	LogLevel          string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HTTPPort:          DefaultHTTPPort,
		OrderTickInterval: DefaultOrderTickInterval,
		LogLevel:          DefaultLogLevel,
	}
}

func (c Config) Validate() error {
	return errors.Join(
		c.validateHTTPPort(),
		c.validateOrderTickInterval(),
		c.validateLogLevel(),
	)
}

// SlogLevel parses LogLevel. Accepted values are debug, info, warn and error.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

func (c Config) validateHTTPPort() error {
	if c.HTTPPort == "" {
		return errs.NewValueIsRequiredError("HTTP_PORT")
	}
	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		return errs.NewValueIsInvalidErrorWithCause("HTTP_PORT",
			fmt.Errorf("%q is not a port number", c.HTTPPort))
	}
	return nil
}

func (c Config) validateOrderTickInterval() error {
	if err := jobs.ValidateTickInterval(c.OrderTickInterval); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("ORDER_TICK_INTERVAL", err)
	}
	return nil
}

func (c Config) validateLogLevel() error {
	_, err := c.SlogLevel()
	return err
}
