package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// MinTickInterval is the finest resolution the cron scheduler supports.
const MinTickInterval = time.Second

// ValidateTickInterval rejects intervals the scheduler cannot honor exactly:
// anything below MinTickInterval or not a whole number of seconds.
func ValidateTickInterval(interval time.Duration) error {
	if interval < MinTickInterval {
		return fmt.Errorf("%s is below %s", interval, MinTickInterval)
	}
	if interval%time.Second != 0 {
		return fmt.Errorf("%s is not a whole number of seconds", interval)
	}
	return nil
}

// OrderAdvancer runs one lifecycle sweep. *commands.AdvanceOrdersCommandHandler implements it.
type OrderAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrdersCommand) (services.Progress, error)
}

// OrderLifecycleJob moves every order one lifecycle step per tick.
type OrderLifecycleJob struct {
	advancer OrderAdvancer
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderLifecycleJob creates a job that calls advancer every interval.
// A panicking tick is recovered and logged; the next tick runs as usual.
func NewOrderLifecycleJob(advancer OrderAdvancer, interval time.Duration, logger *slog.Logger) *OrderLifecycleJob {
	logger = logger.With("component", "order_lifecycle_job")
	cronLog := cronLogger{logger: logger}

	return &OrderLifecycleJob{
		advancer: advancer,
		interval: interval,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			// Recover sits inside SkipIfStillRunning so a panic still releases the running slot.
			cron.WithChain(cron.SkipIfStillRunning(cronLog), cron.Recover(cronLog)),
		),
		logger: logger,
	}
}

// Start schedules the sweep and starts the scheduler.
func (j *OrderLifecycleJob) Start() error {
	if err := ValidateTickInterval(j.interval); err != nil {
		return err
	}

	j.cron.Schedule(cron.Every(j.interval), cron.FuncJob(j.tick))
	j.cron.Start()

	j.logger.InfoContext(context.Background(), "Order lifecycle job started", "interval", j.interval.String())
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *OrderLifecycleJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order lifecycle job stopped")
}

func (j *OrderLifecycleJob) tick() {
	ctx := context.Background()

	progress, err := j.advancer.Handle(ctx, commands.NewAdvanceOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order lifecycle sweep failed", "error", err)
		return
	}

	for _, failure := range progress.Failures {
		j.logger.ErrorContext(ctx, "Order left untouched",
			"order_id", failure.OrderID.Int64(),
			"status", int(failure.Status),
			"error", failure.Err,
		)
	}

	j.logger.DebugContext(ctx, "Order lifecycle sweep finished",
		"advanced", progress.Advanced,
		"delivered", progress.Terminal,
		"skipped", len(progress.Failures),
	)
}

// cronLogger routes the scheduler's own messages into slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
