package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SubscriptionExpiryJob sweeps lapsed subscriptions on a schedule. Pricing
// checks expiry on its own at placement time, so the sweep only keeps the
// stored active flags honest for reporting.
type SubscriptionExpiryJob struct {
	handler commands.ExpireSubscriptionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSubscriptionExpiryJob creates a job that expires lapsed subscriptions
// once an hour.
func NewSubscriptionExpiryJob(handler commands.ExpireSubscriptionsCommandHandler, logger *slog.Logger) *SubscriptionExpiryJob {
	return &SubscriptionExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "subscription_expiry_job"),
	}
}

// Start begins the hourly expiry sweep.
func (j *SubscriptionExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireSubscriptionsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Subscription expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Subscription expiry job started (running hourly)")
	return nil
}

// Stop stops the expiry sweep.
func (j *SubscriptionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Subscription expiry job stopped")
}
