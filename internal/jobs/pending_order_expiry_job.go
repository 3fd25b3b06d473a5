package jobs

import (
	"context"
	"time"

	"shoppingcart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// DefaultExpirySchedule runs the expiry every five minutes. Schedules use the
// six-field cron format with seconds.
const DefaultExpirySchedule = "0 */5 * * * *"

type pendingOrderExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

// PendingOrderExpiryJob cancels orders that stayed unpaid longer than the
// configured age.
type PendingOrderExpiryJob struct {
	handler   pendingOrderExpirer
	olderThan time.Duration
	batchSize int
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *log.Entry
}

// NewPendingOrderExpiryJob creates the job. An empty schedule means DefaultExpirySchedule.
func NewPendingOrderExpiryJob(
	handler pendingOrderExpirer,
	olderThan time.Duration,
	batchSize int,
	schedule string,
	logger *log.Entry,
) *PendingOrderExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}
	return &PendingOrderExpiryJob{
		handler:   handler,
		olderThan: olderThan,
		batchSize: batchSize,
		schedule:  schedule,
		timeout:   time.Minute,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.WithField("component", "pending_order_expiry_job"),
	}
}

func (j *PendingOrderExpiryJob) Name() string {
	return "pending order expiry"
}

// Start registers the job with its schedule and starts the scheduler.
func (j *PendingOrderExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		_, _ = j.RunOnce(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("Pending order expiry job started")
	return nil
}

// RunOnce performs a single expiry pass and returns how many orders were cancelled.
func (j *PendingOrderExpiryJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.olderThan, j.batchSize)
	if err != nil {
		j.logger.WithError(err).Error("Pending order expiry job is misconfigured")
		return 0, err
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.WithFields(log.Fields{"expired": expired, "error": err}).Error("Pending order expiry job failed")
	}
	return expired, err
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Pending order expiry job stopped")
}
