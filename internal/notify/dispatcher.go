package notify

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// maxDeliveryAttempts caps how often a failed send is retried on later ticks.
const maxDeliveryAttempts = 3

// Dispatcher accepts deferred result deliveries. Scheduling never blocks the
// calling request and never fails it; delivery happens outside the request
// path, at-least-once, best effort.
type Dispatcher interface {
	Schedule(job ResultJob) error
}

// CronDispatcher holds scheduled jobs in memory and drains the due ones on a
// one-minute cron tick.
type CronDispatcher struct {
	sender Sender
	cron   *cron.Cron

	mu    sync.Mutex
	queue []ResultJob
}

func NewCronDispatcher(sender Sender) *CronDispatcher {
	return &CronDispatcher{
		sender: sender,
		cron:   cron.New(),
	}
}

// Start registers the drain tick and launches the cron runner. Owned by the
// composition root; call Stop at shutdown.
func (d *CronDispatcher) Start() error {
	if _, err := d.cron.AddFunc("@every 1m", d.flushDue); err != nil {
		return err
	}
	d.cron.Start()
	log.Info().Msg("Notification dispatcher started")
	return nil
}

// Stop halts the tick loop and waits for an in-flight drain to finish.
func (d *CronDispatcher) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Notification dispatcher stopped")
}

func (d *CronDispatcher) Schedule(job ResultJob) error {
	d.mu.Lock()
	d.queue = append(d.queue, job)
	pending := len(d.queue)
	d.mu.Unlock()

	log.Info().
		Str("job_id", job.ID).
		Str("recipient", job.Recipient).
		Time("not_before", job.NotBefore).
		Int("pending", pending).
		Msg("Result email scheduled")
	return nil
}

// flushDue sends every job whose NotBefore has passed. Failed jobs are
// requeued until maxDeliveryAttempts is reached.
func (d *CronDispatcher) flushDue() {
	now := time.Now()

	d.mu.Lock()
	var due, pending []ResultJob
	for _, job := range d.queue {
		if job.NotBefore.After(now) {
			pending = append(pending, job)
		} else {
			due = append(due, job)
		}
	}
	d.queue = pending
	d.mu.Unlock()

	for _, job := range due {
		if err := d.sender.Send(job); err != nil {
			job.Attempts++
			if job.Attempts < maxDeliveryAttempts {
				log.Warn().Err(err).Str("job_id", job.ID).Int("attempts", job.Attempts).Msg("Result email delivery failed, will retry")
				d.mu.Lock()
				d.queue = append(d.queue, job)
				d.mu.Unlock()
			} else {
				log.Error().Err(err).Str("job_id", job.ID).Msg("Result email delivery abandoned after max attempts")
			}
			continue
		}
		log.Info().Str("job_id", job.ID).Str("recipient", job.Recipient).Msg("Result email sent")
	}
}
