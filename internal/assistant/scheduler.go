package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pathakanu/myAssistant/internal/model"
)

// DefaultSweepSchedule checks for due reminders once a minute.
const DefaultSweepSchedule = "@every 1m"

// StartScheduler registers the due-reminder sweep and starts the cron loop.
func (a *Assistant) StartScheduler(spec string) error {
	if spec == "" {
		spec = DefaultSweepSchedule
	}
	a.cron = cron.New(cron.WithLocation(a.location))
	_, err := a.cron.AddFunc(spec, func() {
		if _, err := a.SweepDue(context.Background()); err != nil {
			a.logger.Printf("scheduler: sweep: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}
	a.cron.Start()
	return nil
}

// StopScheduler stops the cron scheduler gracefully.
func (a *Assistant) StopScheduler() {
	if a.cron == nil {
		return
	}
	ctx := a.cron.Stop()
	<-ctx.Done()
}

// SweepDue notifies every reminder whose ScheduledAt fell after the previous
// sweep and no later than now. Without a Notifier due reminders are only
// logged. Reminders are never modified; a failed notification is logged and
// not retried.
func (a *Assistant) SweepDue(ctx context.Context) (int, error) {
	a.sweepMu.Lock()
	defer a.sweepMu.Unlock()

	now := a.now()
	reminders, err := a.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list reminders: %w", err)
	}

	sent := 0
	for _, r := range reminders {
		if !isDue(r, a.lastSweep, now) {
			continue
		}
		if a.notifier == nil {
			a.logger.Printf("reminder due: %s", a.formatter.ReminderDue(r))
			sent++
			continue
		}
		if err := a.notifier.Notify(ctx, r); err != nil {
			a.metrics.ObserveDispatch(false)
			a.logger.Printf("scheduler: notify reminder %d: %v", r.ID, err)
			continue
		}
		a.metrics.ObserveDispatch(true)
		sent++
	}
	a.lastSweep = now
	return sent, nil
}

func isDue(r model.Reminder, after, until time.Time) bool {
	return r.ScheduledAt.After(after) && !r.ScheduledAt.After(until)
}
