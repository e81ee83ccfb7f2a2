package dashboard

import (
	"context"
	"strconv"

	"github.com/robfig/cron/v3"
)

// ScheduleRefresh reloads the given record type from the loader on a cron
// spec until the context is cancelled. It blocks; run it on its own
// goroutine. Load failures are logged and retried at the next scheduled
// slot, they never stop the schedule.
func (e *Engine) ScheduleRefresh(ctx context.Context, spec string, loader RecordLoader, recordType RecordType) error {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return err
	}

	for {
		next := schedule.Next(e.clock.Now())

		timer := e.clock.NewTimer(next.Sub(e.clock.Now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C():
		}

		count, err := e.LoadInto(ctx, loader, recordType)
		if err != nil {
			// NoReturnErr: Surface the failed load and wait for the next slot.
			e.logger.Error(ctx, err)
			continue
		}

		e.logger.Debug(ctx, "scheduled refresh completed", MKV{
			"record_type": string(recordType),
			"records":     strconv.Itoa(count),
		})
	}
}
