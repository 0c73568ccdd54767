package battery

import (
	"context"
	"log/slog"
	"time"
)

// Job re-reads the battery on a slow cadence and publishes readings that
// changed since the last poll. The initial reading is published by the
// caller at startup; an interval of zero means the one-shot startup read
// is all there is and Start does nothing.
type Job struct {
	logger   *slog.Logger
	reader   *Reader
	interval time.Duration
	publish  func(Reading)
}

func NewJob(logger *slog.Logger, reader *Reader, interval time.Duration, publish func(Reading)) *Job {
	return &Job{
		logger:   logger,
		reader:   reader,
		interval: interval,
		publish:  publish,
	}
}

func (j *Job) Start(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	last := j.reader.Read()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				j.logger.ErrorContext(ctx, "battery job: recovered from panic", slog.Any("panic", r))
			}
		}()

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current := j.reader.Read()
				if current != last {
					j.publish(current)
				}
				last = current
			}
		}
	}()
}
