package clock

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Engine drives the display: one synchronous tick on Start so the first
// frame is never blank, then one tick per interval until Stop or context
// cancellation. The hour format is re-read on every tick, so a toggle is
// picked up on the very next tick without restarting the engine.
type Engine struct {
	logger   *slog.Logger
	clock    Clock
	interval time.Duration
	format   func() Format
	publish  func(State)

	mu      sync.Mutex
	done    chan struct{}
	stopped bool
}

func NewEngine(
	logger *slog.Logger,
	clock Clock,
	interval time.Duration,
	format func() Format,
	publish func(State),
) *Engine {
	return &Engine{
		logger:   logger,
		clock:    clock,
		interval: interval,
		format:   format,
		publish:  publish,
		done:     make(chan struct{}),
	}
}

func (e *Engine) Start(ctx context.Context) {
	e.tick()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.ErrorContext(ctx, "engine: recovered from panic in tick loop", slog.Any("panic", r))
			}
		}()

		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-e.done:
				return
			case <-ticker.C:
				select {
				case <-e.done:
					return
				default:
				}
				e.tick()
			}
		}
	}()
}

func (e *Engine) tick() {
	now := e.clock.Now()
	e.publish(State{
		Time: FormatTime(now, e.format()),
		Date: FormatDate(now),
	})
}

// Stop cancels the periodic trigger. Safe to call more than once; after it
// returns no further states are published by the tick loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return
	}

	e.stopped = true
	close(e.done)
}
