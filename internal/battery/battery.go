package battery

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/distatus/battery"
)

// Reading is what the screen shows: a percentage when the platform gave us
// one, or the unknown placeholder when it did not.
type Reading struct {
	Percent  int
	Charging bool
	Known    bool
}

func (r Reading) String() string {
	if !r.Known {
		return "--%"
	}

	return fmt.Sprintf("%d%%", r.Percent)
}

type Reader struct {
	logger *slog.Logger
	getAll func() ([]*battery.Battery, error)
}

func NewReader(logger *slog.Logger) *Reader {
	return &Reader{
		logger: logger,
		getAll: battery.GetAll,
	}
}

// Read queries the platform battery API. Every failure mode collapses into
// an unknown reading; the screen shows a placeholder instead of crashing.
func (r *Reader) Read() Reading {
	batteries, err := r.getAll()

	if err != nil {
		r.logger.Warn("battery: could not get battery info", slog.Any("error", err))
		return Reading{}
	}

	if len(batteries) == 0 {
		r.logger.Warn("battery: has no battery")
		return Reading{}
	}

	if len(batteries) > 1 {
		r.logger.Warn(
			"battery: does not support multiple batteries, using first",
			slog.Int("batteries", len(batteries)),
		)
	}

	first := batteries[0]

	if first.Full == 0 {
		r.logger.Warn("battery: reported zero full capacity")
		return Reading{}
	}

	percent := int(math.Round((first.Current / first.Full) * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	// Charging, or plugged in and holding charge.
	state := first.State.String()
	charging := state == "Charging" || state == "Idle" || state == "Full"

	return Reading{
		Percent:  percent,
		Charging: charging,
		Known:    true,
	}
}
