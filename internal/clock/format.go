package clock

import (
	"fmt"
	"time"
)

// Format is the hour-format preference for the time readout.
type Format int

const (
	FormatTwentyFour Format = iota
	FormatTwelve
)

func (f Format) String() string {
	if f == FormatTwelve {
		return "12h"
	}
	return "24h"
}

// ParseFormat maps the config spelling to a Format. Defaults to 24-hour.
func ParseFormat(value string) (Format, error) {
	switch value {
	case "", "24h":
		return FormatTwentyFour, nil
	case "12h":
		return FormatTwelve, nil
	default:
		return FormatTwentyFour, fmt.Errorf("clock: unknown hour format %q", value)
	}
}

// State is what one tick produces: both readouts, already formatted.
type State struct {
	Time string
	Date string
}

func FormatTime(t time.Time, format Format) string {
	if format == FormatTwelve {
		return t.Format(Time12)
	}
	return t.Format(Time24)
}

func FormatDate(t time.Time) string {
	return t.Format(Date)
}
