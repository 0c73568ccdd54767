package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		format  Format
		want    string
	}{
		{
			name:    "afternoon 24h",
			instant: time.Date(2024, time.March, 7, 13, 5, 9, 0, time.UTC),
			format:  FormatTwentyFour,
			want:    "13:05:09",
		},
		{
			name:    "afternoon 12h",
			instant: time.Date(2024, time.March, 7, 13, 5, 9, 0, time.UTC),
			format:  FormatTwelve,
			want:    "01:05:09 PM",
		},
		{
			name:    "midnight 24h",
			instant: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			format:  FormatTwentyFour,
			want:    "00:00:00",
		},
		{
			name:    "midnight 12h",
			instant: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			format:  FormatTwelve,
			want:    "12:00:00 AM",
		},
		{
			name:    "noon 12h",
			instant: time.Date(2024, time.June, 30, 12, 0, 1, 0, time.UTC),
			format:  FormatTwelve,
			want:    "12:00:01 PM",
		},
		{
			name:    "morning keeps leading zero in 12h",
			instant: time.Date(2024, time.June, 30, 9, 8, 7, 0, time.UTC),
			format:  FormatTwelve,
			want:    "09:08:07 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.instant, tt.format))
		})
	}
}

func TestFormatDate(t *testing.T) {
	instant := time.Date(2024, time.March, 7, 13, 5, 9, 0, time.UTC)

	assert.Equal(t, "Thursday, 07 March 2024", FormatDate(instant))
}

func TestFormatDatePadsDay(t *testing.T) {
	instant := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Monday, 01 December 2025", FormatDate(instant))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    Format
		wantErr bool
	}{
		{value: "", want: FormatTwentyFour},
		{value: "24h", want: FormatTwentyFour},
		{value: "12h", want: FormatTwelve},
		{value: "am/pm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseFormat(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "24h", FormatTwentyFour.String())
	assert.Equal(t, "12h", FormatTwelve.String())
}
