package speech

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/kweitzel/clockface/internal/command"
	"github.com/kweitzel/clockface/internal/encoding"
)

// Announcer speaks the time readout through the platform text-to-speech
// binary: say on macOS, espeak everywhere else. Announcements are
// fire-and-forget: nothing is awaited and failures are swallowed.
//
// Announce is called on every render, but a rebuild of the screen does not
// re-speak an unchanged readout; only a new time string is spoken.
type Announcer struct {
	logger *slog.Logger
	runner command.Runner
	binary string
	voice  string

	mu   sync.Mutex
	last string
}

func NewAnnouncer(logger *slog.Logger, runner command.Runner, voice string) *Announcer {
	binary := "espeak"
	if runtime.GOOS == "darwin" {
		binary = "say"
	}

	return &Announcer{
		logger: logger,
		runner: runner,
		binary: binary,
		voice:  voice,
	}
}

func (a *Announcer) Announce(ctx context.Context, text string) {
	if text == "" {
		return
	}

	a.mu.Lock()
	if text == a.last {
		a.mu.Unlock()
		return
	}
	a.last = text
	a.mu.Unlock()

	args := []string{}
	if a.voice != "" {
		args = append(args, "-v", a.voice)
	}
	args = append(args, text)

	go func() {
		if _, err := a.runner.Run(ctx, a.binary, args...); err != nil {
			a.logger.DebugContext(ctx, "speech: announce failed", slog.Any("error", err))
		}
	}()
}

// Voices lists the voices the speech binary offers, one name per line of
// its listing output.
func (a *Announcer) Voices(ctx context.Context) ([]string, error) {
	listArgs := []string{"--voices"}
	if a.binary == "say" {
		listArgs = []string{"-v", "?"}
	}

	out, err := a.runner.Run(ctx, a.binary, listArgs...)
	if err != nil {
		return nil, err
	}

	decoded, err := encoding.DecodeSpeechOutput([]byte(out))
	if err != nil {
		return nil, err
	}

	lines := strings.Split(decoded, "\n")
	var voices []string

	if a.binary == "say" {
		// say -v ? pads the name with spaces up to the locale column, and
		// names themselves can contain single spaces.
		for _, line := range lines {
			name := line
			if idx := strings.Index(line, "  "); idx > 0 {
				name = line[:idx]
			}
			if name = strings.TrimSpace(name); name != "" {
				voices = append(voices, name)
			}
		}

		return voices, nil
	}

	// espeak --voices: first line is a column header, language sits in the
	// second column.
	for i, line := range lines {
		if i == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		voices = append(voices, fields[1])
	}

	return voices, nil
}
