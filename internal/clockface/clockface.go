package clockface

import (
	"context"
	"log/slog"

	"github.com/kweitzel/clockface/cmd/cli/config"
	"github.com/kweitzel/clockface/internal/battery"
	"github.com/kweitzel/clockface/internal/clock"
	"github.com/kweitzel/clockface/internal/command"
	"github.com/kweitzel/clockface/internal/prefs"
	"github.com/kweitzel/clockface/internal/speech"
)

// Clockface wires the screen's collaborators together once, at startup.
type Clockface struct {
	Logger    *slog.Logger
	Cfg       *config.Cfg
	Clock     clock.Clock
	Prefs     *prefs.Store
	Battery   *battery.Reader
	Command   *command.Command
	Announcer *speech.Announcer
}

func New(
	_ context.Context,
	logger *slog.Logger,
	cfg *config.Cfg,
) (*Clockface, error) {
	cmd := command.NewCommand(logger)

	return &Clockface{
		Logger:    logger,
		Cfg:       cfg,
		Clock:     clock.NewSystemClock(),
		Prefs:     prefs.New(cfg.DarkMode, cfg.HourFormat),
		Battery:   battery.NewReader(logger),
		Command:   cmd,
		Announcer: speech.NewAnnouncer(logger, cmd, cfg.Voice),
	}, nil
}
