package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/kweitzel/clockface/cmd/cli/config"
	"github.com/kweitzel/clockface/cmd/cli/config/settings"
	"github.com/kweitzel/clockface/cmd/cli/console"
	"github.com/kweitzel/clockface/cmd/cli/runner"
	"github.com/kweitzel/clockface/internal/battery"
	"github.com/kweitzel/clockface/internal/clock"
	"github.com/kweitzel/clockface/internal/clockface"
	"github.com/kweitzel/clockface/internal/setup"
	"github.com/kweitzel/clockface/internal/ui"
)

func NewStartCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "start the clock screen",
		RunE: func(_ *cobra.Command, args []string) error {
			cfg.Announce = viper.GetBool("announce")
			if voice := viper.GetString("voice"); voice != "" {
				cfg.Voice = voice
			}

			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runStartCmd())
		},
	}

	startCmd.Flags().Bool("announce", cfg.Announce, "speak the time aloud")
	startCmd.Flags().String("voice", cfg.Voice, "text-to-speech voice")
	_ = viper.BindPFlag("announce", startCmd.Flags().Lookup("announce"))
	_ = viper.BindPFlag("voice", startCmd.Flags().Lookup("voice"))

	startCmd.SetOut(console.Stdout)
	startCmd.SetErr(console.Stderr)

	return startCmd
}

func runStartCmd() runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		_ []string,
		di *clockface.Clockface,
	) error {
		if err := runner.CreatePidFile(settings.PidFilePath); err != nil {
			di.Logger.ErrorContext(ctx, "start: could not create pid file, continuing anyway", slog.Any("error", err))
		}

		defer func() {
			if err := runner.RemovePidFile(settings.PidFilePath); err != nil {
				di.Logger.ErrorContext(ctx, "start: could not remove pid file", slog.Any("error", err))
			}
		}()

		// The alt screen owns the terminal from here on, so logs go to a
		// file instead of stderr.
		if logFile, err := os.OpenFile(settings.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer logFile.Close()
			di.Logger = setup.NewLogger(logFile, setup.ParseLevel(di.Cfg.LogLevel))
		} else {
			di.Logger.ErrorContext(ctx, "start: could not open log file, logging to stderr", slog.Any("error", err))
		}

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		var announcer = di.Announcer
		if !di.Cfg.Announce {
			announcer = nil
		}

		di.Logger.InfoContext(ctx, "start: reading battery")
		initial := di.Battery.Read()

		program := tea.NewProgram(
			ui.NewModel(runCtx, di.Prefs, announcer, initial),
			tea.WithAltScreen(),
			tea.WithOutput(console.Stdout),
			tea.WithContext(runCtx),
		)

		di.Prefs.Subscribe(func() {
			di.Logger.DebugContext(runCtx, "start: preference changed",
				slog.Bool("dark_mode", di.Prefs.DarkMode()),
				slog.String("hour_format", di.Prefs.HourFormat().String()))
		})

		engine := clock.NewEngine(
			di.Logger,
			di.Clock,
			time.Second,
			di.Prefs.HourFormat,
			func(state clock.State) {
				program.Send(ui.TickMsg(state))
			},
		)

		job := battery.NewJob(
			di.Logger,
			di.Battery,
			di.Cfg.BatteryRefresh,
			func(reading battery.Reading) {
				program.Send(ui.BatteryMsg(reading))
			},
		)

		g, _ := errgroup.WithContext(runCtx)
		g.Go(func() error {
			defer cancel()

			_, err := program.Run()
			return err
		})

		// Send blocks until the program's event loop is receiving, so the
		// engine's synchronous first tick has to come after Run is underway.
		di.Logger.InfoContext(ctx, "start: starting engine")
		engine.Start(runCtx)
		defer engine.Stop()

		job.Start(runCtx)

		if err := g.Wait(); err != nil {
			di.Logger.ErrorContext(ctx, "start: screen exited with error", slog.Any("error", err))
			return err
		}

		engine.Stop()
		di.Logger.InfoContext(ctx, "start: shutdown complete")

		return nil
	}
}
