package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kweitzel/clockface/cmd/cli/config"
	"github.com/kweitzel/clockface/cmd/cli/console"
	"github.com/kweitzel/clockface/cmd/cli/runner"
	"github.com/kweitzel/clockface/internal/clockface"
)

func NewVoicesCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "list the text-to-speech voices available for announcements",
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, logger, viper, console, args, cfg, runVoicesCmd())
		},
	}

	voicesCmd.SetOut(console.Stdout)
	voicesCmd.SetErr(console.Stderr)

	return voicesCmd
}

func runVoicesCmd() runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		_ []string,
		di *clockface.Clockface,
	) error {
		voices, err := di.Announcer.Voices(ctx)

		if err != nil {
			return fmt.Errorf("voices: could not list voices. %w", err)
		}

		for _, voice := range voices {
			fmt.Fprintln(console.Stdout, voice)
		}

		return nil
	}
}
