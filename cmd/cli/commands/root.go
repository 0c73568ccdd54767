package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kweitzel/clockface/cmd/cli/config"
	"github.com/kweitzel/clockface/cmd/cli/console"
	"github.com/kweitzel/clockface/internal/setup"
)

func NewCliExecutor(
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) setup.ProgramExecutor {
	return func(ctx context.Context, logger *slog.Logger) error {
		return NewRootCmd(ctx, logger, viper, console, cfg).Execute()
	}
}

func NewRootCmd(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	cfg *config.Cfg,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clockface",
		Short:         "a full-screen terminal clock",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetOut(console.Stdout)
	rootCmd.SetErr(console.Stderr)

	rootCmd.AddCommand(NewStartCmd(ctx, logger, viper, console, cfg))
	rootCmd.AddCommand(NewVoicesCmd(ctx, logger, viper, console, cfg))

	return rootCmd
}
