package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/kweitzel/clockface/cmd/cli/config"
	"github.com/kweitzel/clockface/cmd/cli/console"
	"github.com/kweitzel/clockface/internal/clockface"
)

type RunE = func(
	ctx context.Context,
	console *console.Console,
	args []string,
	di *clockface.Clockface,
) error

func RunCmdE(
	ctx context.Context,
	logger *slog.Logger,
	_ *viper.Viper,
	console *console.Console,
	args []string,
	cfg *config.Cfg,
	runE RunE,
) error {
	di, err := clockface.New(ctx, logger, cfg)

	if err != nil {
		return fmt.Errorf("runner: could not build dependencies. %w", err)
	}

	return runE(ctx, console, args, di)
}
