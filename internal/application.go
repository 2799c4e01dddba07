package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectn-backend/internal/builder"
	"github.com/rocketscienceinc/connectn-backend/internal/config"
	"github.com/rocketscienceinc/connectn-backend/internal/connectn"
	"github.com/rocketscienceinc/connectn-backend/internal/console"
	"github.com/rocketscienceinc/connectn-backend/internal/entity"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	game, err := newGame(conf.Game)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	controller := connectn.NewGameController(logger, game)
	runner := console.NewRunner(logger, controller, out)

	log.Info("Starting game",
		"match_id", controller.ID(),
		"rows", game.Rows(),
		"columns", game.Columns(),
		"win_length", game.WinLength(),
		"scripted", conf.Game.IsScripted(),
	)

	if conf.Game.IsScripted() {
		moves, err := console.ParseMoves(conf.Game.Moves)
		if err != nil {
			return fmt.Errorf("could not parse scripted moves: %w", err)
		}

		if err = runner.Play(moves); err != nil {
			return fmt.Errorf("scripted game failed: %w", err)
		}
	} else if err = runner.Run(ctx, in); err != nil {
		return fmt.Errorf("console failed: %w", err)
	}

	state := controller.Snapshot()
	log.Info("Game ended", "match_id", state.ID, "status", state.Status.String(), "moves", state.MoveCount)

	return nil
}

func newGame(conf config.Game) (*entity.Game, error) {
	if conf.Preset == "" {
		return builder.New().BoardSize(conf.Rows, conf.Columns).WinLength(conf.WinLength).Build()
	}

	b, err := builder.FromPreset(conf.Preset)
	if err != nil {
		return nil, fmt.Errorf("%w, expected one of %v", err, builder.Presets())
	}

	return b.Build()
}
