package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// RunApp - runs one match on the terminal.
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

	if _, err := Run(ctx, logger, conf, os.Stdin, os.Stdout); err != nil {
		return err
	}

	return nil
}

// Run - wires the services and plays a match reading from in and writing to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (*entity.Match, error) {
	log := logger.With("component", "app")

	cli := console.New(logger, in, out, conf.Console.Color)
	botService := service.NewBotService(newRand(conf.Bot.Seed))
	gamePlayService := service.NewGamePlayService(logger, botService)
	matchUseCase := usecase.NewMatchUseCase(gamePlayService, conf.WithBot(), conf.Bot.Name)

	match, err := matchUseCase.PlayMatch(ctx, cli)
	if err != nil {
		return match, fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match completed", "matchID", match.ID(), "state", match.State())

	return match, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewSource(int64(seed))) //nolint: gosec // it's ok
}
