package suite

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxWaitDuration = 10 * time.Second

var ErrScriptExhausted = errors.New("scripted moves exhausted")

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - returns a context bounded by maxWaitDuration and a test logger.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// ScriptedMoves - a move source replaying fixed positions in order.
type ScriptedMoves struct {
	Positions []int
	Calls     int
}

func (that *ScriptedMoves) NextMove(_ context.Context, _ *entity.Match) (int, error) {
	if that.Calls >= len(that.Positions) {
		return 0, ErrScriptExhausted
	}

	position := that.Positions[that.Calls]
	that.Calls++

	return position, nil
}
