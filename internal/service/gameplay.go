package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveSource - anything producing the next position for the current participant.
type MoveSource interface {
	NextMove(ctx context.Context, match *entity.Match) (int, error)
}

// Observer - receives match events, e.g. to render the board.
type Observer interface {
	MatchStarted(match *entity.Match)
	MoveApplied(match *entity.Match, participant entity.Participant, position int)
	MoveRejected(match *entity.Match, participant entity.Participant, position int, err error)
	MatchFinished(match *entity.Match)
}

type GamePlayService interface {
	Play(ctx context.Context, match *entity.Match, human MoveSource, observer Observer) (entity.State, error)
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
	}
}

// Play - runs the match until victory or draw.
func (that *gamePlayService) Play(ctx context.Context, match *entity.Match, human MoveSource, observer Observer) (entity.State, error) {
	log := that.logger.With("method", "Play", "matchID", match.ID())

	first, second := match.Participants()
	log.Info("match started", "first", first, "second", second)
	observer.MatchStarted(match)

	for !match.IsOver() {
		if err := ctx.Err(); err != nil {
			return match.State(), fmt.Errorf("match interrupted: %w", err)
		}

		if err := that.makeTurn(ctx, match, human, observer); err != nil {
			return match.State(), err
		}
	}

	winner, ok := match.Winner()
	if ok {
		log.Info("match finished", "state", match.State(), "winner", winner)
	} else {
		log.Info("match finished", "state", match.State())
	}
	observer.MatchFinished(match)

	return match.State(), nil
}

func (that *gamePlayService) makeTurn(ctx context.Context, match *entity.Match, human MoveSource, observer Observer) error {
	log := that.logger.With("method", "makeTurn", "matchID", match.ID())

	participant := match.CurrentPlayer()

	var source MoveSource = human
	if participant.IsBot() {
		source = that.botService
	}

	position, err := source.NextMove(ctx, match)
	if err != nil {
		return fmt.Errorf("failed to get next move for %s: %w", participant, err)
	}

	if _, err = match.ApplyMove(position); err != nil {
		if participant.IsBot() || !isRecoverable(err) {
			return fmt.Errorf("failed to apply move: %w", err)
		}

		log.Debug("move rejected", "participant", participant, "position", position, "error", err)
		observer.MoveRejected(match, participant, position, err)

		return nil
	}

	log.Debug("move applied", "participant", participant, "position", position)
	observer.MoveApplied(match, participant, position)

	return nil
}

func isRecoverable(err error) bool {
	return errors.Is(err, apperror.ErrInvalidPosition) || errors.Is(err, apperror.ErrOccupiedPosition)
}
