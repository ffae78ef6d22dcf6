package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

type MatchUseCase interface {
	PlayMatch(ctx context.Context, front frontEnd) (*entity.Match, error)
}

// frontEnd - the terminal side of a match: participants, human moves and rendering.
type frontEnd interface {
	service.MoveSource
	service.Observer

	AskParticipants(ctx context.Context, withBot bool, botName string) (entity.Participant, entity.Participant, error)
}

type gamePlayService interface {
	Play(ctx context.Context, match *entity.Match, human service.MoveSource, observer service.Observer) (entity.State, error)
}

type matchUseCase struct {
	gamePlayService gamePlayService

	withBot bool
	botName string
}

func NewMatchUseCase(gamePlayService gamePlayService, withBot bool, botName string) MatchUseCase {
	return &matchUseCase{
		gamePlayService: gamePlayService,
		withBot:         withBot,
		botName:         botName,
	}
}

// PlayMatch - asks for the participants, creates the match and plays it to the end.
func (that *matchUseCase) PlayMatch(ctx context.Context, front frontEnd) (*entity.Match, error) {
	first, second, err := front.AskParticipants(ctx, that.withBot, that.botName)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	match, err := entity.NewMatch(first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	if _, err = that.gamePlayService.Play(ctx, match, front, front); err != nil {
		return match, fmt.Errorf("failed to play match: %w", err)
	}

	return match, nil
}
