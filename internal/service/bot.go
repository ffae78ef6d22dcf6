package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	NextMove(ctx context.Context, match *entity.Match) (int, error)
}

type botService struct {
	rng *rand.Rand
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{
		rng: rng,
	}
}

func (that *botService) NextMove(_ context.Context, match *entity.Match) (int, error) {
	available := match.Board().AvailablePositions()
	if len(available) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return RandomMove(available, that.rng), nil
}

// RandomMove - picks one of the available positions with uniform probability.
// Panics on an empty slice.
func RandomMove(available []int, rng *rand.Rand) int {
	if len(available) == 0 {
		panic("no available positions, board is full")
	}

	return available[rng.Intn(len(available))] //nolint: gosec // it's ok
}
