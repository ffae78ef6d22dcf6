package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// State - the match state machine.
type State string

const (
	StateInProgress State = "in_progress"
	StateVictory    State = "victory"
	StateDraw       State = "draw"
)

// WinningTriples - rows, columns and diagonals in 1-based positions.
var WinningTriples = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

type Match struct {
	id      string
	board   *Board
	players [2]Participant
	turn    Symbol
	state   State
}

// NewMatch - creates a match where the first participant moves first.
func NewMatch(first, second Participant) (*Match, error) {
	for _, participant := range []Participant{first, second} {
		if !participant.Symbol.IsValid() {
			return nil, fmt.Errorf("%w: %s has no symbol", apperror.ErrInvalidSymbol, participant.Name)
		}
	}

	if first.Symbol == second.Symbol {
		return nil, fmt.Errorf("%w: both hold %s", apperror.ErrSameSymbol, first.Symbol)
	}

	return &Match{
		id:      uuid.NewString(),
		board:   NewBoard(),
		players: [2]Participant{first, second},
		turn:    first.Symbol,
		state:   StateInProgress,
	}, nil
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) Board() *Board {
	return that.board
}

func (that *Match) State() State {
	return that.state
}

func (that *Match) Participants() (Participant, Participant) {
	return that.players[0], that.players[1]
}

// CurrentPlayer - the participant holding the current-turn symbol.
func (that *Match) CurrentPlayer() Participant {
	if that.turn == that.players[0].Symbol {
		return that.players[0]
	}
	return that.players[1]
}

// Winner - the winning participant, only after a victory.
func (that *Match) Winner() (Participant, bool) {
	if that.state != StateVictory {
		return Participant{}, false
	}

	// the turn is not flipped on the winning move
	return that.CurrentPlayer(), true
}

func (that *Match) IsOver() bool {
	return that.state != StateInProgress
}

// ApplyMove - marks the position for the current player and evaluates the outcome.
// A rejected move leaves the match untouched.
func (that *Match) ApplyMove(position int) (State, error) {
	if that.IsOver() {
		return that.state, apperror.ErrMatchAlreadyOver
	}

	if err := that.board.Mark(position, that.turn); err != nil {
		return that.state, err
	}

	switch {
	case that.hasWinningTriple():
		that.state = StateVictory
	case that.board.IsFull():
		that.state = StateDraw
	default:
		that.turn = that.turn.Opponent()
	}

	return that.state, nil
}

func (that *Match) hasWinningTriple() bool {
	for _, triple := range WinningTriples {
		a, okA := that.board.Cell(triple[0]).Symbol()
		b, okB := that.board.Cell(triple[1]).Symbol()
		c, okC := that.board.Cell(triple[2]).Symbol()

		if okA && okB && okC && a == b && b == c {
			return true
		}
	}

	return false
}
