package entity

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Board - a fixed 3x3 grid stored as 9 zero-indexed cells and exposed through positions 1..9.
type Board struct {
	cells    [boardSize]Cell
	occupied int
}

func NewBoard() *Board {
	board := &Board{}
	for i := range board.cells {
		board.cells[i] = newCell(NewPosition(i + 1))
	}

	return board
}

// Mark - places the symbol at the position.
func (that *Board) Mark(position int, symbol Symbol) error {
	if !IsValidPosition(position) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	if !symbol.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidSymbol, symbol)
	}

	cell := that.Cell(position)
	if !cell.IsEmpty() {
		return fmt.Errorf("%w: %d", apperror.ErrOccupiedPosition, position)
	}

	cell.symbol = symbol
	that.occupied++

	return nil
}

// Cell - returns the cell at a 1-based position. Panics outside 1..9.
func (that *Board) Cell(position int) *Cell {
	return &that.cells[slot(position)]
}

func (that *Board) IsFull() bool {
	return that.occupied == boardSize
}

func (that *Board) OccupiedCount() int {
	return that.occupied
}

// AvailablePositions - empty positions in ascending order.
func (that *Board) AvailablePositions() []int {
	return lo.FilterMap(that.cells[:], func(cell Cell, _ int) (int, bool) {
		return cell.Position.Value(), cell.IsEmpty()
	})
}

func (that *Board) String() string {
	var sb strings.Builder

	for i := range that.cells {
		cell := &that.cells[i]
		sb.WriteString(cell.String())

		if cell.Position.IsLastInRow() {
			sb.WriteString("\n")
		} else {
			sb.WriteString("  ")
		}
	}

	return sb.String()
}

// slot - translates a user-facing position into the array index.
func slot(position int) int {
	if !IsValidPosition(position) {
		panic(fmt.Sprintf("position %d is out of range [%d, %d]", position, MinPosition, MaxPosition))
	}

	return position - 1
}
