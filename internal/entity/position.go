package entity

const (
	boardSide = 3
	boardSize = boardSide * boardSide

	MinPosition = 1
	MaxPosition = boardSize
)

// Position - a 1-based board index with its zero-based row and column.
type Position struct {
	value  int
	Row    int
	Column int
}

func NewPosition(value int) Position {
	return Position{
		value:  value,
		Row:    (value - 1) / boardSide,
		Column: (value - 1) % boardSide,
	}
}

func (that Position) Value() int {
	return that.value
}

// IsLastInRow - reports whether a line break follows this position when rendering.
func (that Position) IsLastInRow() bool {
	return that.Column == boardSide-1
}

// IsValidPosition - checks the 1..9 range.
func IsValidPosition(value int) bool {
	return value >= MinPosition && value <= MaxPosition
}
