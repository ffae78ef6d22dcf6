package entity

// Cell - one board slot.
type Cell struct {
	Position Position
	symbol   Symbol
}

func newCell(position Position) Cell {
	return Cell{Position: position}
}

// Symbol - returns the symbol and whether the cell is occupied.
func (that *Cell) Symbol() (Symbol, bool) {
	return that.symbol, that.symbol != noSymbol
}

func (that *Cell) IsEmpty() bool {
	return that.symbol == noSymbol
}

func (that *Cell) String() string {
	return that.symbol.String()
}
