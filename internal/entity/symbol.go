package entity

// Symbol - the marker a participant plays.
type Symbol uint8

const (
	noSymbol Symbol = iota
	SymbolX
	SymbolO
)

// ParseSymbol - parses "x" or "o" (any case).
func ParseSymbol(raw string) (Symbol, bool) {
	switch raw {
	case "x", "X":
		return SymbolX, true
	case "o", "O":
		return SymbolO, true
	default:
		return noSymbol, false
	}
}

// Opponent - returns the other symbol.
func (that Symbol) Opponent() Symbol {
	if that == SymbolX {
		return SymbolO
	}
	return SymbolX
}

// IsValid - reports whether the symbol is X or O.
func (that Symbol) IsValid() bool {
	return that == SymbolX || that == SymbolO
}

func (that Symbol) String() string {
	switch that {
	case SymbolX:
		return "X"
	case SymbolO:
		return "O"
	default:
		return "_"
	}
}

func (that Symbol) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}
