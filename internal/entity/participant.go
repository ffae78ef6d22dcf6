package entity

const (
	KindHuman = "human"
	KindBot   = "bot"
)

// Participant - a named player holding one symbol for the whole match.
type Participant struct {
	Name   string `json:"name"`
	Symbol Symbol `json:"symbol"`
	Kind   string `json:"kind"`
}

func NewParticipant(name string, symbol Symbol) Participant {
	return Participant{
		Name:   name,
		Symbol: symbol,
		Kind:   KindHuman,
	}
}

func NewBotParticipant(name string, symbol Symbol) Participant {
	return Participant{
		Name:   name,
		Symbol: symbol,
		Kind:   KindBot,
	}
}

// NewParticipantPair - the first participant picks a symbol, the second one gets the opposite.
func NewParticipantPair(firstName, secondName string, firstSymbol Symbol) (Participant, Participant) {
	return NewParticipant(firstName, firstSymbol), NewParticipant(secondName, firstSymbol.Opponent())
}

func (that Participant) IsBot() bool {
	return that.Kind == KindBot
}

func (that Participant) String() string {
	return that.Name
}
