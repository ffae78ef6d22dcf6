package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gookit/color"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	nameRules = "required,max=32"

	msgHeader         = "========== Tic-Tac-Toe =========="
	msgFirstName      = "Enter the first player's name: "
	msgSecondName     = "Enter the second player's name: "
	msgSymbol         = "Choose your symbol [X or O]: "
	msgInvalidName    = "A name is required and must have at most 32 characters."
	msgOutOfRange     = "Enter a number between 1 and 9."
	msgInvalidMove    = "Invalid move: %s"
	msgInvalidPos     = "Invalid position. Please enter a number between 1 and 9."
	msgOccupiedPos    = "This position is already occupied. Try another position."
	msgMovePrompt     = "%s enter your next move [position]: "
	msgBotMove        = "%s plays %d"
	msgVictoryBanner  = "========= %s wins!!! ========="
	msgDrawBanner     = "========= DRAW ========="
	msgMatchHeader    = "=== TIC-TAC-TOE ==="
	defaultRejectText = "move rejected"
)

type inputLine struct {
	text string
	err  error
}

// Console - line oriented terminal front end. It is both the human move source and the match observer.
type Console struct {
	logger *slog.Logger

	in       *bufio.Scanner
	lines    chan inputLine
	readOnce sync.Once
	out      io.Writer
	validate *validator.Validate

	banner color.Style
	alert  color.Style
	colors bool
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, colors bool) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		in:       bufio.NewScanner(in),
		lines:    make(chan inputLine),
		out:      out,
		validate: validator.New(),
		banner:   color.New(color.FgGreen, color.OpBold),
		alert:    color.New(color.FgRed),
		colors:   colors,
	}
}

// AskParticipants - reads names and the first player's symbol. Against the bot the second name is not asked.
func (that *Console) AskParticipants(ctx context.Context, withBot bool, botName string) (entity.Participant, entity.Participant, error) {
	that.println(msgHeader)

	firstName, err := that.askName(ctx, msgFirstName)
	if err != nil {
		return entity.Participant{}, entity.Participant{}, err
	}

	symbol, err := that.askSymbol(ctx)
	if err != nil {
		return entity.Participant{}, entity.Participant{}, err
	}

	if withBot {
		return entity.NewParticipant(firstName, symbol), entity.NewBotParticipant(botName, symbol.Opponent()), nil
	}

	secondName, err := that.askName(ctx, msgSecondName)
	if err != nil {
		return entity.Participant{}, entity.Participant{}, err
	}

	first, second := entity.NewParticipantPair(firstName, secondName, symbol)

	return first, second, nil
}

// NextMove - prompts the current player until a number in 1..9 is typed.
func (that *Console) NextMove(ctx context.Context, match *entity.Match) (int, error) {
	prompt := fmt.Sprintf(msgMovePrompt, match.CurrentPlayer())

	for {
		line, err := that.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}

		position, err := strconv.Atoi(line)
		if err != nil || !entity.IsValidPosition(position) {
			that.println(that.paint(that.alert, msgOutOfRange))
			continue
		}

		return position, nil
	}
}

func (that *Console) MatchStarted(match *entity.Match) {
	that.println(msgMatchHeader)
	that.println(match.Board().String())
}

func (that *Console) MoveApplied(match *entity.Match, participant entity.Participant, position int) {
	if participant.IsBot() {
		that.println(fmt.Sprintf(msgBotMove, participant, position))
	}

	that.println(match.Board().String())
}

func (that *Console) MoveRejected(_ *entity.Match, _ entity.Participant, _ int, err error) {
	that.println(that.paint(that.alert, fmt.Sprintf(msgInvalidMove, rejectionText(err))))
}

func (that *Console) MatchFinished(match *entity.Match) {
	if winner, ok := match.Winner(); ok {
		that.println(that.paint(that.banner, fmt.Sprintf(msgVictoryBanner, winner)))
		return
	}

	that.println(that.paint(that.banner, msgDrawBanner))
}

func (that *Console) askName(ctx context.Context, prompt string) (string, error) {
	for {
		name, err := that.ask(ctx, prompt)
		if err != nil {
			return "", err
		}

		if err = that.validate.Var(name, nameRules); err != nil {
			that.logger.Debug("invalid name", "error", err)
			that.println(that.paint(that.alert, msgInvalidName))
			continue
		}

		return name, nil
	}
}

func (that *Console) askSymbol(ctx context.Context) (entity.Symbol, error) {
	for {
		raw, err := that.ask(ctx, msgSymbol)
		if err != nil {
			return 0, err
		}

		if symbol, ok := entity.ParseSymbol(raw); ok {
			return symbol, nil
		}
	}
}

// ask - prints the prompt and waits for the next trimmed line or for ctx to be done.
func (that *Console) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("console canceled: %w", err)
	}

	that.readOnce.Do(func() {
		go that.readLines()
	})

	that.print(prompt)

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("console canceled: %w", ctx.Err())
	case line, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		if line.err != nil {
			return "", line.err
		}

		return strings.TrimSpace(line.text), nil
	}
}

// readLines - feeds lines to ask one at a time. A blocked read outlives a canceled ask.
func (that *Console) readLines() {
	defer close(that.lines)

	for that.in.Scan() {
		that.lines <- inputLine{text: that.in.Text()}
	}

	if err := that.in.Err(); err != nil {
		that.lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Console) paint(style color.Style, text string) string {
	if !that.colors {
		return text
	}
	return style.Sprint(text)
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidPosition):
		return msgInvalidPos
	case errors.Is(err, apperror.ErrOccupiedPosition):
		return msgOccupiedPos
	default:
		return defaultRejectText
	}
}
