package console

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func newConsole(st *suite.Suite, input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}

	return New(st.Logger, strings.NewReader(input), out, false), out
}

// promptWriter - reports every write so a test can wait for a prompt.
type promptWriter struct {
	writes chan string
}

func (that *promptWriter) Write(p []byte) (int, error) {
	select {
	case that.writes <- string(p):
	default:
	}

	return len(p), nil
}

func TestConsole_AskParticipants(t *testing.T) {
	t.Run("Reads two humans and assigns the opposite symbol", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: an empty name, an invalid symbol and then valid answers
		cli, out := newConsole(st, "\n  Alice \nz\no\nBob\n")

		// When: the participants are asked
		first, second, err := cli.AskParticipants(ctx, false, "")

		// Then: Alice holds O, Bob holds X and the empty name was rejected
		require.NoError(t, err)
		assert.Equal(t, entity.NewParticipant("Alice", entity.SymbolO), first)
		assert.Equal(t, entity.NewParticipant("Bob", entity.SymbolX), second)
		assert.Contains(t, out.String(), msgInvalidName)
		assert.Equal(t, 2, strings.Count(out.String(), msgSymbol))
	})

	t.Run("Rejects names that are too long", func(t *testing.T) {
		ctx, st := suite.New(t)

		cli, out := newConsole(st, strings.Repeat("a", 33)+"\nAlice\nx\nBob\n")

		first, _, err := cli.AskParticipants(ctx, false, "")

		require.NoError(t, err)
		assert.Equal(t, "Alice", first.Name)
		assert.Contains(t, out.String(), msgInvalidName)
	})

	t.Run("Skips the second name against the bot", func(t *testing.T) {
		ctx, st := suite.New(t)

		cli, out := newConsole(st, "Alice\nX\n")

		first, second, err := cli.AskParticipants(ctx, true, "Hal")

		require.NoError(t, err)
		assert.Equal(t, entity.SymbolX, first.Symbol)
		assert.True(t, second.IsBot())
		assert.Equal(t, "Hal", second.Name)
		assert.Equal(t, entity.SymbolO, second.Symbol)
		assert.NotContains(t, out.String(), msgSecondName)
	})

	t.Run("Returns ErrInputClosed on EOF", func(t *testing.T) {
		ctx, st := suite.New(t)

		cli, _ := newConsole(st, "Alice\n")

		_, _, err := cli.AskParticipants(ctx, false, "")

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_NextMove(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: garbage, out of range input and then a valid position
	cli, out := newConsole(st, "abc\n0\n10\n 7 \n")
	alice, bob := entity.NewParticipantPair("Alice", "Bob", entity.SymbolX)
	match, err := entity.NewMatch(alice, bob)
	require.NoError(t, err)

	// When: the next move is read
	position, err := cli.NextMove(ctx, match)

	// Then: the three bad lines were rejected before reaching the match
	require.NoError(t, err)
	assert.Equal(t, 7, position)
	assert.Equal(t, 3, strings.Count(out.String(), msgOutOfRange))
	assert.Equal(t, 4, strings.Count(out.String(), "Alice enter your next move [position]: "))
}

func TestConsole_PlayMatch(t *testing.T) {
	t.Run("Prints boards, rejections and the winner banner", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a full session where Bob retries an occupied cell
		cli, out := newConsole(st, "Alice\nx\nBob\n1\n4\n2\n1\n5\n3\n")
		first, second, err := cli.AskParticipants(ctx, false, "")
		require.NoError(t, err)

		match, err := entity.NewMatch(first, second)
		require.NoError(t, err)

		gamePlay := service.NewGamePlayService(st.Logger, service.NewBotService(rand.New(rand.NewSource(1)))) //nolint: gosec // it's ok

		// When: the match is played through the console
		state, err := gamePlay.Play(ctx, match, cli, cli)

		// Then: Alice wins and the output matches the rendering contract
		require.NoError(t, err)
		assert.Equal(t, entity.StateVictory, state)

		output := out.String()
		assert.Contains(t, output, msgMatchHeader+"\n_  _  _\n_  _  _\n_  _  _\n\n")
		assert.Contains(t, output, "Invalid move: "+msgOccupiedPos)
		assert.Contains(t, output, "X  X  X\nO  O  _\n_  _  _\n\n=========")
		assert.True(t, strings.HasSuffix(output, "========= Alice wins!!! =========\n"))
	})

	t.Run("Prints the draw banner", func(t *testing.T) {
		ctx, st := suite.New(t)

		cli, out := newConsole(st, "1\n2\n3\n6\n4\n7\n5\n9\n8\n")
		alice, bob := entity.NewParticipantPair("Alice", "Bob", entity.SymbolX)
		match, err := entity.NewMatch(alice, bob)
		require.NoError(t, err)

		gamePlay := service.NewGamePlayService(st.Logger, service.NewBotService(rand.New(rand.NewSource(1)))) //nolint: gosec // it's ok

		state, err := gamePlay.Play(ctx, match, cli, cli)

		require.NoError(t, err)
		assert.Equal(t, entity.StateDraw, state)
		assert.Contains(t, out.String(), "X  O  X\nX  X  O\nO  X  O\n\n"+msgDrawBanner)
		assert.True(t, strings.HasSuffix(out.String(), msgDrawBanner+"\n"))
	})

	t.Run("Announces bot moves", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: enough positions typed for the human to outlast any bot game
		cli, out := newConsole(st, "Alice\nx\n"+strings.Repeat("1\n2\n3\n4\n5\n6\n7\n8\n9\n", 2))
		first, second, err := cli.AskParticipants(ctx, true, "Hal")
		require.NoError(t, err)

		match, err := entity.NewMatch(first, second)
		require.NoError(t, err)

		gamePlay := service.NewGamePlayService(st.Logger, service.NewBotService(rand.New(rand.NewSource(5)))) //nolint: gosec // it's ok

		// When: the match is played
		state, err := gamePlay.Play(ctx, match, cli, cli)

		// Then: it ends and the bot's moves were printed
		require.NoError(t, err)
		assert.NotEqual(t, entity.StateInProgress, state)
		assert.Contains(t, out.String(), "Hal plays ")
	})

	t.Run("Stops on a canceled context", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		cli, _ := newConsole(st, "Alice\n")

		_, _, err := cli.AskParticipants(ctx, false, "")

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Cancel unblocks a prompt waiting for input", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)

		// Given: an input that never delivers a line
		in, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })
		out := &promptWriter{writes: make(chan string, 16)}
		cli := New(st.Logger, in, out, false)

		errs := make(chan error, 1)
		go func() {
			_, _, err := cli.AskParticipants(ctx, false, "")
			errs <- err
		}()

		// When: the name prompt is shown and the context is canceled while it waits
		for written := range out.writes {
			if written == msgFirstName {
				break
			}
		}
		cancel()

		// Then: the prompt returns context.Canceled
		select {
		case err := <-errs:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("prompt still waiting after cancel")
		}
	})

	t.Run("Every rendered board is followed by a blank line", func(t *testing.T) {
		ctx, st := suite.New(t)

		cli, out := newConsole(st, "5\n")
		alice, bob := entity.NewParticipantPair("Alice", "Bob", entity.SymbolX)
		match, err := entity.NewMatch(alice, bob)
		require.NoError(t, err)

		cli.MatchStarted(match)
		position, err := cli.NextMove(ctx, match)
		require.NoError(t, err)
		_, err = match.ApplyMove(position)
		require.NoError(t, err)
		cli.MoveApplied(match, alice, position)

		assert.Equal(t, msgMatchHeader+"\n"+
			"_  _  _\n_  _  _\n_  _  _\n\n"+
			"Alice enter your next move [position]: "+
			"_  _  _\n_  X  _\n_  _  _\n\n", out.String())
	})
}
