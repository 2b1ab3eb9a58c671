package live_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/on-the-ground/tagless_go/game"
	"github.com/on-the-ground/tagless_go/game/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func always(secret int) live.Option {
	return live.WithRandom(func(int) int { return secret - 1 })
}

func TestPlay_WrongGuessThenStop(t *testing.T) {
	var out bytes.Buffer
	l := live.New(strings.NewReader("Ada\n3\nn\n"), &out, live.WithPrompt(""), always(5))

	_, _, err := game.Play(l)(l)

	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"What is your name?",
		"Hello, Ada welcome to the game!",
		"Dear Ada, please guess a number from 1 to 5",
		"You guessed wrong, Ada! The number was: 5",
		"Do you want to continue, Ada (y/n)?",
	}, "\n")+"\n", out.String())
}

func TestGetStrLn_PromptAndLineEndings(t *testing.T) {
	var out bytes.Buffer
	l := live.New(strings.NewReader("first\r\nlast"), &out)

	first, _, err := l.GetStrLn()(l)
	require.NoError(t, err)
	last, _, err := l.GetStrLn()(l)
	require.NoError(t, err)
	_, _, err = l.GetStrLn()(l)

	assert.Equal(t, "first", first)
	assert.Equal(t, "last", last)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestNextInt_InRange(t *testing.T) {
	l := live.New(strings.NewReader(""), io.Discard, live.WithSeed(42))

	for range 1000 {
		n, _, err := l.NextInt(game.MaxSecret)(l)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, game.MaxSecret)
	}

	_, _, err := l.NextInt(0)(l)
	assert.Error(t, err)
}

func TestNextInt_SeedIsReproducible(t *testing.T) {
	draw := func() []int {
		l := live.New(strings.NewReader(""), io.Discard, live.WithSeed(7))
		var got []int
		for range 20 {
			n, _, err := l.NextInt(100)(l)
			require.NoError(t, err)
			got = append(got, n)
		}
		return got
	}

	assert.Equal(t, draw(), draw())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPutStrLn_WriteFailure(t *testing.T) {
	l := live.New(strings.NewReader(""), failingWriter{})

	_, _, err := l.PutStrLn("hello")(l)

	assert.ErrorContains(t, err, "closed")
}
