// Package live runs the game on a terminal, or on any reader and writer.
package live

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/on-the-ground/tagless_go/effects/monad"
	"github.com/on-the-ground/tagless_go/game"
	"golang.org/x/sync/errgroup"
)

// Interpreter is the live game.Main. Console calls go to its reader and writer.
type Interpreter struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
	intN   func(n int) int
}

var _ game.Main[Interpreter] = Interpreter{}

type Option func(*Interpreter)

// WithPrompt sets what is written before each read. Defaults to "> ".
func WithPrompt(prompt string) Option {
	return func(i *Interpreter) {
		i.prompt = prompt
	}
}

// WithSeed makes the secret numbers reproducible.
func WithSeed(seed uint64) Option {
	return func(i *Interpreter) {
		var mu sync.Mutex
		r := rand.New(rand.NewPCG(seed, seed))
		i.intN = func(n int) int {
			mu.Lock()
			defer mu.Unlock()
			return r.IntN(n)
		}
	}
}

// WithRandom replaces the source of secret numbers. intN must return a number in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(i *Interpreter) {
		i.intN = intN
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) Interpreter {
	i := Interpreter{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: "> ",
		intN:   rand.IntN,
	}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// Fork runs steps concurrently and returns the first failure.
func (i Interpreter) Fork(steps ...monad.Step[Interpreter]) (Interpreter, error) {
	var g errgroup.Group
	for _, step := range steps {
		g.Go(func() error {
			_, err := step(i)
			return err
		})
	}
	return i, g.Wait()
}

func (Interpreter) PutStrLn(line string) monad.Kind[Interpreter, monad.Unit] {
	return func(env Interpreter) (monad.Unit, Interpreter, error) {
		if _, err := fmt.Fprintln(env.out, line); err != nil {
			return monad.Unit{}, env, fmt.Errorf("failed to write line: %w", err)
		}
		return monad.Unit{}, env, nil
	}
}

// GetStrLn fails with io.EOF once the input is exhausted.
func (Interpreter) GetStrLn() monad.Kind[Interpreter, string] {
	return func(env Interpreter) (string, Interpreter, error) {
		if env.prompt != "" {
			if _, err := io.WriteString(env.out, env.prompt); err != nil {
				return "", env, fmt.Errorf("failed to write prompt: %w", err)
			}
		}
		line, err := env.in.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return "", env, err
		}
		return strings.TrimRight(line, "\r\n"), env, nil
	}
}

func (Interpreter) NextInt(upper int) monad.Kind[Interpreter, int] {
	return func(env Interpreter) (int, Interpreter, error) {
		if upper < 1 {
			return 0, env, fmt.Errorf("upper bound must be positive, got %d", upper)
		}
		return env.intN(upper) + 1, env, nil
	}
}
