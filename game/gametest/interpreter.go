// Package gametest runs the game against scripted input and random numbers and
// records everything it prints.
package gametest

import (
	"errors"
	"slices"

	"github.com/on-the-ground/tagless_go/effects/monad"
	"github.com/on-the-ground/tagless_go/game"
)

var (
	// ErrNoInput is returned when the game reads past the scripted input.
	ErrNoInput = errors.New("no scripted input left")
	// ErrNoRandom is returned when the game draws past the scripted numbers.
	ErrNoRandom = errors.New("no scripted random number left")
)

// Interpreter is a pure game.Main. Every step returns a new Interpreter; the one
// it was given stays as it was.
type Interpreter struct {
	inputs  []string
	randoms []int
	outputs []string
}

var _ game.Main[Interpreter] = Interpreter{}

func NewInterpreter(inputs []string, randoms []int) Interpreter {
	return Interpreter{inputs: slices.Clone(inputs), randoms: slices.Clone(randoms)}
}

// Outputs returns the printed lines, oldest first.
func (i Interpreter) Outputs() []string {
	return slices.Clone(i.outputs)
}

// Remaining returns the input that has not been read yet.
func (i Interpreter) Remaining() []string {
	return slices.Clone(i.inputs)
}

func (i Interpreter) Fork(steps ...monad.Step[Interpreter]) (Interpreter, error) {
	return monad.Sequential(i, steps...)
}

func (Interpreter) PutStrLn(line string) monad.Kind[Interpreter, monad.Unit] {
	return func(env Interpreter) (monad.Unit, Interpreter, error) {
		env.outputs = append(slices.Clip(env.outputs), line)
		return monad.Unit{}, env, nil
	}
}

func (Interpreter) GetStrLn() monad.Kind[Interpreter, string] {
	return func(env Interpreter) (string, Interpreter, error) {
		if len(env.inputs) == 0 {
			return "", env, ErrNoInput
		}
		line := env.inputs[0]
		env.inputs = env.inputs[1:]
		return line, env, nil
	}
}

func (Interpreter) NextInt(int) monad.Kind[Interpreter, int] {
	return func(env Interpreter) (int, Interpreter, error) {
		if len(env.randoms) == 0 {
			return 0, env, ErrNoRandom
		}
		n := env.randoms[0]
		env.randoms = env.randoms[1:]
		return n, env, nil
	}
}
