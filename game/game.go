// Package game is a number guessing game written only against the Console and
// Random capabilities, so any interpreter providing them can run it.
package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/on-the-ground/tagless_go/effects/monad"
)

// MaxSecret is the largest number the player is asked to guess.
const MaxSecret = 5

type Console[F any] interface {
	PutStrLn(line string) monad.Kind[F, monad.Unit]
	GetStrLn() monad.Kind[F, string]
}

type Random[F any] interface {
	// NextInt yields a number in [1, upper].
	NextInt(upper int) monad.Kind[F, int]
}

// Main is everything the game needs from an interpreter.
type Main[F any] interface {
	monad.Program[F]
	Console[F]
	Random[F]
}

// ParseGuess accepts any number with no fractional part, so "2", "2.0" and "2e0"
// are all 2. Empty input is not a number.
func ParseGuess(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}

// Ask prints question and reads the answer.
func Ask[F Main[F]](env F, question string) monad.Kind[F, string] {
	return monad.Then(env.PutStrLn(question), env.GetStrLn())
}

// ShouldContinue asks until the answer is y or n.
func ShouldContinue[F Main[F]](env F, name string) monad.Kind[F, bool] {
	question := fmt.Sprintf("Do you want to continue, %s (y/n)?", name)
	return monad.TailRec(monad.Unit{}, func(monad.Unit) monad.Kind[F, monad.Next[monad.Unit, bool]] {
		return monad.Map(Ask(env, question), func(answer string) monad.Next[monad.Unit, bool] {
			switch strings.ToLower(strings.TrimSpace(answer)) {
			case "y":
				return monad.Done[monad.Unit](true)
			case "n":
				return monad.Done[monad.Unit](false)
			default:
				return monad.Continue[monad.Unit, bool](monad.Unit{})
			}
		})
	})
}

func verdict(name, guess string, secret int) string {
	n, ok := ParseGuess(guess)
	switch {
	case !ok:
		return "You did not enter an integer!"
	case n == secret:
		return fmt.Sprintf("You guessed right, %s!", name)
	default:
		return fmt.Sprintf("You guessed wrong, %s! The number was: %d", name, secret)
	}
}

// GameLoop plays rounds until the player declines another one.
// The guess is read while the secret is drawn; neither depends on the other.
func GameLoop[F Main[F]](env F, name string) monad.Kind[F, monad.Unit] {
	question := fmt.Sprintf("Dear %s, please guess a number from 1 to %d", name, MaxSecret)
	return monad.TailRec(monad.Unit{}, func(monad.Unit) monad.Kind[F, monad.Next[monad.Unit, monad.Unit]] {
		round := monad.Bind(
			monad.Zip(Ask(env, question), env.NextInt(MaxSecret)),
			func(p monad.Pair[string, int]) monad.Kind[F, monad.Unit] {
				return env.PutStrLn(verdict(name, p.First, p.Second))
			},
		)
		return monad.Map(monad.Then(round, ShouldContinue(env, name)), func(again bool) monad.Next[monad.Unit, monad.Unit] {
			if again {
				return monad.Continue[monad.Unit, monad.Unit](monad.Unit{})
			}
			return monad.Done[monad.Unit](monad.Unit{})
		})
	})
}

// Play asks for the player's name, greets them and runs the game loop.
func Play[F Main[F]](env F) monad.Kind[F, monad.Unit] {
	return monad.Bind(Ask(env, "What is your name?"), func(name string) monad.Kind[F, monad.Unit] {
		greet := env.PutStrLn(fmt.Sprintf("Hello, %s welcome to the game!", name))
		return monad.Then(greet, GameLoop(env, name))
	})
}
