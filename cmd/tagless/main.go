// Command tagless runs the user information lookup and the guessing game with
// their live interpreters.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
