package main

import (
	"github.com/on-the-ground/tagless_go/game"
	"github.com/on-the-ground/tagless_go/game/live"
	"github.com/spf13/cobra"
)

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess",
		Short: "Play the number guessing game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := live.New(cmd.InOrStdin(), cmd.OutOrStdout())
			_, _, err := game.Play(l)(l)
			return err
		},
	}
}
