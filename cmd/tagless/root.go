package main

import (
	"github.com/on-the-ground/tagless_go/config"
	"github.com/spf13/cobra"
)

type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "tagless",
		Short:        "Run business logic written against capabilities, with live interpreters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.AddCommand(newUserInfoCmd(a), newGuessCmd())
	return root
}
