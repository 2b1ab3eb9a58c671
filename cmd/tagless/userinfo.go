package main

import (
	"fmt"

	"github.com/on-the-ground/tagless_go/users"
	"github.com/on-the-ground/tagless_go/users/live"
	"github.com/on-the-ground/tagless_go/users/store"
	"github.com/spf13/cobra"
)

var (
	seedProfiles = []users.UserProfile{
		users.NewUserProfile("u1", "Ada"),
		users.NewUserProfile("u2", "Grace"),
		users.NewUserProfile("u3", "Barbara"),
	}
	seedOrders = []users.Order{
		users.NewOrder("u1", "o1"),
		users.NewOrder("u1", "o2"),
		users.NewOrder("u2", "o3"),
	}
)

func newUserInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "userinfo <user-id>",
		Short: "Fetch a user's name and orders from the demo store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUserInfo(cmd, users.UserID(args[0]))
		},
	}
}

func seededStore() (*store.MemDB, error) {
	db, err := store.NewMemDB()
	if err != nil {
		return nil, err
	}
	for _, p := range seedProfiles {
		if err := db.PutProfile(p); err != nil {
			return nil, err
		}
	}
	for _, o := range seedOrders {
		if err := db.PutOrder(o); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (a *app) runUserInfo(cmd *cobra.Command, id users.UserID) error {
	logger, err := a.cfg.NewLogger()
	if err != nil {
		return err
	}

	db, err := seededStore()
	if err != nil {
		return err
	}
	profiles, err := store.NewCachedProfiles(db, a.cfg.ProfileCacheSize)
	if err != nil {
		return err
	}
	defer profiles.Close()

	ctx, endOfHandlers := live.WithEffectHandlers(cmd.Context(), a.cfg, logger)
	l := live.New(ctx, profiles, db)
	info, err := live.Await(l, users.FetchUserInformation(l, id))
	endOfHandlers()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name: %s\n", info.Name)
	for _, o := range info.Orders {
		fmt.Fprintf(out, "order: %s\n", o.ID)
	}
	return nil
}
