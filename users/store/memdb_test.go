package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/on-the-ground/tagless_go/users"
	"github.com/on-the-ground/tagless_go/users/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemDB_Profile(t *testing.T) {
	db, err := store.NewMemDB()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, db.PutProfile(users.NewUserProfile("u1", "Ada")))

	p, err := db.Profile(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, users.NewUserProfile("u1", "Ada"), p)

	require.NoError(t, db.PutProfile(users.NewUserProfile("u1", "Grace")))
	p, err = db.Profile(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Grace", p.Name)

	_, err = db.Profile(ctx, "ghost")
	assert.True(t, errors.Is(err, users.UserNotFound{UserID: "ghost"}))
}

func TestMemDB_OrdersNewestFirst(t *testing.T) {
	db, err := store.NewMemDB()
	require.NoError(t, err)

	for _, o := range []users.Order{
		users.NewOrder("u1", "o3"),
		users.NewOrder("u2", "o2"),
		users.NewOrder("u1", "o1"),
		users.NewOrder("u1", "o2b"),
	} {
		require.NoError(t, db.PutOrder(o))
	}

	got, err := db.Orders(context.Background(), "u1")
	require.NoError(t, err)
	want := []users.Order{
		users.NewOrder("u1", "o2b"),
		users.NewOrder("u1", "o1"),
		users.NewOrder("u1", "o3"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", diff)
	}
}

func TestMemDB_OrdersEmptyForUnknownOwner(t *testing.T) {
	db, err := store.NewMemDB()
	require.NoError(t, err)

	got, err := db.Orders(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemDB_CanceledContext(t *testing.T) {
	db, err := store.NewMemDB()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = db.Profile(ctx, "u1")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = db.Orders(ctx, "u1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemDB_RePutOrderMovesItToFront(t *testing.T) {
	db, err := store.NewMemDB()
	require.NoError(t, err)

	require.NoError(t, db.PutOrder(users.NewOrder("u1", "o1")))
	require.NoError(t, db.PutOrder(users.NewOrder("u1", "o2")))
	require.NoError(t, db.PutOrder(users.NewOrder("u1", "o1")))

	got, err := db.Orders(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []users.Order{users.NewOrder("u1", "o1"), users.NewOrder("u1", "o2")}, got)
}
