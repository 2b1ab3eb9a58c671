package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/on-the-ground/tagless_go/users"
	"github.com/on-the-ground/tagless_go/users/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	mu       sync.Mutex
	calls    map[users.UserID]int
	profiles map[users.UserID]users.UserProfile
}

func newCountingSource(profiles ...users.UserProfile) *countingSource {
	s := &countingSource{
		calls:    map[users.UserID]int{},
		profiles: map[users.UserID]users.UserProfile{},
	}
	for _, p := range profiles {
		s.profiles[p.UserID] = p
	}
	return s
}

func (s *countingSource) Profile(_ context.Context, id users.UserID) (users.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[id]++
	p, ok := s.profiles[id]
	if !ok {
		return users.UserProfile{}, users.UserNotFound{UserID: id}
	}
	return p, nil
}

func (s *countingSource) callsFor(id users.UserID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[id]
}

func TestCachedProfiles_HitSkipsSource(t *testing.T) {
	src := newCountingSource(users.NewUserProfile("u1", "Ada"))
	cached, err := store.NewCachedProfiles(src, 16)
	require.NoError(t, err)
	defer cached.Close()
	ctx := context.Background()

	p, err := cached.Profile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	cached.Wait()

	p, err = cached.Profile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, 1, src.callsFor("u1"))
}

func TestCachedProfiles_MissesAreNotCached(t *testing.T) {
	src := newCountingSource()
	cached, err := store.NewCachedProfiles(src, 16)
	require.NoError(t, err)
	defer cached.Close()
	ctx := context.Background()

	_, err = cached.Profile(ctx, "ghost")
	assert.True(t, errors.Is(err, users.UserNotFound{UserID: "ghost"}))
	cached.Wait()

	_, err = cached.Profile(ctx, "ghost")
	assert.Error(t, err)
	assert.Equal(t, 2, src.callsFor("ghost"))
}

func TestCachedProfiles_Invalidate(t *testing.T) {
	src := newCountingSource(users.NewUserProfile("u1", "Ada"))
	cached, err := store.NewCachedProfiles(src, 16)
	require.NoError(t, err)
	defer cached.Close()
	ctx := context.Background()

	_, err = cached.Profile(ctx, "u1")
	require.NoError(t, err)
	cached.Wait()

	cached.Invalidate("u1")
	cached.Wait()

	_, err = cached.Profile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, src.callsFor("u1"))
}

func TestCachedProfiles_OverMemDB(t *testing.T) {
	db, err := store.NewMemDB()
	require.NoError(t, err)
	require.NoError(t, db.PutProfile(users.NewUserProfile("u1", "Ada")))

	cached, err := store.NewCachedProfiles(db, 16)
	require.NoError(t, err)
	defer cached.Close()

	p, err := cached.Profile(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, users.NewUserProfile("u1", "Ada"), p)
}
