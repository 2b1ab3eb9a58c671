package store

import (
	"context"
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/on-the-ground/tagless_go/users"
)

// ProfileSource is anything that can look a profile up.
type ProfileSource interface {
	Profile(ctx context.Context, id users.UserID) (users.UserProfile, error)
}

// CachedProfiles is a read-through ristretto cache in front of a ProfileSource.
// Only successful lookups are cached, so a user created after a miss is found next time.
type CachedProfiles struct {
	source ProfileSource
	cache  *ristretto.Cache[string, users.UserProfile]
}

// NewCachedProfiles caches up to maxProfiles profiles from source.
func NewCachedProfiles(source ProfileSource, maxProfiles int) (*CachedProfiles, error) {
	if maxProfiles < 1 {
		maxProfiles = 1
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, users.UserProfile]{
		NumCounters: int64(maxProfiles) * 10,
		MaxCost:     int64(maxProfiles),
		BufferItems: 64,
		// cost counts profiles, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile cache: %w", err)
	}
	return &CachedProfiles{source: source, cache: cache}, nil
}

func (c *CachedProfiles) Profile(ctx context.Context, id users.UserID) (users.UserProfile, error) {
	if p, ok := c.cache.Get(string(id)); ok {
		return p, nil
	}
	p, err := c.source.Profile(ctx, id)
	if err != nil {
		return users.UserProfile{}, err
	}
	c.cache.Set(string(id), p, 1)
	return p, nil
}

// Invalidate drops id so the next lookup goes to the source.
func (c *CachedProfiles) Invalidate(id users.UserID) {
	c.cache.Del(string(id))
}

// Wait blocks until buffered cache writes are applied.
func (c *CachedProfiles) Wait() {
	c.cache.Wait()
}

func (c *CachedProfiles) Close() {
	c.cache.Close()
}
