package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := client
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(prev) })
	return mr
}

func TestAsideCachesOnMiss(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			*dest = payload{ID: 1, Name: "cached"}
			return nil
		}
	}

	var got payload
	require.NoError(t, Aside(ctx, "ideaboard:user:1", &got, time.Minute, fetch(&got)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "cached", got.Name)
	assert.True(t, mr.Exists("ideaboard:user:1"))

	// second read hits the cache, fetch is not called again
	var again payload
	require.NoError(t, Aside(ctx, "ideaboard:user:1", &again, time.Minute, fetch(&again)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "cached", again.Name)
}

func TestAsidePropagatesFetchError(t *testing.T) {
	setupMiniredis(t)

	var got payload
	sentinel := errors.New("row not found")
	err := Aside(context.Background(), "ideaboard:user:2", &got, time.Minute, func() error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
}

func TestAsideWorksWithoutRedis(t *testing.T) {
	prev := client
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })

	fetches := 0
	var got payload
	fetch := func() error {
		fetches++
		got = payload{ID: 3, Name: "direct"}
		return nil
	}

	require.NoError(t, Aside(context.Background(), "ideaboard:user:3", &got, time.Minute, fetch))
	require.NoError(t, Aside(context.Background(), "ideaboard:user:3", &got, time.Minute, fetch))
	// no cache: every read fetches
	assert.Equal(t, 2, fetches)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(7), payload{ID: 7}, time.Minute))
	require.True(t, mr.Exists(UserKey(7)))

	InvalidateUser(ctx, 7)
	assert.False(t, mr.Exists(UserKey(7)))
}

func TestGetJSONMiss(t *testing.T) {
	setupMiniredis(t)

	var got payload
	found, err := GetJSON(context.Background(), "ideaboard:user:404", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
