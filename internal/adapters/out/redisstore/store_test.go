package redisstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCmdable struct {
	data      map[string]string
	msetCalls int
	err       error
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{data: make(map[string]string)}
}

func (f *fakeCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.err)
}

func (f *fakeCmdable) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeCmdable) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) MSet(_ context.Context, values ...any) *redis.StatusCmd {
	f.msetCalls++
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	for i := 0; i+1 < len(values); i += 2 {
		f.data[fmt.Sprint(values[i])] = fmt.Sprint(values[i+1])
	}
	return redis.NewStatusResult("OK", nil)
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCmdable()
	store := &Store{store: fake}

	_, ok, err := store.Get(ctx, "ds:orders")
	require.NoError(t, err)
	assert.False(t, ok, "redis.Nil reads as absent")

	require.NoError(t, store.Set(ctx, "ds:orders", "[]"))
	value, ok, err := store.Get(ctx, "ds:orders")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestStore_SetMany(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCmdable()
	store := &Store{store: fake}

	require.NoError(t, store.SetMany(ctx, map[string]string{
		"ds:districts":      "[]",
		"ds:schema_version": "1",
	}))
	require.NoError(t, store.SetMany(ctx, nil))

	assert.Equal(t, 1, fake.msetCalls)
	assert.Equal(t, map[string]string{"ds:districts": "[]", "ds:schema_version": "1"}, fake.data)
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	store := &Store{store: &fakeCmdable{data: map[string]string{}, err: boom}}

	_, _, err := store.Get(ctx, "ds:orders")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, store.Set(ctx, "ds:orders", "[]"), boom)
	require.ErrorIs(t, store.SetMany(ctx, map[string]string{"a": "b"}), boom)
	require.ErrorIs(t, store.Ping(ctx), boom)
}

func TestStore_NotInitialized(t *testing.T) {
	ctx := context.Background()
	store := &Store{}

	_, _, err := store.Get(ctx, "ds:orders")
	require.ErrorIs(t, err, errNotInitialized)
	require.ErrorIs(t, store.Set(ctx, "k", "v"), errNotInitialized)
	require.ErrorIs(t, store.SetMany(ctx, map[string]string{"k": "v"}), errNotInitialized)
	require.NoError(t, store.Close())
}

func TestNew_RequiresAddress(t *testing.T) {
	_, err := New(context.Background(), Options{})

	require.Error(t, err)
}
