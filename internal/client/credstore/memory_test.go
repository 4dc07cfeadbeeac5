package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("abc")))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	v[0] = 'X'

	again, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_AbsentKey(t *testing.T) {
	s := NewMemoryStore()

	v, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_SetPairKeepsRefreshWhenEmpty(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetPair(ctx, []byte("tok-1"), []byte("ref-1")))
	require.NoError(t, s.SetPair(ctx, []byte("tok-2"), nil))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-2"), v)

	r, err := s.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, []byte("ref-1"), r)
}

func TestMemoryStore_Clear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("a")))
	require.NoError(t, s.Set(ctx, KeyRefreshToken, []byte("b")))
	require.NoError(t, s.Clear(ctx))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Nil(t, v)
}
