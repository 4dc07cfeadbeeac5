package credstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SetThenGet(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("tok-1")))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), v)
}

func TestSQLiteStore_GetAbsentReturnsNilNil(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), KeyAuthToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyRefreshToken, []byte("old")))
	require.NoError(t, s.Set(ctx, KeyRefreshToken, []byte("new")))

	v, err := s.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLiteStore_SetPair(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
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

func TestSQLiteStore_DeleteIsIdempotent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("tok")))
	require.NoError(t, s.Delete(ctx, KeyAuthToken))
	require.NoError(t, s.Delete(ctx, KeyAuthToken))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_ClearRemovesEverything(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("a")))
	require.NoError(t, s.Set(ctx, KeyRefreshToken, []byte("r")))
	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{KeyAuthToken, KeyRefreshToken} {
		v, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}

func TestOpenSQLite_MigratesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, "file:credstore_migrate?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Set(ctx, KeyAuthToken, []byte("tok")))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok"), v)
}
