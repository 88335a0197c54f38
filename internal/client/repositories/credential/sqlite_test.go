package credential

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credential (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM credential;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_GetAbsent(t *testing.T) {
	store := NewSQLiteStore(setupDB(t))

	token, err := store.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, token, "missing key must read as empty, not as an error")
}

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Set(ctx, "t1"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "t1", token)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Set(ctx, "t1"))
	require.NoError(t, store.Set(ctx, "t2"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "t2", token, "only one token may be active at a time")
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Set(ctx, "t1"))
	require.NoError(t, store.Delete(ctx))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, token)

	// Deleting an absent token is a no-op.
	require.NoError(t, store.Delete(ctx))
}
