package postgres_test

import (
	"bskybridge/pkg/domain"
	"bskybridge/pkg/storage"
	"bskybridge/pkg/storage/postgres"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func countDeliveries(t *testing.T, db *sql.DB, messageID string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM deliveries WHERE message_id = $1`, messageID)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func testDelivery(messageID string) domain.Delivery {
	return domain.Delivery{
		MessageID: messageID,
		PostURI:   "at://did:plc:test/app.bsky.feed.post/" + messageID,
		PostCID:   "bafy" + messageID,
		Text:      "hello " + messageID,
	}
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: commit inserts
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreDelivery(ctx, testDelivery("commit"))
	require.NoError(t, err)
	require.Equal(t, 0, countDeliveries(t, db, "commit"))

	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countDeliveries(t, db, "commit"))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rollback should discard inserts
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreDelivery(ctx, testDelivery("rollback"))
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.Equal(t, 0, countDeliveries(t, db, "rollback"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreDelivery(ctx, testDelivery("with-tx-ok"))

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countDeliveries(t, db, "with-tx-ok"))

	// Error in callback: should rollback
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreDelivery(ctx, testDelivery("with-tx-fail"))

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countDeliveries(t, db, "with-tx-fail"))
}
