package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *Repository {
	// Use in-memory database for tests
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)

	require.NoError(t, repo.RunMigrations("../../migrations"))

	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestGet_MissingRecord(t *testing.T) {
	repo := setupTestRepo(t)

	var lines []domain.CartLine
	err := repo.Get(context.Background(), KeyCart, &lines)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPutGet_Roundtrip(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	cart := []domain.CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p3", Quantity: 1},
	}
	require.NoError(t, repo.Put(ctx, KeyCart, cart))

	var got []domain.CartLine
	require.NoError(t, repo.Get(ctx, KeyCart, &got))

	assert.Equal(t, cart, got)
}

func TestPut_OverwritesExisting(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, KeyCurrentUser, "alice"))
	require.NoError(t, repo.Put(ctx, KeyCurrentUser, "bob"))

	var username string
	require.NoError(t, repo.Get(ctx, KeyCurrentUser, &username))

	assert.Equal(t, "bob", username)
}

func TestDelete_RemovesRecord(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, KeyCurrentUser, "alice"))
	require.NoError(t, repo.Delete(ctx, KeyCurrentUser))

	var username string
	err := repo.Get(ctx, KeyCurrentUser, &username)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDelete_MissingRecordIsNoop(t *testing.T) {
	repo := setupTestRepo(t)

	assert.NoError(t, repo.Delete(context.Background(), KeyCurrentUser))
}

func TestGet_CorruptRecord(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES ($1, $2)`, KeyCart, `{not json`)
	require.NoError(t, err)

	var lines []domain.CartLine
	err = repo.Get(ctx, KeyCart, &lines)

	assert.ErrorIs(t, err, ErrCorruptRecord)
	assert.False(t, errors.Is(err, ErrRecordNotFound))
}

func TestRecords_AreIndependent(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	users := map[string]domain.UserAccount{
		"alice": {Username: "alice", Password: "pw", Phone: "000"},
	}
	require.NoError(t, repo.Put(ctx, KeyUsers, users))
	require.NoError(t, repo.Put(ctx, KeyCart, []domain.CartLine{{ProductID: "p1", Quantity: 1}}))

	require.NoError(t, repo.Delete(ctx, KeyCart))

	var gotUsers map[string]domain.UserAccount
	require.NoError(t, repo.Get(ctx, KeyUsers, &gotUsers))
	assert.Equal(t, users, gotUsers)
}
