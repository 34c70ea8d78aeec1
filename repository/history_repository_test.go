package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analystDashboard/internal/testutil"
	"analystDashboard/models"
)

func TestHistoryRepository_CreateListDelete(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "historyrepo")
	repo := NewHistoryRepository(d)
	ctx := context.Background()

	empty, err := repo.ListByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, empty)

	in := []models.HistoryEntry{
		{Username: "alice", Question: "Q1", Answer: "A1", Time: "01-02-2026 10:00"},
		{Username: "bob", Question: "Q2", Answer: "A2", Time: "01-02-2026 10:01"},
		{Username: "alice", Question: "Q3", Answer: "A3", Time: "01-02-2026 10:02"},
	}
	var ids []int64
	for i := range in {
		e, err := repo.Create(ctx, &in[i])
		require.NoError(t, err)
		assert.NotZero(t, e.ID)
		assert.Zero(t, in[i].ID, "input is not mutated")
		ids = append(ids, e.ID)
	}

	alice, err := repo.ListByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 2)
	assert.Equal(t, "Q1", alice[0].Question)
	assert.Equal(t, "Q3", alice[1].Question)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[1], all[1].ID)

	affected, err := repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Delete(ctx, 12345)
	require.NoError(t, err)
	assert.Zero(t, affected)

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ids[1], all[0].ID)
}

func TestHistoryRepository_DeleteOwned(t *testing.T) {
	repo := NewHistoryRepository(testutil.OpenInMemoryDB(t, "historyowned"))
	ctx := context.Background()
	e, err := repo.Create(ctx, &models.HistoryEntry{Username: "alice", Question: "Q", Answer: "A", Time: "01-02-2026 10:00"})
	require.NoError(t, err)

	affected, err := repo.DeleteOwned(ctx, e.ID, "bob")
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.DeleteOwned(ctx, e.ID, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DeleteOwned(ctx, e.ID, "alice")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestHistoryRepository_CreateNil(t *testing.T) {
	repo := NewHistoryRepository(testutil.OpenInMemoryDB(t, "historynil"))
	_, err := repo.Create(context.Background(), nil)
	assert.Error(t, err)
}
