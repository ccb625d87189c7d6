//go:build integration_test || all_tests

package backup

import (
	"testing"

	pkgtesting "github.com/2beens/gymlog/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_SaveThenGet(t *testing.T) {
	ctx, redisClient := pkgtesting.GetRedisClientAndCtx(t)
	repo := NewRepo(redisClient)

	snapshot := validSnapshot()
	snapshot.LastSynced = "2024-02-01T10:05:00Z"
	require.NoError(t, repo.Save(ctx, snapshot))

	stored, err := repo.Get(ctx, snapshot.UserID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, snapshot.UserID, stored.UserID)
	assert.Equal(t, snapshot.LastSynced, stored.LastSynced)
	require.Len(t, stored.Exercises, 1)
	assert.Equal(t, snapshot.Exercises[0].Name, stored.Exercises[0].Name)
	assert.Equal(t, snapshot.Exercises[0].ID.String(), stored.Exercises[0].ID.String())
}

// a second save for the same user fully replaces the first snapshot
func TestRepo_Save_Replaces(t *testing.T) {
	ctx, redisClient := pkgtesting.GetRedisClientAndCtx(t)
	repo := NewRepo(redisClient)

	first := validSnapshot()
	first.LastSynced = "2024-02-01T10:05:00Z"
	require.NoError(t, repo.Save(ctx, first))

	second := validSnapshot()
	second.Exercises = []Exercise{}
	second.Logs = []WorkoutLog{}
	second.LastSynced = "2024-02-02T09:00:00Z"
	require.NoError(t, repo.Save(ctx, second))

	stored, err := repo.Get(ctx, first.UserID)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02T09:00:00Z", stored.LastSynced)
	assert.Empty(t, stored.Exercises)
	assert.Empty(t, stored.Logs)
}

func TestRepo_Get_NeverBackedUp(t *testing.T) {
	ctx, redisClient := pkgtesting.GetRedisClientAndCtx(t)
	repo := NewRepo(redisClient)

	stored, err := repo.Get(ctx, "user-without-backups")
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, ErrBackupNotFound)
}
