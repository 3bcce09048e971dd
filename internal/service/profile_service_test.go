package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/advice-board/internal/repository"
)

func TestSaveHandleIdempotentForSameUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))
	ctx := context.Background()

	got, err := svc.SaveHandle(ctx, "u1", "alex")
	require.NoError(t, err)
	assert.Equal(t, "alex", got)

	// 同一人重复保存同名不报错
	got, err = svc.SaveHandle(ctx, "u1", "alex")
	require.NoError(t, err)
	assert.Equal(t, "alex", got)
}

func TestSaveHandleRename(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))
	ctx := context.Background()

	_, err := svc.SaveHandle(ctx, "u1", "alex")
	require.NoError(t, err)
	_, err = svc.SaveHandle(ctx, "u1", "alexander")
	require.NoError(t, err)

	// upsert 以 id 为键：一人始终只有一行
	p, err := svc.ResolveHandle(ctx, "alexander")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)

	_, err = svc.ResolveHandle(ctx, "alex")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestSaveHandleConflictBetweenUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))
	ctx := context.Background()

	_, err := svc.SaveHandle(ctx, "u1", "alex")
	require.NoError(t, err)

	// 第二个人抢同名 → 冲突，第一个人不受影响
	_, err = svc.SaveHandle(ctx, "u2", "alex")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	p, err := svc.ResolveHandle(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
}

func TestSaveHandleEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repository.NewProfileRepository(db))

	_, err := svc.SaveHandle(context.Background(), "u1", "   ")
	assert.ErrorIs(t, err, ErrEmptyUsername)
}
