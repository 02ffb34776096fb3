package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/infrastructure/storage"
)

func TestUserService_BeginReadAndCancel(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.BeginRead(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingLabelPhoto, user.State)

	user, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestUserService_SetState(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetState(ctx, 2, 20, entity.StateProcessing)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)
}

func TestUserService_ResetState(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.SetState(ctx, 3, 30, entity.StateProcessing)
	require.NoError(t, err)
	require.NoError(t, svc.ResetState(ctx, 3, entity.StateAwaitingLabelPhoto))

	user, err := svc.Get(ctx, 3, 30)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingLabelPhoto, user.State)

	// незнакомый пользователь не создаётся
	require.NoError(t, svc.ResetState(ctx, 4, entity.StateProcessing))
	user, err = svc.Get(ctx, 4, 40)
	require.NoError(t, err)
	require.NotEqual(t, entity.StateProcessing, user.State)
}

func TestUserService_Finish(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.SetState(ctx, 3, 30, entity.StateProcessing)
	require.NoError(t, err)

	user, err := svc.Finish(ctx, 3, 30, []string{"wash; 40", "error"})
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)

	stored, err := svc.Get(ctx, 3, 30)
	require.NoError(t, err)
	require.Equal(t, []string{"wash; 40", "error"}, stored.LastReading)
}
