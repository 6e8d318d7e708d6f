package usecase_test

import (
	"context"
	"testing"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewStateFullCycle(t *testing.T) {
	repo := newFakeViewStateRepo()
	save := usecase.NewSaveViewStateUseCase(repo)
	restore := usecase.NewRestoreViewStateUseCase(repo)
	complete := usecase.NewCompleteRestoreUseCase(repo)
	ctx := context.Background()

	// Уход со страницы: снимок записан.
	err := save.Execute(ctx, "entry-1", domain.ViewSnapshot{
		Page:         2,
		Status:       domain.StatusFilterAvailable,
		Currency:     domain.CurrencyAED,
		ScrollOffset: 1500.5,
		Params:       map[string]string{"make": "bmw"},
	})
	require.NoError(t, err)

	// Возврат: снимок потребляется ровно один раз.
	snap, err := restore.Execute(ctx, "entry-1")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Page)
	assert.Equal(t, domain.CurrencyAED, snap.Currency)
	assert.InDelta(t, 1500.5, snap.ScrollOffset, 0.001)

	_, err = restore.Execute(ctx, "entry-1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	// Пока восстановление не завершено, записи подавляются.
	err = save.Execute(ctx, "entry-1", domain.ViewSnapshot{Page: 99})
	require.NoError(t, err)
	_, err = restore.Execute(ctx, "entry-1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	// После завершения цикл начинается заново.
	require.NoError(t, complete.Execute(ctx, "entry-1"))
	require.NoError(t, save.Execute(ctx, "entry-1", domain.ViewSnapshot{Page: 7}))

	snap, err = restore.Execute(ctx, "entry-1")
	require.NoError(t, err)
	assert.Equal(t, 7, snap.Page)
}

func TestRestoreUnknownEntry(t *testing.T) {
	repo := newFakeViewStateRepo()
	restore := usecase.NewRestoreViewStateUseCase(repo)

	_, err := restore.Execute(context.Background(), "never-seen")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestCompleteRestoreIdleIsNoop(t *testing.T) {
	repo := newFakeViewStateRepo()
	complete := usecase.NewCompleteRestoreUseCase(repo)

	err := complete.Execute(context.Background(), "entry-1")
	require.NoError(t, err)
	assert.Zero(t, repo.saveCalls)
}

func TestViewStateEntriesAreIndependent(t *testing.T) {
	repo := newFakeViewStateRepo()
	save := usecase.NewSaveViewStateUseCase(repo)
	restore := usecase.NewRestoreViewStateUseCase(repo)
	ctx := context.Background()

	require.NoError(t, save.Execute(ctx, "entry-a", domain.ViewSnapshot{Page: 1}))
	require.NoError(t, save.Execute(ctx, "entry-b", domain.ViewSnapshot{Page: 2}))

	snap, err := restore.Execute(ctx, "entry-b")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Page)

	// Потребление снимка одной записи не трогает другую.
	snap, err = restore.Execute(ctx, "entry-a")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Page)
}
