package jsonstore_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir(), "test.json")
	require.NoError(t, err)

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Save(doc{Name: "hello", Count: 7}))

	var loaded doc
	require.NoError(t, store.Load(&loaded))
	assert.Equal(t, doc{Name: "hello", Count: 7}, loaded)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir(), "missing.json")
	require.NoError(t, err)

	var loaded map[string]string
	require.NoError(t, store.Load(&loaded))
	assert.Nil(t, loaded)
}

func TestStoreSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "state.json")
	require.NoError(t, err)

	require.NoError(t, store.Save(map[string]int{"a": 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())

	_, err = os.Stat(filepath.Join(dir, "state.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestCompareRepositoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewCompareRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	// Пустое хранилище — пустой набор, не ошибка.
	set, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, set.Size())

	price := 100000.0
	_, err = set.Add(domain.Car{ID: 1, Name: "snapshot", PriceUSD: &price})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, set))

	// Повторное чтение тем же репозиторием и новым экземпляром.
	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Size())
	assert.Equal(t, "snapshot", reloaded.Cars[0].Name)

	fresh, err := NewCompareRepository(dir)
	require.NoError(t, err)
	reloaded, err = fresh.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Size())
}

func TestViewStateRepositoryRoundTrip(t *testing.T) {
	repo, err := NewViewStateRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// Неизвестный ключ — пустое состояние Idle.
	state, err := repo.Load(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, state.Snapshot)
	assert.False(t, state.Restoring)

	state.RecordSnapshot(domain.ViewSnapshot{Page: 3, Currency: domain.CurrencyEUR})
	require.NoError(t, repo.Save(ctx, "entry-1", state))

	// Записи независимы по ключам.
	other, err := repo.Load(ctx, "entry-2")
	require.NoError(t, err)
	assert.Nil(t, other.Snapshot)

	loaded, err := repo.Load(ctx, "entry-1")
	require.NoError(t, err)
	require.NotNil(t, loaded.Snapshot)
	assert.Equal(t, 3, loaded.Snapshot.Page)
	assert.Equal(t, domain.CurrencyEUR, loaded.Snapshot.Currency)
}
