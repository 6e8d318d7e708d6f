package domain_test

import (
	"testing"

	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSetAdd(t *testing.T) {
	var set domain.CompareSet

	outcome, err := set.Add(domain.Car{ID: 1, Name: "first"})
	require.NoError(t, err)
	assert.False(t, outcome.ReachedCompareThreshold)
	assert.False(t, set.CompareReady())

	// Порог срабатывает ровно на втором добавлении.
	outcome, err = set.Add(domain.Car{ID: 2, Name: "second"})
	require.NoError(t, err)
	assert.True(t, outcome.ReachedCompareThreshold)
	assert.True(t, set.CompareReady())

	// На третьем — уже нет.
	outcome, err = set.Add(domain.Car{ID: 3, Name: "third"})
	require.NoError(t, err)
	assert.False(t, outcome.ReachedCompareThreshold)

	assert.Equal(t, 3, set.Size())
}

func TestCompareSetRejectsDuplicate(t *testing.T) {
	var set domain.CompareSet

	_, err := set.Add(domain.Car{ID: 1})
	require.NoError(t, err)

	_, err = set.Add(domain.Car{ID: 1})
	assert.ErrorIs(t, err, domain.ErrAlreadyCompared)
	assert.Equal(t, 1, set.Size())
}

func TestCompareSetCapacity(t *testing.T) {
	var set domain.CompareSet

	for i := 1; i <= domain.CompareCapacity; i++ {
		_, err := set.Add(domain.Car{ID: i})
		require.NoError(t, err)
	}

	_, err := set.Add(domain.Car{ID: domain.CompareCapacity + 1})
	assert.ErrorIs(t, err, domain.ErrCompareFull)
	assert.Equal(t, domain.CompareCapacity, set.Size())
}

func TestCompareSetRemove(t *testing.T) {
	var set domain.CompareSet
	for i := 1; i <= 3; i++ {
		_, err := set.Add(domain.Car{ID: i})
		require.NoError(t, err)
	}

	set.Remove(2)
	assert.Equal(t, 2, set.Size())
	assert.False(t, set.Contains(2))

	// Порядок оставшихся — порядок вставки.
	assert.Equal(t, []int{1, 3}, carIDs(set.Cars))

	// Удаление отсутствующего — no-op.
	set.Remove(99)
	assert.Equal(t, 2, set.Size())
}

func TestCompareSetKeepsSnapshots(t *testing.T) {
	var set domain.CompareSet

	car := domain.Car{ID: 1, Name: "original", Year: 2022}
	_, err := set.Add(car)
	require.NoError(t, err)

	// Последующее изменение исходной структуры не трогает снимок.
	car.Name = "mutated"
	car.Year = 1999

	assert.Equal(t, "original", set.Cars[0].Name)
	assert.Equal(t, 2022, set.Cars[0].Year)
}
