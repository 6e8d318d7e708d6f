package usecase_test

import (
	"context"
	"errors"
	"testing"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToComparePersistsSnapshot(t *testing.T) {
	source := &fakeCatalogSource{cars: sampleCatalog()}
	repo := &fakeCompareRepo{}
	uc := usecase.NewAddToCompareUseCase(source, repo)

	outcome, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, outcome.ReachedCompareThreshold)
	assert.Equal(t, 1, repo.saveCalls)
	require.Equal(t, 1, repo.set.Size())

	// В наборе лежит полный снимок, а не только ID.
	assert.Equal(t, "Mercedes-Benz G63", repo.set.Cars[0].Name)

	// Второе добавление достигает порога сравнения.
	outcome, err = uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, outcome.ReachedCompareThreshold)
}

func TestAddToCompareDuplicateDoesNotPersist(t *testing.T) {
	source := &fakeCatalogSource{cars: sampleCatalog()}
	repo := &fakeCompareRepo{}
	uc := usecase.NewAddToCompareUseCase(source, repo)

	_, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompared)
	// Отказ не приводит к повторному сохранению.
	assert.Equal(t, 1, repo.saveCalls)
}

func TestAddToCompareFull(t *testing.T) {
	cars := make([]domain.Car, domain.CompareCapacity+1)
	for i := range cars {
		cars[i] = domain.Car{ID: i + 1, Name: "car"}
	}
	source := &fakeCatalogSource{cars: cars}
	repo := &fakeCompareRepo{}
	uc := usecase.NewAddToCompareUseCase(source, repo)

	for i := 1; i <= domain.CompareCapacity; i++ {
		_, err := uc.Execute(context.Background(), i)
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), domain.CompareCapacity+1)
	assert.ErrorIs(t, err, domain.ErrCompareFull)
	assert.Equal(t, domain.CompareCapacity, repo.set.Size())
}

func TestAddToCompareUnknownCar(t *testing.T) {
	source := &fakeCatalogSource{cars: sampleCatalog()}
	repo := &fakeCompareRepo{}
	uc := usecase.NewAddToCompareUseCase(source, repo)

	_, err := uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
	assert.Zero(t, repo.saveCalls)
}

func TestAddToCompareCatalogDown(t *testing.T) {
	source := &fakeCatalogSource{err: errors.New("boom")}
	repo := &fakeCompareRepo{}
	uc := usecase.NewAddToCompareUseCase(source, repo)

	_, err := uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestRemoveFromCompare(t *testing.T) {
	repo := &fakeCompareRepo{}
	repo.set.Add(domain.Car{ID: 1})
	repo.set.Add(domain.Car{ID: 2})
	uc := usecase.NewRemoveFromCompareUseCase(repo)

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.set.Size())
	assert.Equal(t, 1, repo.saveCalls)

	// Удаление отсутствующего — успех без повторного сохранения.
	err = uc.Execute(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestGetCompareSetDoesNotTouchCatalog(t *testing.T) {
	repo := &fakeCompareRepo{}
	repo.set.Add(domain.Car{ID: 1, Name: "snapshot"})
	uc := usecase.NewGetCompareSetUseCase(repo)

	set, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, set.Size())
	assert.Equal(t, "snapshot", set.Cars[0].Name)
}
