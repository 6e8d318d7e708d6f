package usecase_test

import (
	"context"

	"catalog-service/internal/core/domain"
)

// fakeCatalogSource отдает фиксированный список или ошибку.
type fakeCatalogSource struct {
	cars []domain.Car
	err  error

	fetchCalls int
}

func (f *fakeCatalogSource) FetchCatalog(ctx context.Context) ([]domain.Car, error) {
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.cars, nil
}

// fakeCompareRepo хранит набор в памяти и считает вызовы Save.
type fakeCompareRepo struct {
	set       domain.CompareSet
	loadErr   error
	saveErr   error
	saveCalls int
}

func (f *fakeCompareRepo) Load(ctx context.Context) (domain.CompareSet, error) {
	if f.loadErr != nil {
		return domain.CompareSet{}, f.loadErr
	}
	return f.set, nil
}

func (f *fakeCompareRepo) Save(ctx context.Context, set domain.CompareSet) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.set = set
	return nil
}

// fakeViewStateRepo хранит состояния в карте по ключу записи.
type fakeViewStateRepo struct {
	states    map[string]domain.ViewState
	saveCalls int
}

func newFakeViewStateRepo() *fakeViewStateRepo {
	return &fakeViewStateRepo{states: make(map[string]domain.ViewState)}
}

func (f *fakeViewStateRepo) Load(ctx context.Context, entryKey string) (domain.ViewState, error) {
	return f.states[entryKey], nil
}

func (f *fakeViewStateRepo) Save(ctx context.Context, entryKey string, state domain.ViewState) error {
	f.saveCalls++
	f.states[entryKey] = state
	return nil
}
