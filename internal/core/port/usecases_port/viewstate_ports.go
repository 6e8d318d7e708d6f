package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type SaveViewStateUseCasePort interface {
	Execute(ctx context.Context, entryKey string, snapshot domain.ViewSnapshot) error
}

type RestoreViewStateUseCasePort interface {
	Execute(ctx context.Context, entryKey string) (*domain.ViewSnapshot, error)
}

type CompleteRestoreUseCasePort interface {
	Execute(ctx context.Context, entryKey string) error
}
