package interfaces

import (
	"context"

	"polymesh/internal/domain/entities"
)

type IInstallationRepository interface {
	Create(ctx context.Context, i entities.Installation) (entities.Installation, error)
	GetByID(ctx context.Context, id string) (entities.Installation, error)
	UpdateStatus(ctx context.Context, id string, status entities.InstallationStatus) (entities.Installation, error)
}
