package contracts

import (
	"context"

	"aidentify-service/internal/app/models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *models.Activity) error
	FindRecent(ctx context.Context, limit int64) ([]models.Activity, error)
}

// ActivityRecorder is the write-side used by the workflow usecases. Recording
// is best effort; failures are logged, never surfaced to the operator.
type ActivityRecorder interface {
	Record(ctx context.Context, credential *models.Credential, action, detail string)
}
