package activities

import (
	"context"

	"aidentify-service/internal/app/contracts"
	"aidentify-service/internal/app/models"
)

// ActivityUsecase combines the admin read side of the audit trail with the
// recorder used by the workflow usecases.
type ActivityUsecase interface {
	contracts.ActivityRecorder
	List(ctx context.Context, limit int64) ([]models.Activity, error)
}
