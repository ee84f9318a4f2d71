package activities

import (
	"context"
	"time"

	"aidentify-service/internal/app/contracts"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type activityUsecase struct {
	Log                *zap.Logger
	ActivityRepository contracts.ActivityRepository
}

func NewActivityUsecase(logger *zap.Logger, activityRepository contracts.ActivityRepository) ActivityUsecase {
	return &activityUsecase{
		Log:                logger,
		ActivityRepository: activityRepository,
	}
}

func (uc *activityUsecase) List(ctx context.Context, limit int64) ([]models.Activity, error) {
	if limit <= 0 {
		limit = constvars.ActivityDefaultListLimit
	}
	return uc.ActivityRepository.FindRecent(ctx, limit)
}

// Record writes one audit entry. Failures are logged and swallowed so a broken
// audit store never blocks the operator's workflow.
func (uc *activityUsecase) Record(ctx context.Context, credential *models.Credential, action, detail string) {
	if credential == nil {
		return
	}
	activity := &models.Activity{
		OperatorID: credential.Claims.UserID,
		Operator:   credential.Claims.Name,
		Action:     action,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.ActivityRepository.Insert(ctx, activity); err != nil {
		uc.Log.Warn("activity record failed",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
