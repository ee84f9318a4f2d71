package activities

import (
	"net/http"
	"strconv"

	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ActivityController struct {
	Log             *zap.Logger
	ActivityUsecase ActivityUsecase
}

func NewActivityController(logger *zap.Logger, activityUsecase ActivityUsecase) *ActivityController {
	return &ActivityController{
		Log:             logger,
		ActivityUsecase: activityUsecase,
	}
}

func (ctrl *ActivityController) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	activities, err := ctrl.ActivityUsecase.List(r.Context(), limit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetActivitiesSuccessMessage, activities)
}
