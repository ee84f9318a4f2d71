package analysis

import (
	"fmt"
	"io"
	"net/http"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/dto/requests"
	"aidentify-service/internal/pkg/dto/responses"
	"aidentify-service/internal/pkg/exceptions"
	"aidentify-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const uploadFieldName = "image"

type AnalysisController struct {
	Log               *zap.Logger
	AnalysisUsecase   AnalysisUsecase
	MaxUploadSizeInMB int64
}

func NewAnalysisController(logger *zap.Logger, analysisUsecase AnalysisUsecase, maxUploadSizeInMB int64) *AnalysisController {
	return &AnalysisController{
		Log:               logger,
		AnalysisUsecase:   analysisUsecase,
		MaxUploadSizeInMB: maxUploadSizeInMB,
	}
}

func (ctrl *AnalysisController) sessionID(r *http.Request) string {
	return r.Context().Value(constvars.ContextSessionIDKey).(string)
}

func (ctrl *AnalysisController) credential(r *http.Request) *models.Credential {
	credential, _ := r.Context().Value(constvars.ContextCredentialKey).(*models.Credential)
	return credential
}

// SelectImage accepts a multipart upload and stages it in the session workspace.
func (ctrl *AnalysisController) SelectImage(w http.ResponseWriter, r *http.Request) {
	maxBytes := ctrl.MaxUploadSizeInMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	image := &models.UploadedImage{
		Filename:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Data:        data,
	}

	if err := ctrl.AnalysisUsecase.SelectImage(r.Context(), ctrl.sessionID(r), image); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ImageSelectedSuccessMessage, nil)
}

// RunAction triggers one processing action named in the URL.
func (ctrl *AnalysisController) RunAction(w http.ResponseWriter, r *http.Request) {
	actionParam := chi.URLParam(r, "action")
	action, ok := models.ParseAnalysisAction(actionParam)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("unknown analysis action %q", actionParam)))
		return
	}

	result, err := ctrl.AnalysisUsecase.RunAction(r.Context(), ctrl.sessionID(r), ctrl.credential(r), action)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.NewAnalysisResult(models.StateResultAvailable, result)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalysisSuccessMessage, response)
}

// CurrentResult returns the workspace state and, when available, its result.
func (ctrl *AnalysisController) CurrentResult(w http.ResponseWriter, r *http.Request) {
	state, result := ctrl.AnalysisUsecase.CurrentResult(ctrl.sessionID(r))
	response := responses.NewAnalysisResult(state, result)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResultSuccessMessage, response)
}

// RequestReport emails the current detections to the supplied patient.
func (ctrl *AnalysisController) RequestReport(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PatientIdentity)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizePatientIdentityRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	message, err := ctrl.AnalysisUsecase.RequestReport(r.Context(), ctrl.sessionID(r), ctrl.credential(r), request.ToModel())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
}

// RequestSaveRecord persists the staged image as a scan tied to a patient.
func (ctrl *AnalysisController) RequestSaveRecord(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PatientIdentity)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizePatientIdentityRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	record, err := ctrl.AnalysisUsecase.RequestSaveRecord(r.Context(), ctrl.sessionID(r), ctrl.credential(r), request.ToModel())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.SaveRecord{
		ScanID:    record.ID,
		PatientID: record.PatientID,
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SaveRecordSuccessMessage, response)
}
