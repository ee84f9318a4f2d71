package analysis

import (
	"context"
	"fmt"
	"sync"

	"aidentify-service/internal/app/contracts"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/app/services/core/patients"
	"aidentify-service/internal/app/services/core/reports"
	"aidentify-service/internal/app/services/core/scans"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/exceptions"
	"aidentify-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// workspace is one operator session's analysis state. inflightCall tags the
// latest processing call; a completion whose tag no longer matches is stale
// and must not touch the workspace.
type workspace struct {
	mu           sync.Mutex
	state        models.AnalysisState
	image        *models.UploadedImage
	result       *models.AnalysisResult
	inflightCall string
}

type analysisUsecase struct {
	Log               *zap.Logger
	ProcessingClient  ProcessingClient
	Reconciler        patients.PatientReconciler
	ScanPersister     scans.ScanPersister
	MailerService     contracts.MailerService
	ActivityRecorder  contracts.ActivityRecorder
	MaxUploadSizeInMB int64

	mu         sync.Mutex
	workspaces map[string]*workspace
}

func NewAnalysisUsecase(
	logger *zap.Logger,
	processingClient ProcessingClient,
	reconciler patients.PatientReconciler,
	scanPersister scans.ScanPersister,
	mailerService contracts.MailerService,
	activityRecorder contracts.ActivityRecorder,
	maxUploadSizeInMB int64,
) AnalysisUsecase {
	return &analysisUsecase{
		Log:               logger,
		ProcessingClient:  processingClient,
		Reconciler:        reconciler,
		ScanPersister:     scanPersister,
		MailerService:     mailerService,
		ActivityRecorder:  activityRecorder,
		MaxUploadSizeInMB: maxUploadSizeInMB,
		workspaces:        make(map[string]*workspace),
	}
}

func (uc *analysisUsecase) workspaceFor(sessionID string) *workspace {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	ws, ok := uc.workspaces[sessionID]
	if !ok {
		ws = &workspace{state: models.StateIdle}
		uc.workspaces[sessionID] = ws
	}
	return ws
}

// SelectImage is allowed from any state. It discards the previous result and
// invalidates any in-flight completion by rotating the call tag.
func (uc *analysisUsecase) SelectImage(ctx context.Context, sessionID string, image *models.UploadedImage) error {
	if err := utils.ValidateImageFormat(image.Filename, utils.AllowedScanFormats); err != nil {
		return exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(image.Data, uc.MaxUploadSizeInMB); err != nil {
		return exceptions.ErrImageTooLarge(err)
	}

	ws := uc.workspaceFor(sessionID)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.image = image
	ws.result = nil
	ws.inflightCall = ""
	ws.state = models.StateReady
	return nil
}

// RunAction issues exactly one processing call. It is rejected without a
// network call when no image is selected or another action is in flight.
func (uc *analysisUsecase) RunAction(ctx context.Context, sessionID string, credential *models.Credential, action models.AnalysisAction) (*models.AnalysisResult, error) {
	if credential == nil || credential.Token == "" {
		return nil, exceptions.ErrNoCredential(nil)
	}

	ws := uc.workspaceFor(sessionID)

	ws.mu.Lock()
	if ws.image == nil {
		ws.mu.Unlock()
		return nil, exceptions.ErrNoImageSelected()
	}
	if ws.state == models.StateProcessing {
		ws.mu.Unlock()
		return nil, exceptions.ErrActionInFlight()
	}
	callID := uuid.New().String()
	ws.inflightCall = callID
	ws.state = models.StateProcessing
	image := ws.image
	ws.mu.Unlock()

	result, err := uc.ProcessingClient.Process(ctx, credential.Token, action, image)

	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.inflightCall != callID {
		// A newer upload superseded this call while it was in flight.
		return nil, exceptions.ErrResultSuperseded()
	}
	ws.inflightCall = ""

	if err != nil {
		// Prior result stays; the workspace returns to its last stable state.
		ws.state = models.StateReady
		return nil, err
	}

	ws.result = result
	ws.state = models.StateResultAvailable

	uc.ActivityRecorder.Record(ctx, credential, models.ActivityAnalysis, string(action))

	return result, nil
}

func (uc *analysisUsecase) CurrentResult(sessionID string) (models.AnalysisState, *models.AnalysisResult) {
	ws := uc.workspaceFor(sessionID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.state, ws.result
}

// RequestReport emails the current detections to the patient. It is rejected
// locally, without contacting the network, unless a result with detections is
// available.
func (uc *analysisUsecase) RequestReport(ctx context.Context, sessionID string, credential *models.Credential, identity models.PatientIdentity) (string, error) {
	if credential == nil || credential.Token == "" {
		return "", exceptions.ErrNoCredential(nil)
	}

	ws := uc.workspaceFor(sessionID)

	ws.mu.Lock()
	if ws.state != models.StateResultAvailable || !ws.result.HasDetections() {
		ws.mu.Unlock()
		return "", exceptions.ErrNoDetectionsForReport()
	}
	result := ws.result
	ws.mu.Unlock()

	payload := reports.BuildReportEmail(identity, result)
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		return "", err
	}

	uc.ActivityRecorder.Record(ctx, credential, models.ActivityReportSent, identity.Email)

	return fmt.Sprintf(constvars.ReportSentSuccessFormat, identity.Email), nil
}

// RequestSaveRecord runs reconciliation then persistence. Saving requires a
// selected image but not a completed analysis. Any failure aborts the whole
// workflow; no partial record is ever confirmed.
func (uc *analysisUsecase) RequestSaveRecord(ctx context.Context, sessionID string, credential *models.Credential, identity models.PatientIdentity) (*models.ScanRecord, error) {
	if credential == nil || credential.Token == "" {
		return nil, exceptions.ErrNoCredential(nil)
	}

	ws := uc.workspaceFor(sessionID)

	ws.mu.Lock()
	if ws.image == nil {
		ws.mu.Unlock()
		return nil, exceptions.ErrNoImageSelected()
	}
	image := ws.image
	ws.mu.Unlock()

	patient, err := uc.Reconciler.Resolve(ctx, credential.Token, identity)
	if err != nil {
		return nil, err
	}

	record, err := uc.ScanPersister.Save(ctx, credential.Token, image, patient.ID, credential.Claims.UserID)
	if err != nil {
		return nil, err
	}

	uc.ActivityRecorder.Record(ctx, credential, models.ActivityScanSaved, patient.ID)

	uc.Log.Info("scan record saved",
		zap.String("patient_id", patient.ID),
		zap.String("operator_id", credential.Claims.UserID),
	)
	return record, nil
}
