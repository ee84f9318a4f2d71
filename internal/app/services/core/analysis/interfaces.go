package analysis

import (
	"context"

	"aidentify-service/internal/app/models"
)

// AnalysisUsecase drives the image lifecycle for one operator session: accept
// an image, run one processing action at a time, and expose the follow-on
// report and persistence workflows.
type AnalysisUsecase interface {
	SelectImage(ctx context.Context, sessionID string, image *models.UploadedImage) error
	RunAction(ctx context.Context, sessionID string, credential *models.Credential, action models.AnalysisAction) (*models.AnalysisResult, error)
	CurrentResult(sessionID string) (models.AnalysisState, *models.AnalysisResult)
	RequestReport(ctx context.Context, sessionID string, credential *models.Credential, identity models.PatientIdentity) (string, error)
	RequestSaveRecord(ctx context.Context, sessionID string, credential *models.Credential, identity models.PatientIdentity) (*models.ScanRecord, error)
}

// ProcessingClient calls the remote AI processing service. The response is
// normalized into the tagged AnalysisResult at this boundary and never
// re-inspected downstream.
type ProcessingClient interface {
	Process(ctx context.Context, bearerToken string, action models.AnalysisAction, image *models.UploadedImage) (*models.AnalysisResult, error)
}
