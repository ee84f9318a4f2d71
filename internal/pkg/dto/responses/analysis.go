package responses

import (
	"encoding/base64"

	"aidentify-service/internal/app/models"
)

// AnalysisResult is the client view of the current workspace result. Image
// bytes travel base64-encoded, matching the processing collaborator's shape.
type AnalysisResult struct {
	State      string             `json:"state"`
	Kind       string             `json:"kind,omitempty"`
	Image      string             `json:"image,omitempty"`
	Detections []models.Condition `json:"detections,omitempty"`
	Action     string             `json:"action,omitempty"`
	Timestamp  string             `json:"timestamp,omitempty"`
}

// NewAnalysisResult maps the workspace snapshot onto the response shape.
func NewAnalysisResult(state models.AnalysisState, result *models.AnalysisResult) *AnalysisResult {
	response := &AnalysisResult{State: string(state)}
	if result == nil {
		return response
	}
	response.Kind = string(result.Kind)
	response.Detections = result.Detections
	response.Action = string(result.Action)
	response.Timestamp = result.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	if len(result.ImageData) > 0 {
		response.Image = base64.StdEncoding.EncodeToString(result.ImageData)
	}
	return response
}

// SaveRecord confirms a persisted scan.
type SaveRecord struct {
	ScanID    string `json:"scan_id"`
	PatientID string `json:"patient_id"`
}
