package models

import "time"

// AnalysisAction is one of the supported remote image-processing operations.
// Each action maps to exactly one processing endpoint and one expected
// response shape.
type AnalysisAction string

const (
	ActionEnhance            AnalysisAction = "enhance"
	ActionColorize           AnalysisAction = "colorize"
	ActionDetectXray         AnalysisAction = "detect_xray"
	ActionDetectMissingTeeth AnalysisAction = "detect_missing_teeth"
)

// ParseAnalysisAction maps a URL segment to an action, reporting whether the
// segment named a known one.
func ParseAnalysisAction(s string) (AnalysisAction, bool) {
	switch AnalysisAction(s) {
	case ActionEnhance, ActionColorize, ActionDetectXray, ActionDetectMissingTeeth:
		return AnalysisAction(s), true
	}
	return "", false
}

// AnalysisState is the workspace lifecycle position.
type AnalysisState string

const (
	StateIdle            AnalysisState = "idle"
	StateReady           AnalysisState = "ready"
	StateProcessing      AnalysisState = "processing"
	StateResultAvailable AnalysisState = "result_available"
)

// ResultKind tags the two shapes a processing response can take.
type ResultKind string

const (
	ResultKindImage     ResultKind = "image"
	ResultKindDetection ResultKind = "detection"
)

// Condition is a single finding from a detection model.
type Condition struct {
	Label             string `json:"condition" bson:"condition"`
	ConfidencePercent int    `json:"confidence" bson:"confidence"`
	Note              string `json:"note,omitempty" bson:"note,omitempty"`
}

// AnalysisResult is the tagged union decided once at the network boundary.
// Kind image carries transformed image bytes and optionally detections; kind
// detection carries detections only. Exactly one result is current per upload.
type AnalysisResult struct {
	Kind       ResultKind     `json:"kind"`
	ImageData  []byte         `json:"image,omitempty"`
	Detections []Condition    `json:"detections,omitempty"`
	Action     AnalysisAction `json:"action"`
	CreatedAt  time.Time      `json:"created_at"`
}

// HasDetections reports whether the result carries at least one finding, the
// precondition for report generation.
func (r *AnalysisResult) HasDetections() bool {
	return r != nil && len(r.Detections) > 0
}

// UploadedImage is the single image a workspace operates on.
type UploadedImage struct {
	Filename    string
	ContentType string
	Data        []byte
}
