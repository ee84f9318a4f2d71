package models

import "time"

const (
	ActivityLogin      = "login"
	ActivityAnalysis   = "analysis"
	ActivityReportSent = "report_sent"
	ActivityScanSaved  = "scan_saved"
)

// Activity is one audit-trail entry.
type Activity struct {
	OperatorID string    `json:"operator_id" bson:"operator_id"`
	Operator   string    `json:"operator" bson:"operator"`
	Action     string    `json:"action" bson:"action"`
	Detail     string    `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
