package models

// ScanRecord associates a stored image with the patient it belongs to and the
// operator who saved it. Created only after reconciliation resolved a patientID;
// OperatorID always comes from the current credential.
type ScanRecord struct {
	ID         string `json:"id,omitempty"`
	ObjectName string `json:"object_name"`
	PatientID  string `json:"patient_id"`
	OperatorID string `json:"operator_id"`
}
