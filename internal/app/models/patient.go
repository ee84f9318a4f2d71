package models

// PatientIdentity carries the fields collected from the operator, used both as
// report recipient data and as the reconciliation lookup input. The lookup key
// is full name plus birthdate.
type PatientIdentity struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	DateOfBirth       string `json:"date_of_birth"`
	PhoneNumber       string `json:"phone_number,omitempty"`
	ExternalPatientID string `json:"patient_id,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// FullName is the directory lookup name, "First Last".
func (p PatientIdentity) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Patient is a directory record with its stable identifier.
type Patient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
