package requests

import "aidentify-service/internal/app/models"

// PatientIdentity is the collaborator-form payload used both for report
// recipients and for scan persistence. Name fields and birthdate are the
// reconciliation lookup key, so they are mandatory; the rest enrich the
// directory record.
type PatientIdentity struct {
	FirstName         string `json:"first_name" validate:"required"`
	LastName          string `json:"last_name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	DateOfBirth       string `json:"date_of_birth" validate:"required,birthdate"`
	PhoneNumber       string `json:"phone_number"`
	ExternalPatientID string `json:"patient_id"`
	Notes             string `json:"notes"`
}

// ToModel maps the request onto the domain identity.
func (r *PatientIdentity) ToModel() models.PatientIdentity {
	return models.PatientIdentity{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             r.Email,
		DateOfBirth:       r.DateOfBirth,
		PhoneNumber:       r.PhoneNumber,
		ExternalPatientID: r.ExternalPatientID,
		Notes:             r.Notes,
	}
}
