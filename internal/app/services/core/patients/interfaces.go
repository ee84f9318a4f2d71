package patients

import (
	"context"

	"aidentify-service/internal/app/models"
)

// PatientReconciler maps a patient identity to a stable directory identifier,
// creating the patient when the directory has no match.
type PatientReconciler interface {
	Resolve(ctx context.Context, bearerToken string, identity models.PatientIdentity) (*models.Patient, error)
}

// PatientDirectoryClient is the remote patient directory. Find returns nil
// without error when no patient matches.
type PatientDirectoryClient interface {
	Find(ctx context.Context, bearerToken, name, birthdate string) (*models.Patient, error)
	Create(ctx context.Context, bearerToken string, identity models.PatientIdentity) (*models.Patient, error)
}
