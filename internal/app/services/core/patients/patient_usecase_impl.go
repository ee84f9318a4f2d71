package patients

import (
	"context"

	"aidentify-service/internal/app/models"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Log             *zap.Logger
	DirectoryClient PatientDirectoryClient
}

func NewPatientUsecase(logger *zap.Logger, directoryClient PatientDirectoryClient) PatientReconciler {
	return &patientUsecase{
		Log:             logger,
		DirectoryClient: directoryClient,
	}
}

// Resolve looks the patient up by name and birthdate and creates one from the
// full identity when nothing matches. Read-then-maybe-write: two clients
// resolving the same new patient concurrently can both create one. The
// directory owns uniqueness, not this side.
func (uc *patientUsecase) Resolve(ctx context.Context, bearerToken string, identity models.PatientIdentity) (*models.Patient, error) {
	existing, err := uc.DirectoryClient.Find(ctx, bearerToken, identity.FullName(), identity.DateOfBirth)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created, err := uc.DirectoryClient.Create(ctx, bearerToken, identity)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("created new patient during reconciliation",
		zap.String("patient_id", created.ID),
	)
	return created, nil
}
