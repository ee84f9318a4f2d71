package scans

import (
	"context"

	"aidentify-service/internal/app/models"
)

// ScanPersister stores an uploaded image and records the scan against a
// resolved patient and the authenticated operator.
type ScanPersister interface {
	Save(ctx context.Context, bearerToken string, image *models.UploadedImage, patientID, operatorID string) (*models.ScanRecord, error)
}

// ScanDirectoryClient is the remote scan directory.
type ScanDirectoryClient interface {
	Create(ctx context.Context, bearerToken string, record *models.ScanRecord) (*models.ScanRecord, error)
}
