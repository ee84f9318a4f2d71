package scans

import (
	"context"
	"path/filepath"

	"aidentify-service/internal/app/contracts"
	"aidentify-service/internal/app/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type scanUsecase struct {
	Log             *zap.Logger
	Storage         contracts.Storage
	DirectoryClient ScanDirectoryClient
}

func NewScanUsecase(logger *zap.Logger, storage contracts.Storage, directoryClient ScanDirectoryClient) ScanPersister {
	return &scanUsecase{
		Log:             logger,
		Storage:         storage,
		DirectoryClient: directoryClient,
	}
}

// Save uploads the image bytes and creates the directory record referencing
// the stored object. The operator ID always comes from the caller's
// credential, never from request input. When the record create fails the
// uploaded object is removed again so no half-saved scan is left behind.
func (uc *scanUsecase) Save(ctx context.Context, bearerToken string, image *models.UploadedImage, patientID, operatorID string) (*models.ScanRecord, error) {
	objectName := uuid.New().String() + filepath.Ext(image.Filename)

	if _, err := uc.Storage.UploadObject(ctx, objectName, image.ContentType, image.Data); err != nil {
		return nil, err
	}

	record := &models.ScanRecord{
		ObjectName: objectName,
		PatientID:  patientID,
		OperatorID: operatorID,
	}

	created, err := uc.DirectoryClient.Create(ctx, bearerToken, record)
	if err != nil {
		if removeErr := uc.Storage.RemoveObject(ctx, objectName); removeErr != nil {
			uc.Log.Warn("could not remove orphaned scan object",
				zap.String("object_name", objectName),
				zap.Error(removeErr),
			)
		}
		return nil, err
	}

	return created, nil
}
