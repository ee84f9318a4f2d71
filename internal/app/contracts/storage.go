package contracts

import "context"

type Storage interface {
	UploadObject(ctx context.Context, objectName, contentType string, data []byte) (string, error)
	RemoveObject(ctx context.Context, objectName string) error
}
