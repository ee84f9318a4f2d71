package contracts

import (
	"context"

	"aidentify-service/internal/app/models"
)

// CredentialStore owns the upstream bearer credential per gateway session.
// Set replaces the whole record atomically, Clear removes it, Current returns
// nil without error when nothing is stored. No partial updates exist.
type CredentialStore interface {
	Set(ctx context.Context, sessionID string, credential *models.Credential) error
	Clear(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (*models.Credential, error)
}
