package session

import (
	"context"
	"time"

	"aidentify-service/internal/app/contracts"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const credentialKeyPrefix = "credential:"

type credentialStore struct {
	RedisRepository contracts.RedisRepository
	Lifetime        time.Duration
}

// NewCredentialStore builds the Redis-backed credential store. Lifetime bounds
// how long a stored credential outlives its last login, independent of the
// upstream token's own expiry.
func NewCredentialStore(redisRepository contracts.RedisRepository, lifetime time.Duration) contracts.CredentialStore {
	return &credentialStore{
		RedisRepository: redisRepository,
		Lifetime:        lifetime,
	}
}

func (s *credentialStore) Set(ctx context.Context, sessionID string, credential *models.Credential) error {
	return s.RedisRepository.Set(ctx, credentialKeyPrefix+sessionID, credential, s.Lifetime)
}

func (s *credentialStore) Clear(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, credentialKeyPrefix+sessionID)
}

func (s *credentialStore) Current(ctx context.Context, sessionID string) (*models.Credential, error) {
	data, err := s.RedisRepository.Get(ctx, credentialKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	credential := new(models.Credential)
	if err := json.Unmarshal([]byte(data), credential); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return credential, nil
}
