package auth

import (
	"context"
	"time"

	"aidentify-service/internal/app/config"
	"aidentify-service/internal/app/contracts"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/dto/requests"
	"aidentify-service/internal/pkg/dto/responses"
	"aidentify-service/internal/pkg/exceptions"
	"aidentify-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type authUsecase struct {
	CredentialStore  contracts.CredentialStore
	AuthGateway      AuthGatewayClient
	ActivityRecorder contracts.ActivityRecorder
	InternalConfig   *config.InternalConfig
}

func NewAuthUsecase(
	credentialStore contracts.CredentialStore,
	authGateway AuthGatewayClient,
	activityRecorder contracts.ActivityRecorder,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		CredentialStore:  credentialStore,
		AuthGateway:      authGateway,
		ActivityRecorder: activityRecorder,
		InternalConfig:   internalConfig,
	}
}

// Login authenticates against the remote auth service, replaces the stored
// credential wholesale under a fresh session ID, and hands back a gateway
// token wrapping that session.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	upstream, err := uc.AuthGateway.Login(ctx, request)
	if err != nil {
		return nil, err
	}

	claims, err := utils.DecodeCredentialClaims(upstream.Token)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	credential := &models.Credential{
		Token:  upstream.Token,
		Claims: claims,
	}

	sessionID := uuid.New().String()
	if err := uc.CredentialStore.Set(ctx, sessionID, credential); err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	tokenString, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, ttl)
	if err != nil {
		return nil, err
	}

	uc.ActivityRecorder.Record(ctx, credential, models.ActivityLogin, "")

	return &responses.Login{
		Token: tokenString,
		User:  upstream.User,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.CredentialStore.Clear(ctx, sessionID)
}

func (uc *authUsecase) Register(ctx context.Context, sessionID string, request *requests.Register) (map[string]interface{}, error) {
	token, err := uc.bearerToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.AuthGateway.Register(ctx, token, request)
}

func (uc *authUsecase) Profile(ctx context.Context, sessionID string) (map[string]interface{}, error) {
	token, err := uc.bearerToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.AuthGateway.Profile(ctx, token)
}

func (uc *authUsecase) ChangePassword(ctx context.Context, sessionID string, request *requests.ChangePassword) error {
	token, err := uc.bearerToken(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.AuthGateway.ChangePassword(ctx, token, request)
}

// bearerToken short-circuits locally when no usable credential exists instead
// of issuing an unauthenticated remote call that is expected to fail.
func (uc *authUsecase) bearerToken(ctx context.Context, sessionID string) (string, error) {
	credential, err := uc.CredentialStore.Current(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if credential == nil || credential.Token == "" {
		return "", exceptions.ErrNoCredential(nil)
	}
	return credential.Token, nil
}
