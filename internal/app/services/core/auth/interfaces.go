package auth

import (
	"context"

	"aidentify-service/internal/pkg/dto/requests"
	"aidentify-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, sessionID string, request *requests.Register) (map[string]interface{}, error)
	Profile(ctx context.Context, sessionID string) (map[string]interface{}, error)
	ChangePassword(ctx context.Context, sessionID string, request *requests.ChangePassword) error
}

// UpstreamLogin is the auth collaborator's login response: the bearer token
// plus a user summary.
type UpstreamLogin struct {
	Token string                `json:"token"`
	User  responses.UserSummary `json:"user"`
}

// AuthGatewayClient talks to the remote authentication collaborator. Every
// method except Login requires the caller's bearer token.
type AuthGatewayClient interface {
	Login(ctx context.Context, request *requests.Login) (*UpstreamLogin, error)
	Register(ctx context.Context, bearerToken string, request *requests.Register) (map[string]interface{}, error)
	Profile(ctx context.Context, bearerToken string) (map[string]interface{}, error)
	ChangePassword(ctx context.Context, bearerToken string, request *requests.ChangePassword) error
}
