package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"aidentify-service/internal/app/config"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/dto/requests"
	"aidentify-service/internal/pkg/dto/responses"
	"aidentify-service/internal/pkg/exceptions"
	"aidentify-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Set(ctx context.Context, sessionID string, credential *models.Credential) error {
	args := m.Called(ctx, sessionID, credential)
	return args.Error(0)
}

func (m *MockCredentialStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockCredentialStore) Current(ctx context.Context, sessionID string) (*models.Credential, error) {
	args := m.Called(ctx, sessionID)
	credential, _ := args.Get(0).(*models.Credential)
	return credential, args.Error(1)
}

type MockAuthGatewayClient struct {
	mock.Mock
}

func (m *MockAuthGatewayClient) Login(ctx context.Context, request *requests.Login) (*UpstreamLogin, error) {
	args := m.Called(ctx, request)
	upstream, _ := args.Get(0).(*UpstreamLogin)
	return upstream, args.Error(1)
}

func (m *MockAuthGatewayClient) Register(ctx context.Context, bearerToken string, request *requests.Register) (map[string]interface{}, error) {
	args := m.Called(ctx, bearerToken, request)
	result, _ := args.Get(0).(map[string]interface{})
	return result, args.Error(1)
}

func (m *MockAuthGatewayClient) Profile(ctx context.Context, bearerToken string) (map[string]interface{}, error) {
	args := m.Called(ctx, bearerToken)
	result, _ := args.Get(0).(map[string]interface{})
	return result, args.Error(1)
}

func (m *MockAuthGatewayClient) ChangePassword(ctx context.Context, bearerToken string, request *requests.ChangePassword) error {
	args := m.Called(ctx, bearerToken, request)
	return args.Error(0)
}

type stubActivityRecorder struct{}

func (stubActivityRecorder) Record(ctx context.Context, credential *models.Credential, action, detail string) {
}

func upstreamToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     "doctor@example.com",
		"user_id": "user-1",
		"name":    "Dr Test",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return signed
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: "gateway-secret", ExpTimeInHour: 8},
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	request := &requests.Login{Username: "doctor@example.com", Password: "secret123"}

	t.Run("Stores the credential and returns a gateway token", func(t *testing.T) {
		store := new(MockCredentialStore)
		gateway := new(MockAuthGatewayClient)

		token := upstreamToken(t, "doctor")
		gateway.On("Login", mock.Anything, request).Return(&UpstreamLogin{
			Token: token,
			User:  responses.UserSummary{ID: "user-1", Email: "doctor@example.com", Role: "doctor"},
		}, nil).Once()

		var storedSessionID string
		store.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(credential *models.Credential) bool {
			return credential.Token == token && credential.Claims.Role == models.RoleDoctor
		})).Run(func(args mock.Arguments) {
			storedSessionID = args.String(1)
		}).Return(nil).Once()

		usecase := NewAuthUsecase(store, gateway, stubActivityRecorder{}, testInternalConfig())
		response, err := usecase.Login(ctx, request)
		require.NoError(t, err)
		require.NotEmpty(t, response.Token)
		assert.Equal(t, "doctor", response.User.Role)

		// The gateway token wraps the session the credential was stored under.
		sessionID, err := utils.ParseJWT(response.Token, "gateway-secret")
		require.NoError(t, err)
		assert.Equal(t, storedSessionID, sessionID)
		store.AssertExpectations(t)
	})

	t.Run("Upstream rejection propagates and nothing is stored", func(t *testing.T) {
		store := new(MockCredentialStore)
		gateway := new(MockAuthGatewayClient)
		gateway.On("Login", mock.Anything, request).
			Return(nil, exceptions.ErrRemoteRejection("auth service", "Invalid username or password", 401)).Once()

		usecase := NewAuthUsecase(store, gateway, stubActivityRecorder{}, testInternalConfig())
		_, err := usecase.Login(ctx, request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
		assert.Equal(t, "Invalid username or password", customErr.ClientMessage, "upstream message must pass through verbatim")
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Undecodable upstream token fails the login", func(t *testing.T) {
		store := new(MockCredentialStore)
		gateway := new(MockAuthGatewayClient)
		gateway.On("Login", mock.Anything, request).Return(&UpstreamLogin{Token: "not-a-jwt"}, nil).Once()

		usecase := NewAuthUsecase(store, gateway, stubActivityRecorder{}, testInternalConfig())
		_, err := usecase.Login(ctx, request)
		require.Error(t, err)
		store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	store := new(MockCredentialStore)
	gateway := new(MockAuthGatewayClient)
	store.On("Clear", mock.Anything, "session-1").Return(nil).Once()

	usecase := NewAuthUsecase(store, gateway, stubActivityRecorder{}, testInternalConfig())
	require.NoError(t, usecase.Logout(context.Background(), "session-1"))
	store.AssertExpectations(t)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Forwards the stored bearer token", func(t *testing.T) {
		store := new(MockCredentialStore)
		gateway := new(MockAuthGatewayClient)

		token := upstreamToken(t, "doctor")
		store.On("Current", mock.Anything, "session-1").
			Return(&models.Credential{Token: token}, nil).Once()
		gateway.On("Profile", mock.Anything, token).
			Return(map[string]interface{}{"email": "doctor@example.com"}, nil).Once()

		usecase := NewAuthUsecase(store, gateway, stubActivityRecorder{}, testInternalConfig())
		profile, err := usecase.Profile(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, "doctor@example.com", profile["email"])
	})

	t.Run("Logged out session is rejected without a remote call", func(t *testing.T) {
		store := new(MockCredentialStore)
		gateway := new(MockAuthGatewayClient)
		store.On("Current", mock.Anything, "session-1").Return(nil, nil).Once()

		usecase := NewAuthUsecase(store, gateway, stubActivityRecorder{}, testInternalConfig())
		_, err := usecase.Profile(ctx, "session-1")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
		gateway.AssertNotCalled(t, "Profile", mock.Anything, mock.Anything)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Proxied with the admin's bearer token", func(t *testing.T) {
		store := new(MockCredentialStore)
		gateway := new(MockAuthGatewayClient)
		request := &requests.Register{
			Email:    "new@example.com",
			Name:     "New Employee",
			Password: "secret123",
			Role:     "employee",
		}

		token := upstreamToken(t, "admin")
		store.On("Current", mock.Anything, "session-1").
			Return(&models.Credential{Token: token}, nil).Once()
		gateway.On("Register", mock.Anything, token, request).
			Return(map[string]interface{}{"id": "user-2"}, nil).Once()

		usecase := NewAuthUsecase(store, gateway, stubActivityRecorder{}, testInternalConfig())
		result, err := usecase.Register(ctx, "session-1", request)
		require.NoError(t, err)
		assert.Equal(t, "user-2", result["id"])
		gateway.AssertExpectations(t)
	})

	t.Run("Errors from the credential store propagate", func(t *testing.T) {
		store := new(MockCredentialStore)
		gateway := new(MockAuthGatewayClient)
		store.On("Current", mock.Anything, "session-1").
			Return(nil, errors.New("redis unavailable")).Once()

		usecase := NewAuthUsecase(store, gateway, stubActivityRecorder{}, testInternalConfig())
		_, err := usecase.Register(ctx, "session-1", &requests.Register{})
		require.Error(t, err)
	})
}
