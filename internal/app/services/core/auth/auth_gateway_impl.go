package auth

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/dto/requests"
	"aidentify-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const serviceName = "auth service"

type authGatewayClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAuthGatewayClient(authServiceBaseURL string, timeout time.Duration) AuthGatewayClient {
	return &authGatewayClient{
		BaseURL:    authServiceBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *authGatewayClient) Login(ctx context.Context, request *requests.Login) (*UpstreamLogin, error) {
	result := new(UpstreamLogin)
	err := c.postJSON(ctx, c.BaseURL+"/login", "", request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *authGatewayClient) Register(ctx context.Context, bearerToken string, request *requests.Register) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	err := c.postJSON(ctx, c.BaseURL+"/register", bearerToken, request, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *authGatewayClient) Profile(ctx context.Context, bearerToken string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseURL+"/profile", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearerToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteRejection(resp)
	}

	result := map[string]interface{}{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, serviceName)
	}
	return result, nil
}

func (c *authGatewayClient) ChangePassword(ctx context.Context, bearerToken string, request *requests.ChangePassword) error {
	return c.postJSON(ctx, c.BaseURL+"/change-password", bearerToken, request, nil)
}

func (c *authGatewayClient) postJSON(ctx context.Context, url, bearerToken string, body, result interface{}) error {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if bearerToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearerToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= 300 {
		return remoteRejection(resp)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return exceptions.ErrDecodeRemoteResponse(err, serviceName)
	}
	return nil
}

// remoteRejection lifts the collaborator's own message into the error when it
// sent one, otherwise falls back to a generic message.
func remoteRejection(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&payload)

	statusCode := resp.StatusCode
	if statusCode >= 500 {
		statusCode = http.StatusBadGateway
	}
	if payload.Message == "" {
		payload.Message = fmt.Sprintf("%s returned status %d", serviceName, resp.StatusCode)
	}
	return exceptions.ErrRemoteRejection(serviceName, payload.Message, statusCode)
}
