package scans

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const serviceName = "scan directory"

type scanDirectoryClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewScanDirectoryClient(directoryBaseURL string, timeout time.Duration) ScanDirectoryClient {
	return &scanDirectoryClient{
		BaseURL:    directoryBaseURL + "/scans",
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *scanDirectoryClient) Create(ctx context.Context, bearerToken string, record *models.ScanRecord) (*models.ScanRecord, error) {
	requestJSON, err := json.Marshal(record)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearerToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var payload struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&payload)
		return nil, exceptions.ErrRemoteRejection(serviceName, payload.Message, http.StatusBadGateway)
	}

	created := new(models.ScanRecord)
	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, serviceName)
	}
	return created, nil
}
