package patients

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const serviceName = "patient directory"

type patientDirectoryClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewPatientDirectoryClient(directoryBaseURL string, timeout time.Duration) PatientDirectoryClient {
	return &patientDirectoryClient{
		BaseURL:    directoryBaseURL + "/patients",
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *patientDirectoryClient) Find(ctx context.Context, bearerToken, name, birthdate string) (*models.Patient, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("birthdate", birthdate)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/find?%s", c.BaseURL, query.Encode()), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearerToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, exceptions.ErrRemoteRejection(serviceName, remoteMessage(resp), http.StatusBadGateway)
	}

	patient := new(models.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patient); err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, serviceName)
	}
	if patient.ID == "" {
		return nil, nil
	}
	return patient, nil
}

func (c *patientDirectoryClient) Create(ctx context.Context, bearerToken string, identity models.PatientIdentity) (*models.Patient, error) {
	payload := map[string]string{
		"name":          identity.FullName(),
		"email":         identity.Email,
		"date_of_birth": identity.DateOfBirth,
		"phone_number":  identity.PhoneNumber,
		"notes":         identity.Notes,
	}
	requestJSON, err := json.Marshal(payload)
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
		return nil, exceptions.ErrRemoteRejection(serviceName, remoteMessage(resp), http.StatusBadGateway)
	}

	patient := new(models.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patient); err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, serviceName)
	}
	return patient, nil
}

func remoteMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&payload)
	return payload.Message
}
