package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const serviceName = "processing service"

// Each action maps to exactly one endpoint.
var actionEndpoints = map[models.AnalysisAction]string{
	models.ActionEnhance:            "/process/enhance",
	models.ActionColorize:           "/process/colorize",
	models.ActionDetectXray:         "/dental/analyze",
	models.ActionDetectMissingTeeth: "/detect/missing-teeth",
}

// processingResponse is the heterogeneous wire shape: a transform endpoint
// populates image (plus optional findings), a detection endpoint populates
// results only.
type processingResponse struct {
	Image   string             `json:"image"`
	Results []models.Condition `json:"results"`
	Message string             `json:"message"`
}

type processingClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewProcessingClient(processingBaseURL string, timeout time.Duration) ProcessingClient {
	return &processingClient{
		BaseURL:    processingBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *processingClient) Process(ctx context.Context, bearerToken string, action models.AnalysisAction, image *models.UploadedImage) (*models.AnalysisResult, error) {
	endpoint, ok := actionEndpoints[action]
	if !ok {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown analysis action %q", action))
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if err := writer.Close(); err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseURL+endpoint, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearerToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	decoded := new(processingResponse)
	if err := json.NewDecoder(resp.Body).Decode(decoded); err != nil {
		return nil, exceptions.ErrDecodeRemoteResponse(err, serviceName)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, exceptions.ErrRemoteRejection(serviceName, decoded.Message, http.StatusBadGateway)
	}

	return normalizeResponse(action, decoded)
}

// normalizeResponse decides the tagged union once: an image payload implies
// kind image, a bare detection list implies kind detection.
func normalizeResponse(action models.AnalysisAction, decoded *processingResponse) (*models.AnalysisResult, error) {
	result := &models.AnalysisResult{
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}

	switch {
	case decoded.Image != "":
		imageData, err := base64.StdEncoding.DecodeString(decoded.Image)
		if err != nil {
			return nil, exceptions.ErrDecodeRemoteResponse(err, serviceName)
		}
		result.Kind = models.ResultKindImage
		result.ImageData = imageData
		result.Detections = decoded.Results
	case decoded.Results != nil:
		result.Kind = models.ResultKindDetection
		result.Detections = decoded.Results
	default:
		return nil, exceptions.ErrDecodeRemoteResponse(fmt.Errorf("response carries neither image nor results"), serviceName)
	}

	return result, nil
}
