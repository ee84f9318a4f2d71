package analysis

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAnalysisUsecase struct {
	mock.Mock
}

func (m *MockAnalysisUsecase) SelectImage(ctx context.Context, sessionID string, image *models.UploadedImage) error {
	args := m.Called(ctx, sessionID, image)
	return args.Error(0)
}

func (m *MockAnalysisUsecase) RunAction(ctx context.Context, sessionID string, credential *models.Credential, action models.AnalysisAction) (*models.AnalysisResult, error) {
	args := m.Called(ctx, sessionID, credential, action)
	result, _ := args.Get(0).(*models.AnalysisResult)
	return result, args.Error(1)
}

func (m *MockAnalysisUsecase) CurrentResult(sessionID string) (models.AnalysisState, *models.AnalysisResult) {
	args := m.Called(sessionID)
	result, _ := args.Get(1).(*models.AnalysisResult)
	return args.Get(0).(models.AnalysisState), result
}

func (m *MockAnalysisUsecase) RequestReport(ctx context.Context, sessionID string, credential *models.Credential, identity models.PatientIdentity) (string, error) {
	args := m.Called(ctx, sessionID, credential, identity)
	return args.String(0), args.Error(1)
}

func (m *MockAnalysisUsecase) RequestSaveRecord(ctx context.Context, sessionID string, credential *models.Credential, identity models.PatientIdentity) (*models.ScanRecord, error) {
	args := m.Called(ctx, sessionID, credential, identity)
	record, _ := args.Get(0).(*models.ScanRecord)
	return record, args.Error(1)
}

func withSession(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), constvars.ContextSessionIDKey, "session-1")
	ctx = context.WithValue(ctx, constvars.ContextCredentialKey, &models.Credential{Token: "upstream-token"})
	return req.WithContext(ctx)
}

func multipartImage(t *testing.T, fieldName, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestSelectImageEndpoint(t *testing.T) {
	t.Run("Accepts a multipart upload", func(t *testing.T) {
		usecase := new(MockAnalysisUsecase)
		usecase.On("SelectImage", mock.Anything, "session-1", mock.MatchedBy(func(image *models.UploadedImage) bool {
			return image.Filename == "panoramic.jpg" && len(image.Data) > 0
		})).Return(nil).Once()

		ctrl := NewAnalysisController(zap.NewNop(), usecase, 16)
		body, contentType := multipartImage(t, "image", "panoramic.jpg")
		req := withSession(httptest.NewRequest("POST", "/analysis/image", body))
		req.Header.Set(constvars.HeaderContentType, contentType)

		rr := httptest.NewRecorder()
		http.HandlerFunc(ctrl.SelectImage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Missing image field is a 400", func(t *testing.T) {
		usecase := new(MockAnalysisUsecase)
		ctrl := NewAnalysisController(zap.NewNop(), usecase, 16)

		body, contentType := multipartImage(t, "document", "panoramic.jpg")
		req := withSession(httptest.NewRequest("POST", "/analysis/image", body))
		req.Header.Set(constvars.HeaderContentType, contentType)

		rr := httptest.NewRecorder()
		http.HandlerFunc(ctrl.SelectImage).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "SelectImage", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRunActionEndpoint(t *testing.T) {
	newRouter := func(usecase AnalysisUsecase) *chi.Mux {
		ctrl := NewAnalysisController(zap.NewNop(), usecase, 16)
		router := chi.NewRouter()
		router.Post("/actions/{action}", func(w http.ResponseWriter, r *http.Request) {
			ctrl.RunAction(w, withSession(r))
		})
		return router
	}

	t.Run("Known action runs", func(t *testing.T) {
		usecase := new(MockAnalysisUsecase)
		usecase.On("RunAction", mock.Anything, "session-1", mock.Anything, models.ActionDetectXray).
			Return(&models.AnalysisResult{
				Kind:       models.ResultKindDetection,
				Detections: []models.Condition{{Label: "Cavity", ConfidencePercent: 92}},
				Action:     models.ActionDetectXray,
				CreatedAt:  time.Now(),
			}, nil).Once()

		req := httptest.NewRequest("POST", "/actions/detect_xray", nil)
		rr := httptest.NewRecorder()
		newRouter(usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Cavity")
	})

	t.Run("Unknown action is a 400 without reaching the usecase", func(t *testing.T) {
		usecase := new(MockAnalysisUsecase)

		req := httptest.NewRequest("POST", "/actions/sharpen", nil)
		rr := httptest.NewRecorder()
		newRouter(usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "RunAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Workspace conflicts surface with their status", func(t *testing.T) {
		usecase := new(MockAnalysisUsecase)
		usecase.On("RunAction", mock.Anything, "session-1", mock.Anything, models.ActionEnhance).
			Return(nil, exceptions.ErrActionInFlight()).Once()

		req := httptest.NewRequest("POST", "/actions/enhance", nil)
		rr := httptest.NewRecorder()
		newRouter(usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestRequestReportEndpoint(t *testing.T) {
	t.Run("Invalid identity is rejected before the usecase", func(t *testing.T) {
		usecase := new(MockAnalysisUsecase)
		ctrl := NewAnalysisController(zap.NewNop(), usecase, 16)

		body := bytes.NewBufferString(`{"first_name":"Jane"}`)
		req := withSession(httptest.NewRequest("POST", "/analysis/report", body))
		rr := httptest.NewRecorder()
		http.HandlerFunc(ctrl.RequestReport).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "RequestReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Valid identity is forwarded trimmed", func(t *testing.T) {
		usecase := new(MockAnalysisUsecase)
		usecase.On("RequestReport", mock.Anything, "session-1", mock.Anything, mock.MatchedBy(func(identity models.PatientIdentity) bool {
			return identity.FirstName == "Jane" && identity.Email == "jane@example.com"
		})).Return("Report generated and sent successfully to jane@example.com", nil).Once()

		ctrl := NewAnalysisController(zap.NewNop(), usecase, 16)
		body := bytes.NewBufferString(`{"first_name":" Jane ","last_name":"Doe","email":" jane@example.com ","date_of_birth":"1990-04-01"}`)
		req := withSession(httptest.NewRequest("POST", "/analysis/report", body))
		rr := httptest.NewRecorder()
		http.HandlerFunc(ctrl.RequestReport).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "jane@example.com")
		usecase.AssertExpectations(t)
	})
}

func TestRequestSaveRecordEndpoint(t *testing.T) {
	usecase := new(MockAnalysisUsecase)
	usecase.On("RequestSaveRecord", mock.Anything, "session-1", mock.Anything, mock.Anything).
		Return(&models.ScanRecord{ID: "scan-1", PatientID: "patient-1"}, nil).Once()

	ctrl := NewAnalysisController(zap.NewNop(), usecase, 16)
	body := bytes.NewBufferString(`{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","date_of_birth":"1990-04-01"}`)
	req := withSession(httptest.NewRequest("POST", "/analysis/record", body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(ctrl.RequestSaveRecord).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "scan-1")
	usecase.AssertExpectations(t)
}
