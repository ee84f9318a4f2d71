package patients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"aidentify-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryFind(t *testing.T) {
	ctx := context.Background()

	t.Run("Match returns the patient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/patients/find", r.URL.Path)
			assert.Equal(t, "Jane Doe", r.URL.Query().Get("name"))
			assert.Equal(t, "1990-04-01", r.URL.Query().Get("birthdate"))
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(models.Patient{ID: "patient-1", Name: "Jane Doe"})
		}))
		defer server.Close()

		client := NewPatientDirectoryClient(server.URL, 0)
		patient, err := client.Find(ctx, "token", "Jane Doe", "1990-04-01")
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, "patient-1", patient.ID)
	})

	t.Run("404 means no match, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewPatientDirectoryClient(server.URL, 0)
		patient, err := client.Find(ctx, "token", "Jane Doe", "1990-04-01")
		require.NoError(t, err)
		assert.Nil(t, patient)
	})

	t.Run("Empty body means no match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.Patient{})
		}))
		defer server.Close()

		client := NewPatientDirectoryClient(server.URL, 0)
		patient, err := client.Find(ctx, "token", "Jane Doe", "1990-04-01")
		require.NoError(t, err)
		assert.Nil(t, patient, "a patient without an ID is not a usable match")
	})
}

func TestDirectoryCreate(t *testing.T) {
	ctx := context.Background()
	identity := models.PatientIdentity{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		DateOfBirth: "1990-04-01",
	}

	t.Run("Posts the identity and returns the created patient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/patients", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Jane Doe", payload["name"])
			assert.Equal(t, "1990-04-01", payload["date_of_birth"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Patient{ID: "patient-2", Name: "Jane Doe"})
		}))
		defer server.Close()

		client := NewPatientDirectoryClient(server.URL, 0)
		patient, err := client.Create(ctx, "token", identity)
		require.NoError(t, err)
		assert.Equal(t, "patient-2", patient.ID)
	})

	t.Run("Rejection surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"message": "birthdate is in the future"})
		}))
		defer server.Close()

		client := NewPatientDirectoryClient(server.URL, 0)
		_, err := client.Create(ctx, "token", identity)
		require.Error(t, err)
	})
}
