package backendrest

import (
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnvelopeServer(t *testing.T, statusCode int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	}))
}

func TestDo_DecodesBooleanStatusEnvelope(t *testing.T) {
	server := newEnvelopeServer(t, http.StatusOK, `{"status": true, "data": [{"id": 1, "name": "Dr. Asha Rao"}]}`)
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	var doctors []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	err := client.Do(context.Background(), http.MethodGet, "/api/allDoctors", nil, &doctors, "doctor")

	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, int64(1), doctors[0].ID)
	assert.Equal(t, "Dr. Asha Rao", doctors[0].Name)
}

func TestDo_FalseStatusReportsBackendFailure(t *testing.T) {
	server := newEnvelopeServer(t, http.StatusOK, `{"status": false, "error": "doctor not found"}`)
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.Do(context.Background(), http.MethodGet, "/api/doctor/99", nil, nil, "doctor")

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, "doctor not found")
}

func TestDo_AcceptsLegacyStringStatus(t *testing.T) {
	server := newEnvelopeServer(t, http.StatusOK, `{"status": "success", "data": {"id": 3}}`)
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	var out struct {
		ID int64 `json:"id"`
	}
	err := client.Do(context.Background(), http.MethodGet, "/api/doctor/3", nil, &out, "doctor")

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
}

func TestDo_SuccessFlagEnvelope(t *testing.T) {
	server := newEnvelopeServer(t, http.StatusOK, `{"success": false, "message": "backend down"}`)
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.Do(context.Background(), http.MethodGet, "/api/contact", nil, nil, "enquiry")

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, "backend down")
}
