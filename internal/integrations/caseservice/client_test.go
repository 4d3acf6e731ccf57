package caseservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/internal/summon-requests/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SummonRequest{
			ID:              42,
			ComplaintID:     9,
			ComplainantName: "Reyes",
			RespondentName:  "Santos",
			Status:          "pending",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	req, err := client.GetRequest(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), req.ID)
	assert.Equal(t, "pending", req.Status)
}

func TestGetRequestNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	_, err := client.GetRequest(context.Background(), 999)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestGetRequestUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	_, err := client.GetRequest(context.Background(), 42)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestUpdateStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/internal/summon-requests/42/status", r.URL.Path)

		var body UpdateStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ongoing", body.Status)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	err := client.UpdateStatus(context.Background(), 42, domain.RequestStatusOngoing)

	assert.NoError(t, err)
}

func TestUpdateStatusNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	err := client.UpdateStatus(context.Background(), 999, domain.RequestStatusClosed)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}
