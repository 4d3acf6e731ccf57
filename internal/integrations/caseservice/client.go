package caseservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// Logger is the logging interface required by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client is the HTTP client of the external case/request service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a new case service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRequest fetches one summon request by ID
func (c *Client) GetRequest(ctx context.Context, requestID int64) (*SummonRequest, error) {
	url := fmt.Sprintf("%s/internal/summon-requests/%d", c.baseURL, requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue below
	case http.StatusNotFound:
		return nil, ErrRequestNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var request SummonRequest
	if err := json.NewDecoder(resp.Body).Decode(&request); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &request, nil
}

// UpdateStatus advances the lifecycle status of a summon request.
// The scheduler calls this as one step of its booking/closing saga, the full
// request lifecycle stays owned by the case service.
func (c *Client) UpdateStatus(ctx context.Context, requestID int64, status domain.RequestStatus) error {
	url := fmt.Sprintf("%s/internal/summon-requests/%d/status", c.baseURL, requestID)

	payload, err := json.Marshal(UpdateStatusRequest{Status: string(status)})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrRequestNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
