// Package backendrest carries the wire plumbing shared by every upstream
// resource client: request building, the response envelope, and failure
// mapping. The clinic backend wraps every payload in
// {"status"|"success", "data", "message"|"error"}.
package backendrest

import (
	"bytes"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// wireBool decodes the backend's status flag. Current routes send a JSON
// bool; a few older ones still send "success"/"ok" strings.
type wireBool struct {
	present bool
	value   bool
}

func (b *wireBool) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = wireBool{present: true, value: asBool}
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*b = wireBool{present: true, value: asString == "success" || asString == "ok" || asString == "true"}
	return nil
}

type envelope struct {
	Status  wireBool        `json:"status,omitempty"`
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *envelope) ok() bool {
	if e.Success != nil {
		return *e.Success
	}
	if e.Status.present {
		return e.Status.value
	}
	return true
}

func (e *envelope) failureMessage() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

type Client struct {
	BaseUrl    string
	httpClient *http.Client
}

func NewClient(baseUrl string, requestTimeout time.Duration) *Client {
	return &Client{
		BaseUrl:    baseUrl,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Do sends one request and decodes the envelope's data field into out.
// Pass a nil out to discard the payload (deletes). The resource name only
// feeds error messages.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, out interface{}, resource string) error {
	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}

	var env envelope
	if len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, &env); err != nil {
			return exceptions.ErrDecodeResponse(err, resource)
		}
	}

	if resp.StatusCode >= constvars.StatusBadRequest || !env.ok() {
		statusCode := resp.StatusCode
		if statusCode < constvars.StatusBadRequest {
			statusCode = constvars.StatusBadGateway
		}
		return exceptions.ErrBackendReportedFailure(statusCode, resource, env.failureMessage())
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return exceptions.ErrDecodeResponse(err, resource)
		}
	}
	return nil
}
