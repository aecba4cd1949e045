package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FingerprintHeader дублирует fingerprint из тела запроса.
const FingerprintHeader = "X-Fingerprint"

// Client — HTTP-клиент к SecretInk API; nil означает http.DefaultClient.
var Client = &http.Client{Timeout: 15 * time.Second}

// APIError — ошибка сервера в формате {"error": "..."}.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server status %d", e.Status)
	}
	return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
}

// PostJSON sends a JSON POST request. If fingerprint is non-empty, it is passed in X-Fingerprint.
func PostJSON(ctx context.Context, url string, payload any, fingerprint string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if fingerprint != "" {
		req.Header.Set(FingerprintHeader, fingerprint)
	}
	return do(req)
}

// GetJSON sends a GET request and returns the raw body.
func GetJSON(ctx context.Context, url string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")
	return do(req)
}

func do(req *http.Request) (*http.Response, []byte, error) {
	c := Client
	if c == nil {
		c = http.DefaultClient
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read body: %w", err)
	}
	return resp, bytes.TrimSpace(body), nil
}

// DecodeResponse проверяет статус и раскладывает тело в out.
// Статусы, отличные от want, превращаются в *APIError.
func DecodeResponse(resp *http.Response, body []byte, want int, out any) error {
	if resp.StatusCode != want {
		return decodeError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return &APIError{Status: status, Message: e.Error}
	}
	return &APIError{Status: status, Message: strings.TrimSpace(string(body))}
}
