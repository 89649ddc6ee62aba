// Package assistant is a thin client for the external text-generation
// service that writes product descriptions and styling tips. The service is
// an opaque collaborator: one JSON request in, one generated string out.
package assistant

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrUnavailable = errors.New("assistant service unavailable")

// InlineImage carries an optional product photo alongside the prompt data.
type InlineImage struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64-encoded bytes
}

// DescribeRequest asks for a product description.
type DescribeRequest struct {
	ProductName   string       `json:"productName"`
	Category      string       `json:"category"`
	ExistingNotes string       `json:"existingNotes,omitempty"`
	Image         *InlineImage `json:"image,omitempty"`
}

// TipsRequest asks for newline-separated styling tips.
type TipsRequest struct {
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type generateResponse struct {
	Text string `json:"text"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Configured reports whether a service endpoint was provided at all.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

func (c *Client) Describe(req DescribeRequest) (string, error) {
	return c.generate("/v1/describe", req)
}

func (c *Client) StylingTips(req TipsRequest) (string, error) {
	return c.generate("/v1/styling-tips", req)
}

func (c *Client) generate(path string, payload any) (string, error) {
	if !c.Configured() {
		return "", ErrUnavailable
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if out.Text == "" {
		return "", errors.New("assistant returned an empty response")
	}
	return out.Text, nil
}
