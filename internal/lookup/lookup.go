// Package lookup resolves the visitor address shown by the terminal widget.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultURL     = "https://api.ipify.org?format=json"
	DefaultTimeout = 5 * time.Second

	// maxBody bounds how much of the response is read.
	maxBody = 4 << 10
)

// ErrNoAddress is returned when a lookup yields no usable address.
var ErrNoAddress = errors.New("no address in lookup response")

// Ipify asks a public "what is my address" service for the caller's address.
// It makes a single attempt; there is no retry.
type Ipify struct {
	URL    string
	Client *http.Client
}

func NewIpify(url string, timeout time.Duration) *Ipify {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Ipify{URL: url, Client: &http.Client{Timeout: timeout}}
}

type ipifyResponse struct {
	IP string `json:"ip"`
}

func (i *Ipify) Resolve(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.URL, nil)
	if err != nil {
		return "", fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := i.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", i.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("lookup %s: unexpected status %s", i.URL, resp.Status)
	}

	var payload ipifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode lookup response: %w", err)
	}
	if payload.IP == "" {
		return "", ErrNoAddress
	}
	return payload.IP, nil
}

// Static resolves to a fixed address, typically the client address of the
// HTTP request that mounted the widget.
type Static string

func (s Static) Resolve(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoAddress
	}
	return string(s), nil
}
