// Package authclient calls the identity service to exchange credentials for
// a bearer token.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/sethvargo/go-retry"
)

const tokenPath = "/token"

// TokenResponse mirrors the identity service's POST /token body.
type TokenResponse struct {
	Token      string    `json:"token"`
	ExpireTime time.Time `json:"expireTime"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Retries is the number of attempts after the first one.
	Retries   uint64
	BaseDelay time.Duration
}

type Client struct {
	httpClient *http.Client
	config     Config
}

func New(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
	}
}

// Authenticate posts the credentials to the identity service. Transport
// errors, 408, 429 and 5xx are retried with exponential backoff; any other
// non-200 answer is common.ErrorUnauthorized.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*TokenResponse, error) {
	body, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var result *TokenResponse
	backoff := retry.WithMaxRetries(c.config.Retries, retry.NewExponential(c.config.BaseDelay))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := c.post(ctx, body)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, body []byte) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+tokenPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, retry.RetryableError(fmt.Errorf("identity request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		statusErr := fmt.Errorf("identity responded %d", resp.StatusCode)
		if isRetryableStatus(resp.StatusCode) {
			return nil, retry.RetryableError(statusErr)
		}
		return nil, errors.Join(common.ErrorUnauthorized, statusErr)
	}

	var tr TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tr.Token == "" {
		return nil, common.ErrorUnauthorized
	}
	return &tr, nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests ||
		code >= http.StatusInternalServerError
}
