package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Client verifies reCAPTCHA v3 tokens. Callers treat it as advisory: the
// submission pipeline logs a rejection and moves on.
type Client struct {
	HTTPClient *http.Client
	secretKey  string
	minScore   float64
}

func NewClient(secretKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		secretKey:  secretKey,
		minScore:   0.5,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks the token against Google and confirms it was minted for the
// expected action with an acceptable score.
func (c *Client) Verify(ctx context.Context, token, action string) (bool, error) {
	if c.secretKey == "" {
		return false, fmt.Errorf("recaptcha not configured")
	}

	form := url.Values{}
	form.Set("secret", c.secretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, "POST", verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("siteverify error: %d", resp.StatusCode)
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}

	if !result.Success {
		return false, nil
	}
	if result.Action != "" && result.Action != action {
		return false, nil
	}
	return result.Score >= c.minScore, nil
}
