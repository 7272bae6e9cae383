package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

// Client talks to the exchangerate.host convert endpoint. Any failure is
// returned as an error; the currency service decides whether that becomes
// a hard failure or a fallback.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type convertResponse struct {
	Success bool    `json:"success"`
	Result  float64 `json:"result"`
	Date    string  `json:"date"`
}

func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (*domain.Conversion, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	if c.apiKey != "" {
		params.Set("access_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/convert?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange api status %d", resp.StatusCode)
	}

	var body convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("exchange response: %w", err)
	}
	if !body.Success {
		return nil, fmt.Errorf("exchange api reported failure for %s->%s", from, to)
	}

	rate := 0.0
	if amount > 0 {
		rate = body.Result / amount
	}

	return &domain.Conversion{
		Amount:    amount,
		Converted: body.Result,
		Rate:      rate,
		From:      from,
		To:        to,
		Date:      body.Date,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}, nil
}
