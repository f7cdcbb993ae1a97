package navasan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public endpoint returning the latest rate of every item.
const DefaultBaseURL = "http://api.navasan.tech/latest/"

// Client reads the latest rate table from the Navasan web service.
type Client struct {
	client  *resty.Client
	baseURL string
}

type item struct {
	Value json.RawMessage `json:"value"`
}

// NewClient creates a client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetRetryCount(0),
		baseURL: baseURL,
	}
}

// FetchLatest returns every item the service reports. Any failure wraps
// apperrors.ErrRemoteUnavailable.
func (c *Client) FetchLatest(ctx context.Context, apiKey string) (*domain.RemoteRateSnapshot, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("api_key", apiKey).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRemoteUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrRemoteUnavailable, resp.StatusCode())
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", apperrors.ErrRemoteUnavailable, err)
	}

	values := make(map[string]string, len(decoded))
	for key, raw := range decoded {
		var it item
		if err := json.Unmarshal(raw, &it); err != nil || len(it.Value) == 0 {
			continue
		}
		values[key] = rawScalar(it.Value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: response carried no items", apperrors.ErrRemoteUnavailable)
	}

	return &domain.RemoteRateSnapshot{Values: values, FetchedAt: time.Now()}, nil
}

// rawScalar turns "61,500" or 61500 into its text form.
func rawScalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
