// Package gqlclient executes operations against the Shopify Admin GraphQL
// endpoint of one shop. Connection-level failures are retried with
// exponential backoff, HTTP status failures and GraphQL-level errors surface
// immediately.
package gqlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/cenkalti/backoff/v4"
	"github.com/jensneuse/abstractlogger"
	"github.com/tidwall/sjson"
)

const (
	DefaultAPIVersion = "2026-01"
	DefaultMaxRetries = 3

	accessTokenHeader = "X-Shopify-Access-Token"
)

var DefaultHTTPClient = &http.Client{
	Timeout: time.Second * 30,
	Transport: &http.Transport{
		MaxIdleConnsPerHost: 1024,
	},
}

type Client struct {
	endpoint    string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
	log         abstractlogger.Logger
	maxRetries  int
	backoffBase time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(log abstractlogger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

func WithMaxRetries(maxRetries int) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
	}
}

// WithRetryBaseInterval overrides the initial backoff interval between
// transport retries.
func WithRetryBaseInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.backoffBase = interval
	}
}

// NewClient returns a client for one shop. shopURL is the https origin of the
// shop, accessToken the Admin API token.
func NewClient(shopURL, accessToken string, options ...Option) *Client {
	c := &Client{
		accessToken: accessToken,
		httpClient:  DefaultHTTPClient,
		log:         abstractlogger.NoopLogger,
		maxRetries:  DefaultMaxRetries,
		backoffBase: time.Second,
		apiVersion:  DefaultAPIVersion,
	}
	for _, option := range options {
		option(c)
	}
	c.endpoint = strings.TrimRight(shopURL, "/") + "/admin/api/" + c.apiVersion + "/graphql.json"
	return c
}

// Execute posts one GraphQL operation and returns the raw response envelope.
// Transport failures are retried up to the retry bound with exponential
// backoff (base 1s, doubling); HTTP status failures return immediately. The
// envelope is checked before returning: an errors array yields *GraphQLError,
// a missing data key yields *InvalidResponseError.
func (c *Client) Execute(ctx context.Context, query string, variables interface{}) ([]byte, error) {
	payload, err := c.payload(query, variables)
	if err != nil {
		return nil, err
	}

	var (
		body    []byte
		attempt int
	)
	operation := func() error {
		attempt++
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		request.Header.Set("Content-Type", "application/json")
		request.Header.Set(accessTokenHeader, c.accessToken)

		response, err := c.httpClient.Do(request)
		if err != nil {
			c.log.Warn("gqlclient: connection failed, retrying",
				abstractlogger.Int("attempt", attempt),
				abstractlogger.Int("max_attempts", c.maxRetries),
				abstractlogger.Error(err),
			)
			return err
		}
		defer response.Body.Close()

		body, err = io.ReadAll(response.Body)
		if err != nil {
			return err
		}
		if response.StatusCode < 200 || response.StatusCode >= 300 {
			return backoff.Permanent(&HTTPStatusError{
				StatusCode: response.StatusCode,
				Status:     response.Status,
				Body:       body,
			})
		}
		return nil
	}

	if err := backoff.Retry(operation, c.newBackOff(ctx)); err != nil {
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			return nil, statusErr
		}
		return nil, &TransportError{Err: err, Attempts: attempt}
	}

	return body, c.checkEnvelope(body)
}

// ExecuteData executes the operation and returns the decoded data object.
func (c *Client) ExecuteData(ctx context.Context, query string, variables interface{}) (map[string]interface{}, error) {
	body, err := c.Execute(ctx, query, variables)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &InvalidResponseError{Body: body}
	}
	return envelope.Data, nil
}

func (c *Client) payload(query string, variables interface{}) ([]byte, error) {
	payload, err := sjson.SetBytes([]byte(`{}`), "query", query)
	if err != nil {
		return nil, err
	}
	if variables == nil {
		return payload, nil
	}
	raw, err := json.Marshal(variables)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(payload, "variables", raw)
}

func (c *Client) checkEnvelope(body []byte) error {
	if errorsValue, dataType, _, _ := jsonparser.Get(body, "errors"); dataType != jsonparser.NotExist && dataType != jsonparser.Null {
		return &GraphQLError{Errors: errorsValue}
	}
	if _, dataType, _, _ := jsonparser.Get(body, "data"); dataType == jsonparser.NotExist || dataType == jsonparser.Null {
		return &InvalidResponseError{Body: body}
	}
	return nil
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = c.backoffBase
	exponential.Multiplier = 2
	exponential.RandomizationFactor = 0
	exponential.MaxElapsedTime = 0
	retries := c.maxRetries - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(exponential, uint64(retries)), ctx)
}
