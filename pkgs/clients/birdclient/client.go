package birdclient

import (
	"context"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/WangWilly/birdboard/pkgs/config"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

////////////////////////////////////////////////////////////////////////////////

// urls
const (
	API_HOST = "https://api.twitter.com/1.1"
)

// header keys
const (
	HEADER_AUTHORIZATION = "Authorization"
	HEADER_ACCEPT        = "Accept"
)

// outbound limiter defaults, local politeness only; the remote rate-limit
// window is not tracked
const (
	LIMITER_RPS   = 2
	LIMITER_BURST = 10
)

////////////////////////////////////////////////////////////////////////////////

// Client performs the authenticated REST calls against the platform API.
// Every request is signed with OAuth 1.0a using the configured credentials.
type Client struct {
	restyClient *resty.Client
	creds       config.Credentials
	host        string
	limiter     *rate.Limiter

	nowFn   func() time.Time
	nonceFn func() string
}

func New(creds config.Credentials) *Client {
	return &Client{
		restyClient: resty.New(),
		creds:       creds,
		host:        API_HOST,
		limiter:     rate.NewLimiter(rate.Limit(LIMITER_RPS), LIMITER_BURST),
		nowFn:       time.Now,
		nonceFn:     func() string { return strconv.FormatInt(rand.Int63(), 36) },
	}
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) SetLogger(logger *log.Logger) {
	c.restyClient.SetLogger(logger)
}

// SetHost overrides the API host, used by tests to point at a local server
func (c *Client) SetHost(host string) {
	c.host = host
}

// GetRestyClient exposes the underlying resty client for logger wiring
func (c *Client) GetRestyClient() *resty.Client {
	return c.restyClient
}

////////////////////////////////////////////////////////////////////////////////
// Request Helpers
////////////////////////////////////////////////////////////////////////////////

// get issues a signed GET and returns the raw response body. Non-2xx statuses
// map to *APIError carrying the upstream payload.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetHeader(HEADER_ACCEPT, "application/json").
		SetHeader(HEADER_AUTHORIZATION, c.authHeader(http.MethodGet, endpoint, params)).
		Get(endpoint)
	if err != nil {
		log.WithFields(log.Fields{
			"caller":   "Client.get",
			"endpoint": endpoint,
		}).WithError(err).Error("request failed")
		return nil, err
	}
	return c.checkStatus(resp)
}

// postForm issues a signed form-encoded POST. The form values take part in the
// OAuth signature base string.
func (c *Client) postForm(ctx context.Context, endpoint string, form map[string]string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetFormData(form).
		SetHeader(HEADER_ACCEPT, "application/json").
		SetHeader(HEADER_AUTHORIZATION, c.authHeader(http.MethodPost, endpoint, form)).
		Post(endpoint)
	if err != nil {
		log.WithFields(log.Fields{
			"caller":   "Client.postForm",
			"endpoint": endpoint,
		}).WithError(err).Error("request failed")
		return nil, err
	}
	return c.checkStatus(resp)
}

func (c *Client) checkStatus(resp *resty.Response) ([]byte, error) {
	if resp.StatusCode() >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Payload:    resp.Body(),
		}
	}
	return resp.Body(), nil
}
