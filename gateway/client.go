// Package gateway is the API gateway client: the sole component that talks
// to the Employee Tracker backend. It attaches the persisted bearer token
// to each request, bounds every call with a fixed timeout, and normalizes
// backend rejections into *APIError. It performs no retries; callers decide
// what a failure means.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/employee-tracker/employee"
	"github.com/jrsteele09/employee-tracker/identity"
	"github.com/jrsteele09/employee-tracker/internal/utils"
	"github.com/jrsteele09/employee-tracker/tokenstore"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// Option modifies the Client during construction.
type Option func(*Client)

// WithTimeout overrides the default 10 second request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithLogger sets the logger used for request/response diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a gateway client for the backend at baseURL (without the /api
// suffix). The token repo supplies the bearer token for authenticated calls.
func New(baseURL string, tokens tokenstore.Repo, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		log:     zerolog.Nop(),
	}
	c.client = &http.Client{Timeout: defaultTimeout}

	for _, opt := range options {
		opt(c)
	}
	c.client.Transport = &bearerTransport{
		tokens: tokens,
		base:   http.DefaultTransport,
		log:    c.log,
	}
	return c
}

// Status calls the liveness probe.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get(ctx, "/status/", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup creates an account. The returned SessionToken is empty when the
// backend defers the session until email confirmation.
func (c *Client) Signup(ctx context.Context, registration identity.Registration) (*SignupResult, error) {
	var resp signupResponse
	if err := c.post(ctx, "/auth/signup/", registration, &resp); err != nil {
		return nil, err
	}
	return &SignupResult{
		Message:      resp.Message,
		Status:       resp.Status,
		User:         resp.User.toUser(),
		SessionToken: utils.Value(resp.Session),
	}, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, credentials identity.Credentials) (*LoginResult, error) {
	var resp loginResponse
	if err := c.post(ctx, "/auth/login/", credentials, &resp); err != nil {
		return nil, err
	}
	return &LoginResult{
		Message: resp.Message,
		Status:  resp.Status,
		User:    resp.User.toUser(),
		Token:   resp.Session.toToken(),
	}, nil
}

// Logout invalidates the server-side session for the current token.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout/", nil, nil)
}

// CurrentUser resolves the identity behind the persisted bearer token.
func (c *Client) CurrentUser(ctx context.Context) (*identity.User, error) {
	var resp currentUserResponse
	if err := c.get(ctx, "/auth/me/", &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("[Client.CurrentUser] payload contained no user")
	}
	return resp.User.toUser(), nil
}

// Employees lists all employees with today's location.
func (c *Client) Employees(ctx context.Context) ([]employee.Employee, error) {
	var resp employeesResponse
	if err := c.get(ctx, "/employees/", &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

// UserDetails fetches the extended profile for one employee.
func (c *Client) UserDetails(ctx context.Context, userID string) (*employee.Details, error) {
	var details employee.Details
	if err := c.get(ctx, fmt.Sprintf("/user-details/%s/", userID), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// CurrentUserDetails fetches the extended profile of the logged-in user.
func (c *Client) CurrentUserDetails(ctx context.Context) (*employee.Details, error) {
	var details employee.Details
	if err := c.get(ctx, "/user-details/me/", &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "[Client.do] create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] read response %s %s", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Best effort: a non-JSON error body still yields a usable APIError
		_ = json.Unmarshal(payload, apiErr)
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Str("error", apiErr.Message).Msg("api request rejected")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrapf(err, "[Client.do] decode response %s %s", method, path)
	}
	return nil
}
