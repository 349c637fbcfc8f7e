// Package abcp implements the order platform client against the ABCP admin API.
package abcp

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Loandr1324/InsertManagerInOrder/config"
	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

// Client talks to the admin part of the ABCP API.
type Client struct {
	log        *zap.SugaredLogger
	cfg        config.ABCPConfig
	baseURL    string
	httpClient *http.Client
}

// New creates a client; the HTTP transport is built in OnStart.
func New(log *zap.SugaredLogger, cfg config.ABCPConfig) *Client {
	return &Client{
		log:     log.Named("repo.abcp"),
		cfg:     cfg,
		baseURL: baseURL(cfg.Host),
	}
}

// OnStart builds the HTTP client.
func (c *Client) OnStart(_ context.Context) error {
	if c.cfg.Host == "" || c.cfg.Login == "" || c.cfg.Password == "" {
		return fmt.Errorf("%w: abcp host and credentials are required", entities.ErrConfiguration)
	}
	timeout := c.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	c.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
	c.log.Infow("abcp client ready", "base_url", c.baseURL)
	return nil
}

// OnStop releases idle connections.
func (c *Client) OnStop(_ context.Context) error {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

func baseURL(host string) string {
	host = strings.TrimRight(host, "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	return host + "/cp/"
}

func (c *Client) credentials() url.Values {
	sum := md5.Sum([]byte(c.cfg.Password))
	return url.Values{
		"userlogin": {c.cfg.Login},
		"userpsw":   {hex.EncodeToString(sum[:])},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	q := c.credentials()
	for k, vs := range params {
		q[k] = vs
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	return c.do(req, endpoint, out)
}

func (c *Client) post(ctx context.Context, endpoint string, form url.Values, out any) error {
	body := c.credentials()
	for k, vs := range form {
		body[k] = vs
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, strings.NewReader(body.Encode()))
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	if c.httpClient == nil {
		return fmt.Errorf("%w: abcp client is not started", entities.ErrAPIFailure)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL and with it the credentials.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return fmt.Errorf("%w: %s %s: %v", entities.ErrAPIFailure, req.Method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s response: %v", entities.ErrAPIFailure, endpoint, err)
	}

	var apiErr errorResponse
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Code != 0 {
		return fmt.Errorf("%w: %s: code %d: %s", entities.ErrAPIFailure, endpoint, int(apiErr.Code), apiErr.Message)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s returned %s: %s", entities.ErrAPIFailure, endpoint, resp.Status, truncate(string(data), 256))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", entities.ErrAPIFailure, endpoint, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// isObject reports whether raw JSON starts with an object.
func isObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

var errUnexpectedShape = errors.New("unexpected response shape")
