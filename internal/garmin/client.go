// ABOUTME: Garmin Connect HTTP client with single-session lifecycle.
// ABOUTME: Authenticates once via SSO and reuses the session for all queries.
package garmin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Credentials is the account username/password pair supplied at startup.
type Credentials struct {
	Username string
	Password string
}

// Client holds the single authenticated connection to Garmin Connect.
// Login happens lazily on first use and the session is reused for the
// process lifetime. Safe for use from one goroutine at a time, matching
// the stdio transport's one-request-at-a-time model.
type Client struct {
	http   *http.Client
	creds  Credentials
	logger *log.Logger

	// ssoURL and apiURL are derived from the configured domain.
	// Tests point them at a local fixture server.
	ssoURL string
	apiURL string

	mu          sync.Mutex
	authed      bool
	displayName string
}

// serviceTicketRe extracts the SSO service ticket from the sign-in response.
var serviceTicketRe = regexp.MustCompile(`ticket=(ST-[\w.-]+)`)

// NewClient creates a client for the given credentials and provider domain
// (garmin.com or garmin.cn). No network traffic happens until the first query.
func NewClient(creds Credentials, domain string, logger *log.Logger) (*Client, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, authErr("username and password are required")
	}
	if domain == "" {
		domain = "garmin.com"
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		http:   &http.Client{Jar: jar},
		creds:  creds,
		logger: logger,
		ssoURL: fmt.Sprintf("https://sso.%s/sso", domain),
		apiURL: fmt.Sprintf("https://connect.%s/modern", domain),
	}, nil
}

// ensureSession logs in if no live session exists. Repeated calls after a
// successful login return the cached session without touching the network.
func (c *Client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.authed {
		return nil
	}
	return c.login(ctx)
}

// login runs the SSO ticket exchange and records the account display name.
// Caller holds c.mu.
func (c *Client) login(ctx context.Context) error {
	c.logger.Debug("authenticating", "user", maskUsername(c.creds.Username))

	form := url.Values{
		"username": {c.creds.Username},
		"password": {c.creds.Password},
		"embed":    {"false"},
	}
	signin := fmt.Sprintf("%s/signin?service=%s/", c.ssoURL, url.QueryEscape(c.apiURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signin,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build signin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return connectivityErr(err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return connectivityErr(err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusUnauthorized:
		return authErr("credentials rejected by provider")
	case resp.StatusCode >= 500:
		return providerErr("sign-in failed with status %d", resp.StatusCode)
	}

	m := serviceTicketRe.FindSubmatch(body)
	if m == nil {
		// No ticket in the response means the provider rejected the login
		// without a hard status (wrong password, locked account).
		return authErr("credentials rejected by provider")
	}
	ticket := string(m[1])

	// Exchanging the ticket establishes the session cookies on the jar.
	exchange := fmt.Sprintf("%s/?ticket=%s", c.apiURL, url.QueryEscape(ticket))
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, exchange, nil)
	if err != nil {
		return fmt.Errorf("build ticket exchange request: %w", err)
	}
	resp, err = c.http.Do(req)
	if err != nil {
		return connectivityErr(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return authErr("ticket exchange failed with status %d", resp.StatusCode)
	}

	// The display name keys the wellness endpoint paths.
	var profile struct {
		DisplayName string `json:"displayName"`
	}
	if err := c.getJSONLocked(ctx, "/proxy/userprofile-service/socialProfile", &profile); err != nil {
		return err
	}
	if profile.DisplayName == "" {
		return providerErr("login succeeded but no display name in profile")
	}

	c.displayName = profile.DisplayName
	c.authed = true
	c.logger.Info("session established")
	return nil
}

// getJSON ensures a session, issues one GET under the connect API root, and
// decodes the JSON response. On an auth-rejected response the session is
// dropped, re-established once, and the request retried once.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	err := c.doJSON(ctx, path, out)
	if err == nil || !isSessionExpired(err) {
		return err
	}

	c.logger.Warn("session expired, re-authenticating")
	c.mu.Lock()
	c.authed = false
	loginErr := c.login(ctx)
	c.mu.Unlock()
	if loginErr != nil {
		return loginErr
	}
	return c.doJSON(ctx, path, out)
}

// doJSON issues a single GET and decodes the body. Does not retry.
func (c *Client) doJSON(ctx context.Context, path string, out any) error {
	reqID := uuid.NewString()[:8]
	c.logger.Debug("provider request", "path", redactPath(path), "request_id", reqID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("NK", "NT")

	resp, err := c.http.Do(req)
	if err != nil {
		return connectivityErr(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notFoundErr("provider has no data for this request")
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: session rejected with status %d", errSessionExpired, resp.StatusCode)
	case resp.StatusCode >= 400:
		return providerErr("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return connectivityErr(err)
	}
	if strings.TrimSpace(string(body)) == "null" {
		return notFoundErr("provider has no data for this request")
	}
	if err := decodeJSON(body, out); err != nil {
		c.logger.Error("undecodable provider response", "request_id", reqID, "err", err)
		return providerErr("undecodable response body")
	}
	return nil
}

// getJSONLocked is getJSON without the session check, for use during login
// while c.mu is already held.
func (c *Client) getJSONLocked(ctx context.Context, path string, out any) error {
	err := c.doJSON(ctx, path, out)
	if isSessionExpired(err) {
		return authErr("session rejected immediately after login")
	}
	return err
}

// errSessionExpired marks an auth-rejected data response internally so the
// retry-once policy can distinguish it from a failed login.
var errSessionExpired = errors.New("session expired")

func isSessionExpired(err error) bool {
	return errors.Is(err, errSessionExpired)
}

// maskUsername keeps only the first character and the domain of an email.
func maskUsername(u string) string {
	at := strings.IndexByte(u, '@')
	if at <= 1 {
		return "***"
	}
	return u[:1] + "***" + u[at:]
}

// redactPath strips the display name segment from wellness paths for logging.
func redactPath(p string) string {
	if i := strings.Index(p, "?"); i >= 0 {
		p = p[:i]
	}
	return p
}
