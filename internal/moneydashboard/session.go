package moneydashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

const (
	tokenField  = "__RequestVerificationToken"
	tokenHeader = "__requestverificationtoken"

	// OriginId the web frontend sends on every login.
	loginOriginID = "1"

	userAgent  = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/79.0.3945.88 Safari/537.36"
	newRelicID = "UA4AV1JTGwAJU1BaDgc="
	acceptJSON = "application/json, text/plain, */*"
	acceptLang = "en-GB,en-US;q=0.9,en;q=0.8"
)

// session is one authenticated browser emulation: a cookie-bearing
// HTTP client plus the anti-forgery token captured from the landing
// page. A fresh session replaces the old one on every login; the
// service expires them after roughly ten minutes so nothing is reused
// across calls.
type session struct {
	http  *http.Client
	token string
}

type loginRequest struct {
	OriginID       string `json:"OriginId"`
	Email          string `json:"Email"`
	Password       string `json:"Password"`
	CampaignRef    string `json:"CampaignRef"`
	ApplicationRef string `json:"ApplicationRef"`
	UserRef        string `json:"UserRef"`
}

type loginResponse struct {
	IsSuccess bool   `json:"IsSuccess"`
	ErrorCode string `json:"ErrorCode"`
}

// login performs the two-phase handshake. Phase one fetches the
// landing page with a throwaway client to pick up cookies and the
// anti-forgery token. Phase two POSTs the credentials from a second,
// fresh client, so the landing cookies are carried over through a
// manually built Cookie header rather than a shared jar. That hand-off
// is part of the wire protocol, not an accident.
func (c *Client) login(ctx context.Context) error {
	c.session = nil

	landing, err := newBrowserClient(c.timeout)
	if err != nil {
		return &AuthError{Err: err}
	}

	landingURL := c.baseURL + "/landing"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, landingURL, nil)
	if err != nil {
		return &AuthError{Err: err}
	}
	resp, err := landing.Do(req)
	if err != nil {
		return &AuthError{Err: fmt.Errorf("landing request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthError{Err: fmt.Errorf("landing request: unexpected status %d", resp.StatusCode)}
	}

	token, ok := findInputValue(resp.Body, tokenField)
	if !ok {
		return ErrTokenNotFound
	}
	cookies := cookieHeader(landing.Jar.Cookies(c.base))

	// Second, fresh session for the login request itself.
	sess, err := newBrowserClient(c.timeout)
	if err != nil {
		return &AuthError{Err: err}
	}

	body, err := json.Marshal(loginRequest{
		OriginID: loginOriginID,
		Email:    c.cfg.Email,
		Password: c.cfg.Password,
	})
	if err != nil {
		return &AuthError{Err: err}
	}
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/landing/login", bytes.NewReader(body))
	if err != nil {
		return &AuthError{Err: err}
	}
	req.Header = c.loginHeaders(token, cookies)

	resp, err = sess.Do(req)
	if err != nil {
		return &AuthError{Err: fmt.Errorf("login request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthError{Err: fmt.Errorf("login request: unexpected status %d", resp.StatusCode)}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return &AuthError{Err: fmt.Errorf("login response: %w", err)}
	}
	if !lr.IsSuccess {
		c.logger.Error("Login rejected", "error_code", lr.ErrorCode)
		return &AuthError{ErrorCode: lr.ErrorCode}
	}

	c.session = &session{http: sess, token: token}
	c.logger.Debug("Login succeeded")
	return nil
}

func newBrowserClient(timeout time.Duration) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &http.Client{Jar: jar, Timeout: timeout}, nil
}

// cookieHeader serializes cookies into a single Cookie header value,
// name=value pairs joined by "; ". The login POST goes out from a
// client whose jar never saw the landing response, so the cookies have
// to be replayed by hand.
func cookieHeader(cookies []*http.Cookie) string {
	pairs := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		pairs = append(pairs, ck.Name+"="+ck.Value)
	}
	return strings.Join(pairs, "; ")
}

// loginHeaders emulates the browser's login XHR. Accept-Encoding is
// left to the transport so response bodies are decompressed
// transparently.
func (c *Client) loginHeaders(token, cookies string) http.Header {
	h := http.Header{}
	h.Set("Origin", c.baseURL)
	h.Set("User-Agent", userAgent)
	h.Set("Content-Type", "application/json;charset=UTF-8")
	h.Set("Accept", acceptJSON)
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("X-Newrelic-Id", newRelicID)
	h.Set(tokenHeader, token)
	h.Set("Dnt", "1")
	h.Set("Sec-Fetch-Site", "same-origin")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Referer", c.baseURL+"/landing")
	h.Set("Accept-Language", acceptLang)
	h.Set("Cookie", cookies)
	return h
}

// dataHeaders emulates the browser's dashboard XHRs for authenticated
// GETs. Cookies ride in the session's own jar here.
func (c *Client) dataHeaders() http.Header {
	h := http.Header{}
	h.Set("Authority", c.base.Host)
	h.Set("Accept", acceptJSON)
	h.Set("X-Newrelic-Id", newRelicID)
	h.Set("Dnt", "1")
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set(tokenHeader, c.session.token)
	h.Set("User-Agent", userAgent)
	h.Set("Sec-Fetch-Site", "same-origin")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Referer", c.baseURL+"/dashboard")
	h.Set("Accept-Language", acceptLang)
	return h
}
