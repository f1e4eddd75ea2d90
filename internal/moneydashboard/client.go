// Package moneydashboard is a client for MoneyDashboard's unofficial
// web API. There is no documented API surface: logins emulate the
// browser flow by fetching the landing page for cookies and an
// anti-forgery token, then replaying both on a credentials POST. Data
// endpoints return the JSON the dashboard widgets consume.
package moneydashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mdash-dev/mdash/internal/model"
)

const defaultBaseURL = "https://my.moneydashboard.com"

// Config holds client configuration.
type Config struct {
	Email    string
	Password string
	BaseURL  string        // defaults to the live service
	Timeout  time.Duration // per-request HTTP timeout, defaults to 30s
}

// Validate ensures the credentials are present.
func (c *Config) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("moneydashboard email is required")
	}
	if c.Password == "" {
		return fmt.Errorf("moneydashboard password is required")
	}
	return nil
}

// TransactionFilter selects which widget transaction list to fetch.
// The numeric values are the service's own filter codes.
type TransactionFilter int

// Filters the service accepts.
const (
	FilterLastSevenDays  TransactionFilter = 1
	FilterSinceLastLogin TransactionFilter = 2
	FilterAllUntagged    TransactionFilter = 3
)

func (f TransactionFilter) String() string {
	switch f {
	case FilterLastSevenDays:
		return "Last 7 Days"
	case FilterSinceLastLogin:
		return "Since Last Login"
	case FilterAllUntagged:
		return "All Untagged"
	}
	return fmt.Sprintf("TransactionFilter(%d)", int(f))
}

// Valid reports whether f is one of the filters the service accepts.
func (f TransactionFilter) Valid() bool {
	return f >= FilterLastSevenDays && f <= FilterAllUntagged
}

// Client fetches accounts and transactions from MoneyDashboard. Every
// fetch re-authenticates from scratch because the service drops
// sessions after about ten minutes; there is deliberately no session
// caching across calls. Not safe for concurrent use — the service
// assumes one session in flight at a time, so wrap the client in a
// mutex if multiple goroutines need it.
type Client struct {
	cfg      Config
	baseURL  string
	base     *url.URL
	timeout  time.Duration
	logger   *slog.Logger
	session  *session
	accounts map[string]model.Account
}

// NewClient creates a client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg:     cfg,
		baseURL: baseURL,
		base:    base,
		timeout: timeout,
		logger:  slog.Default().With("component", "moneydashboard"),
	}, nil
}

// Accounts logs in and fetches the account list keyed by account ID.
// The mapping is cached on the client for label resolution within the
// same run; it is rebuilt, never merged, on each call.
func (c *Client) Accounts(ctx context.Context) (map[string]model.Account, error) {
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	c.logger.Info("Fetching accounts")
	var records []model.Account
	if err := c.getJSON(ctx, c.baseURL+"/api/Account/", &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccountList, err)
	}

	accounts := make(map[string]model.Account, len(records))
	for _, a := range records {
		accounts[a.ID] = a // last write wins on duplicate IDs
	}
	c.accounts = accounts
	return accounts, nil
}

// CachedAccounts returns the account mapping built by the most recent
// Accounts call on this client, or nil if none succeeded yet.
func (c *Client) CachedAccounts() map[string]model.Account {
	return c.accounts
}

// Transactions logs in and fetches the widget transaction list for
// the given filter. The filter is validated before any network call.
func (c *Client) Transactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFilter, int(filter))
	}
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	c.logger.Info("Fetching transactions", "filter", filter.String())
	u := fmt.Sprintf("%s/dashboard/GetWidgetTransactions?filter=%d", c.baseURL, int(filter))
	var records []model.Transaction
	if err := c.getJSON(ctx, u, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransactionList, err)
	}
	return records, nil
}

// getJSON issues an authenticated GET through the current session and
// decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header = c.dataHeaders()

	resp, err := c.session.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
