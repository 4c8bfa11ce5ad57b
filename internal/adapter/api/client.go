package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mmcdole/shelf/internal/domain"
)

// DefaultBaseURL is the API root used when none is configured
const DefaultBaseURL = "http://localhost:3030/api"

const (
	pathRegister   = "/user/add"
	pathLogin      = "/login"
	pathAddBook    = "/book/add"
	pathRemoveBook = "/book/remove"
	pathListBooks  = "/book/list"

	headerRequestID = "X-Request-ID"
)

// credentials is the session credential context the client sends with
// every request (consumer-defined interface, satisfied by *session.State)
type credentials interface {
	Jar() http.CookieJar
	Token() string
}

// Config holds client settings
type Config struct {
	BaseURL string
	// TokenHeader, when set, carries the session token on every request
	// in addition to the cookie jar.
	TokenHeader string
	UserAgent   string
}

// Client implements domain.AccountRepository and domain.BookRepository
// against the catalog HTTP API. Each call sends exactly one request:
// no retries, no queueing, no deduplication.
type Client struct {
	baseURL     string
	tokenHeader string
	userAgent   string
	session     credentials
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a client bound to the given session
func NewClient(cfg Config, session credentials, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "shelf"
	}
	return &Client{
		baseURL:     baseURL,
		tokenHeader: cfg.TokenHeader,
		userAgent:   userAgent,
		session:     session,
		// No timeout: a hung request waits until the server answers.
		httpClient: &http.Client{Jar: session.Jar()},
		logger:     logger,
	}
}

// BaseURL returns the API root requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest sends one request and returns the status and body of a 2xx
// response. Transport and read failures become *domain.NetworkError;
// non-2xx responses become *domain.APIError carrying the server message.
func (c *Client) doRequest(ctx context.Context, op domain.Operation, method, path string, form url.Values) (int, []byte, error) {
	reqURL := c.baseURL + path

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headerRequestID, requestID)
	if c.tokenHeader != "" {
		if token := c.session.Token(); token != "" {
			req.Header.Set(c.tokenHeader, token)
		}
	}

	c.logger.Debug("catalog request", "op", op, "method", method, "url", reqURL, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "op", op, "error", err, "request_id", requestID)
		return 0, nil, &domain.NetworkError{Op: op, Err: fmt.Errorf("%w: %w", domain.ErrServerOffline, err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read catalog response", "op", op, "error", err, "request_id", requestID)
		return 0, nil, &domain.NetworkError{Op: op, Err: fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)}
	}

	c.logger.Debug("catalog response", "op", op, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := failureMessage(respBody)
		c.logger.Warn("catalog request rejected", "op", op, "status", resp.StatusCode, "message", msg, "request_id", requestID)
		return resp.StatusCode, nil, &domain.APIError{Op: op, Status: resp.StatusCode, Message: msg}
	}

	return resp.StatusCode, respBody, nil
}

// Register creates a user account
func (c *Client) Register(ctx context.Context, creds domain.Credentials) (string, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	_, body, err := c.doRequest(ctx, domain.OpRegister, http.MethodPost, pathRegister, form)
	if err != nil {
		return "", err
	}
	return textBody(body), nil
}

// Login authenticates and returns the token body verbatim. The server may
// also set a session cookie, which the jar keeps for later requests.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	_, body, err := c.doRequest(ctx, domain.OpLogin, http.MethodPost, pathLogin, form)
	if err != nil {
		return "", err
	}
	return textBody(body), nil
}

// AddBook creates a book. A 2xx reply with a falsy body is a failure.
func (c *Client) AddBook(ctx context.Context, draft domain.BookDraft) error {
	form := url.Values{}
	form.Set("title", draft.Title)
	form.Set("author", draft.Author)
	form.Set("year", strconv.Itoa(draft.Year))

	status, body, err := c.doRequest(ctx, domain.OpAddBook, http.MethodPost, pathAddBook, form)
	if err != nil {
		return err
	}
	if !truthy(body) {
		return &domain.APIError{Op: domain.OpAddBook, Status: status}
	}
	return nil
}

// RemoveBook deletes a book. A 2xx reply with a falsy body is a failure.
func (c *Client) RemoveBook(ctx context.Context, id int64) error {
	form := url.Values{}
	form.Set("bookId", strconv.FormatInt(id, 10))

	status, body, err := c.doRequest(ctx, domain.OpRemoveBook, http.MethodPost, pathRemoveBook, form)
	if err != nil {
		return err
	}
	if !truthy(body) {
		return &domain.APIError{Op: domain.OpRemoveBook, Status: status}
	}
	return nil
}

// ListBooks fetches the user's books in server order
func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	_, body, err := c.doRequest(ctx, domain.OpListBooks, http.MethodGet, pathListBooks, nil)
	if err != nil {
		return nil, err
	}

	var dtos []BookDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		c.logger.Error("failed to parse book list", "error", err)
		return nil, &domain.NetworkError{Op: domain.OpListBooks, Err: fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)}
	}
	return MapBooks(dtos), nil
}
