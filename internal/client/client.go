// Package client is the data layer a front end uses to talk to the API.
//
// Reads go through a QueryClient that caches responses by query key and de-duplicates
// concurrent requests. Writes are sent directly and never retried.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/model"
	"github.com/seifeddinerezgui/gethrought/internal/submission"
)

// DefaultTimeout bounds every request unless WithTimeout says otherwise.
const DefaultTimeout = 10 * time.Second

// FieldError is one rejected field of a form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx answer.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors"`
}

// NewsParams selects a news page. Zero values are left to the server defaults.
type NewsParams struct {
	Page     int
	Limit    int
	Category string
}

func (p NewsParams) values() map[string]string {
	params := map[string]string{"category": p.Category}
	if p.Page > 0 {
		params["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		params["limit"] = strconv.Itoa(p.Limit)
	}
	return params
}

// NewsPage is one page of the news listing.
type NewsPage struct {
	Items      []model.News `json:"items"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
}

// ContactResult acknowledges a contact request.
type ContactResult struct {
	Message   string `json:"message"`
	ContactID uint   `json:"contactId"`
}

// ApplyResult acknowledges a job application.
type ApplyResult struct {
	Message       string `json:"message"`
	ApplicationID uint   `json:"applicationId"`
}

type options struct {
	timeout   time.Duration
	staleTime time.Duration
	logger    *zap.Logger
}

// Option configures a Client.
type Option func(*options)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithStaleTime expires cached reads after d.
func WithStaleTime(d time.Duration) Option {
	return func(o *options) { o.staleTime = d }
}

// WithLogger sets the logger, zap.NewNop by default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Client is the typed API over the HTTP boundary.
type Client struct {
	http    *resty.Client
	logger  *zap.Logger
	Queries *QueryClient
}

// New creates a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	o := options{timeout: DefaultTimeout, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(o.timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
		logger: o.logger,
	}
	c.Queries = NewQueryClient(c.get, o.staleTime)
	return c
}

func (c *Client) get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	values := make(map[string]string, len(params))
	for k, v := range params {
		if v != "" {
			values[k] = v
		}
	}

	c.logger.Debug("api request", zap.String("method", "GET"), zap.String("path", path), zap.Any("params", values))
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(values).
		Get(path)
	if err != nil {
		c.logger.Warn("api call failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to call %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return nil, c.apiError(path, resp)
	}
	return json.RawMessage(resp.Body()), nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	c.logger.Debug("api request", zap.String("method", "POST"), zap.String("path", path))
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		c.logger.Warn("api call failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return c.apiError(path, resp)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) apiError(path string, resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Message = body.Error
		apiErr.Fields = body.Errors
	}
	c.logger.Warn("api returned error",
		zap.String("path", path),
		zap.Int("status_code", apiErr.StatusCode),
		zap.String("error", apiErr.Message),
	)
	return apiErr
}

func query[T any](ctx context.Context, q *QueryClient, path string, params map[string]string) (T, error) {
	res := q.Query(ctx, path, params)
	if res.Err != nil {
		var zero T
		return zero, res.Err
	}
	v, err := Decode[T](res.Data)
	if err != nil {
		return v, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return v, nil
}

func itemPath(collection string, id uint) string {
	return collection + "/" + strconv.FormatUint(uint64(id), 10)
}

func (c *Client) ListSolutions(ctx context.Context) ([]model.Solution, error) {
	return query[[]model.Solution](ctx, c.Queries, "/api/solutions", nil)
}

func (c *Client) GetSolution(ctx context.Context, id uint) (model.Solution, error) {
	return query[model.Solution](ctx, c.Queries, itemPath("/api/solutions", id), nil)
}

func (c *Client) ListLocations(ctx context.Context) ([]model.Location, error) {
	return query[[]model.Location](ctx, c.Queries, "/api/international", nil)
}

func (c *Client) ListJobs(ctx context.Context) ([]model.Job, error) {
	return query[[]model.Job](ctx, c.Queries, "/api/jobs", nil)
}

func (c *Client) GetJob(ctx context.Context, id uint) (model.Job, error) {
	return query[model.Job](ctx, c.Queries, itemPath("/api/jobs", id), nil)
}

func (c *Client) ListNews(ctx context.Context, p NewsParams) (NewsPage, error) {
	return query[NewsPage](ctx, c.Queries, "/api/news", p.values())
}

func (c *Client) GetNews(ctx context.Context, id uint) (model.News, error) {
	return query[model.News](ctx, c.Queries, itemPath("/api/news", id), nil)
}

// SubmitContact sends the contact form.
func (c *Client) SubmitContact(ctx context.Context, form submission.ContactForm) (ContactResult, error) {
	var out ContactResult
	err := c.post(ctx, "/api/contact", form, &out)
	return out, err
}

// Subscribe adds email to the newsletter. Subscribing an address twice succeeds.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	var out struct {
		Message string `json:"message"`
	}
	return c.post(ctx, "/api/newsletter", submission.NewsletterForm{Email: email}, &out)
}

// Apply sends an application to jobID.
func (c *Client) Apply(ctx context.Context, jobID uint, form submission.ApplicationForm) (ApplyResult, error) {
	var out ApplyResult
	err := c.post(ctx, itemPath("/api/jobs", jobID)+"/apply", form, &out)
	return out, err
}
