package impactapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"impactDashboardAPI/internal/types/dashboard"
	"impactDashboardAPI/internal/types/food"
	"impactDashboardAPI/internal/validation"
)

const maxBodyBytes = 1 << 20

type tokenKey struct{}

// WithBearerToken attaches the caller's token so it is forwarded upstream.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func BearerToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the impact API. Every decoded body passes the validation
// boundary before it is returned.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) Summary(ctx context.Context) (dashboard.Summary, error) {
	var p summaryPayload
	if err := c.getValidated(ctx, "/api/dashboard/summary", &p); err != nil {
		return dashboard.Summary{}, err
	}
	return p.toSummary(), nil
}

func (c *Client) Chart(ctx context.Context) ([]dashboard.ChartPoint, error) {
	const path = "/api/dashboard/chart"
	var ps []chartPayload
	if err := c.getJSON(ctx, path, &ps); err != nil {
		return nil, err
	}
	if err := validation.Each(ps); err != nil {
		return nil, &PayloadError{Path: path, Err: err}
	}

	out := make([]dashboard.ChartPoint, 0, len(ps))
	for _, p := range ps {
		out = append(out, dashboard.ChartPoint{
			Week:      p.Week,
			Footprint: *p.Footprint,
			Saved:     *p.Saved,
			Baseline:  p.Baseline,
		})
	}
	return out, nil
}

func (c *Client) Badges(ctx context.Context) ([]dashboard.BadgeMeta, error) {
	const path = "/api/dashboard/badges"
	var ps []badgePayload
	if err := c.getJSON(ctx, path, &ps); err != nil {
		return nil, err
	}
	if err := validation.Each(ps); err != nil {
		return nil, &PayloadError{Path: path, Err: err}
	}

	out := make([]dashboard.BadgeMeta, 0, len(ps))
	for _, p := range ps {
		out = append(out, dashboard.BadgeMeta(p))
	}
	return out, nil
}

func (c *Client) Goal(ctx context.Context) (dashboard.MonthlyGoal, error) {
	var p goalPayload
	if err := c.getValidated(ctx, "/api/dashboard/goal", &p); err != nil {
		return dashboard.MonthlyGoal{}, err
	}
	return dashboard.MonthlyGoal{Target: *p.Target, Current: p.Current, DaysLeft: p.DaysLeft}, nil
}

func (c *Client) Details(ctx context.Context) (dashboard.Details, error) {
	var p detailsPayload
	if err := c.getValidated(ctx, "/api/dashboard/details", &p); err != nil {
		return dashboard.Details{}, err
	}
	return p.toDetails(), nil
}

func (c *Client) Foods(ctx context.Context, filter food.Filter) ([]food.Food, error) {
	q := url.Values{}
	if filter.Category != "" && filter.Category != "all" {
		q.Set("category", filter.Category)
	}
	if filter.IsVeg != nil {
		q.Set("is_veg", strconv.FormatBool(*filter.IsVeg))
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	path := "/api/foods"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var ps []foodPayload
	if err := c.getJSON(ctx, path, &ps); err != nil {
		return nil, err
	}
	if err := validation.Each(ps); err != nil {
		return nil, &PayloadError{Path: "/api/foods", Err: err}
	}

	out := make([]food.Food, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.toFood())
	}
	return out, nil
}

func (c *Client) FoodCategories(ctx context.Context) ([]string, error) {
	const path = "/api/foods/categories"
	var categories []string
	if err := c.getJSON(ctx, path, &categories); err != nil {
		return nil, err
	}
	for i, cat := range categories {
		if cat == "" {
			return nil, &PayloadError{Path: path, Err: fmt.Errorf("category %d is empty", i)}
		}
	}
	return categories, nil
}

func (c *Client) Food(ctx context.Context, id int) (food.Food, error) {
	var p foodPayload
	if err := c.getValidated(ctx, fmt.Sprintf("/api/foods/%d", id), &p); err != nil {
		return food.Food{}, err
	}
	return p.toFood(), nil
}

func (c *Client) LogFood(ctx context.Context, req food.LogRequest) (food.LogEntry, error) {
	const path = "/api/log-food"
	var p logEntryPayload
	if err := c.do(ctx, http.MethodPost, path, req, &p); err != nil {
		return food.LogEntry{}, err
	}
	if err := validation.Struct(&p); err != nil {
		return food.LogEntry{}, &PayloadError{Path: path, Err: err}
	}
	return p.toEntry(), nil
}

func (c *Client) ActivityLogs(ctx context.Context, limit int) ([]food.LogEntry, error) {
	const path = "/api/activity-logs"
	var ps []logEntryPayload
	if err := c.getJSON(ctx, path+"?limit="+strconv.Itoa(limit), &ps); err != nil {
		return nil, err
	}
	if err := validation.Each(ps); err != nil {
		return nil, &PayloadError{Path: path, Err: err}
	}

	out := make([]food.LogEntry, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.toEntry())
	}
	return out, nil
}

// CompleteChallenge posts a completion notice. The response body is ignored.
func (c *Client) CompleteChallenge(ctx context.Context, completion Completion) error {
	return c.do(ctx, http.MethodPost, "/api/challenges/complete", completion, nil)
}

func (c *Client) getValidated(ctx context.Context, path string, out any) error {
	if err := c.getJSON(ctx, path, out); err != nil {
		return err
	}
	if err := validation.Struct(out); err != nil {
		return &PayloadError{Path: path, Err: err}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	endpoint := path
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		endpoint = endpoint[:i]
	}

	start := time.Now()
	defer func() {
		outcome := "ok"
		switch {
		case errors.Is(err, ErrMalformedPayload):
			outcome = "malformed"
		case err != nil:
			outcome = "error"
		}
		requestDuration.WithLabelValues(endpoint, outcome).Observe(time.Since(start).Seconds())
	}()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := BearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("impact api request failed",
			zap.String("method", method),
			zap.String("path", endpoint),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s %s: %w", ErrUpstream, method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("impact api returned non-OK status",
			zap.String("method", method),
			zap.String("path", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{Path: endpoint, Code: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return &PayloadError{Path: endpoint, Err: err}
	}
	return nil
}
