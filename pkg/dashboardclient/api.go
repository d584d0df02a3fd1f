package dashboardclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

// SignIn exchanges credentials for a token and loads the matching profile.
// It is meant to back a Session.
func SignIn(ctx context.Context, baseURL, email, password string, hc *http.Client) (Identity, error) {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	c := &Client{httpClient: hc}
	u, err := url.Parse(baseURL)
	if err != nil {
		return Identity{}, fmt.Errorf("parse base url: %w", err)
	}
	c.baseURL = u

	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return Identity{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/v1/login", nil), bytes.NewReader(payload))
	if err != nil {
		return Identity{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var login struct {
		Token string `json:"token"`
	}
	if err := c.send(req, &login); err != nil {
		return Identity{}, err
	}
	if login.Token == "" {
		return Identity{}, ErrNotAuthenticated
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/v1/me", nil), nil)
	if err != nil {
		return Identity{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+login.Token)

	identity := Identity{Token: login.Token}
	if err := c.send(req, &identity.Profile); err != nil {
		return Identity{}, err
	}
	return identity, nil
}

func (c *Client) Me(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodGet, "/v1/me", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.UserRecord, error) {
	var users []domain.UserRecord
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser returns the uid of the new account.
func (c *Client) CreateUser(ctx context.Context, req domain.CreateUserRequest) (string, error) {
	var resp struct {
		UID string `json:"uid"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.UID, nil
}

func (c *Client) UpdateUser(ctx context.Context, uid string, req domain.UpdateUserRequest) (*domain.UserRecord, error) {
	var record domain.UserRecord
	if err := c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(uid), nil, req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) DeleteUser(ctx context.Context, uid string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(uid), nil, nil, nil)
}

func (c *Client) LogActivity(ctx context.Context, action, details string) error {
	return c.do(ctx, http.MethodPost, "/api/log_activity", nil, domain.LogActivityRequest{Action: action, Details: details}, nil)
}

// ReportFailure records a failed operation in the activity log. Failures to
// record are only logged.
func (c *Client) ReportFailure(ctx context.Context, action string, cause error) {
	if cause == nil {
		return
	}
	if err := c.LogActivity(ctx, action+" failed", cause.Error()); err != nil {
		logrus.WithError(err).WithField("action", action).Warn("could not record failure")
	}
}

func (c *Client) ListActivityLogs(ctx context.Context, filter domain.ActivityLogFilter) (*domain.ActivityLogPage, error) {
	q := rangeQuery(filter.Range)
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.UserID != "" {
		q.Set("user_id", filter.UserID)
	}

	var page domain.ActivityLogPage
	if err := c.do(ctx, http.MethodGet, "/api/activity_logs", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// PlatformData lists the stored rows of one platform. An empty table is an
// empty slice, not an error.
func (c *Client) PlatformData(ctx context.Context, platform domain.Platform) ([]domain.RawRecord, error) {
	var p string
	switch platform {
	case domain.PlatformFacebook:
		p = "/api/facebookdata"
	case domain.PlatformTikTok:
		p = "/api/tiktokdata"
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlatform, platform)
	}

	rows := []domain.RawRecord{}
	if err := c.do(ctx, http.MethodGet, p, nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) SalesData(ctx context.Context, r domain.DateRange) ([]domain.RawRecord, error) {
	rows := []domain.RawRecord{}
	if err := c.do(ctx, http.MethodGet, "/api/salesdata", rangeQuery(r), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) TopSales(ctx context.Context, r domain.DateRange) ([]domain.TopProduct, error) {
	products := []domain.TopProduct{}
	if err := c.do(ctx, http.MethodGet, "/api/sales/top", rangeQuery(r), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Performance(ctx context.Context, r domain.DateRange, platform domain.Platform) (*domain.PerformanceReport, error) {
	q := rangeQuery(r)
	q.Set("platform", string(platform))

	var report domain.PerformanceReport
	if err := c.do(ctx, http.MethodGet, "/api/performance-data", q, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) Predictive(ctx context.Context, metric domain.MetricType) (*domain.PredictiveReport, error) {
	q := url.Values{"metric_type": {string(metric)}}

	var report domain.PredictiveReport
	if err := c.do(ctx, http.MethodGet, "/api/predictive-analytics", q, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) Correlation(ctx context.Context, r domain.DateRange, platform domain.Platform) (*domain.CorrelationReport, error) {
	q := rangeQuery(r)
	q.Set("platform", string(platform))

	var report domain.CorrelationReport
	if err := c.do(ctx, http.MethodGet, "/api/correlation-analysis", q, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) DashboardPlatform(ctx context.Context, platform domain.Platform, window domain.TimeWindow) (*PlatformView, error) {
	q := url.Values{"platform": {string(platform)}, "time_range": {string(window)}}

	var view PlatformView
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/platform", q, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) DashboardTopPerformers(ctx context.Context) (*TopPerformersView, error) {
	var view TopPerformersView
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/top-performers", nil, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Upload sends one data file for app as a multipart form.
func (c *Client) Upload(ctx context.Context, app domain.UploadApp, filename string, r io.Reader) (*domain.UploadResult, error) {
	if c.session == nil || !c.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("app", string(app)); err != nil {
		return nil, err
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/upload-data", nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var result domain.UploadResult
	if err := c.send(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func rangeQuery(r domain.DateRange) url.Values {
	q := url.Values{}
	if r.Start != nil {
		q.Set("start_date", r.Start.Format(domain.DateLayout))
	}
	if r.End != nil {
		q.Set("end_date", r.End.Format(domain.DateLayout))
	}
	return q
}
