package dashboardclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

func signedIn(t *testing.T, token string) *Session {
	t.Helper()

	s := NewSession(func(context.Context) (Identity, error) {
		return Identity{Token: token}, nil
	})
	_, err := s.Init(context.Background())
	require.NoError(t, err)
	return s
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantCode    string
	}{
		{
			name:        "message field",
			status:      http.StatusForbidden,
			body:        `{"code":"AUTH_008","message":"You do not have permission to access this resource"}`,
			wantMessage: "You do not have permission to access this resource",
			wantCode:    "AUTH_008",
		},
		{
			name:        "error field",
			status:      http.StatusBadRequest,
			body:        `{"error":"bad platform"}`,
			wantMessage: "bad platform",
		},
		{
			name:        "body is not json",
			status:      http.StatusBadGateway,
			body:        `<html>upstream down</html>`,
			wantMessage: "Request failed with status 502",
		},
		{
			name:        "json without a message",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantMessage: "Request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := NewClient(srv.URL, signedIn(t, "tok"))
			require.NoError(t, err)

			_, err = client.ListUsers(context.Background())

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.True(t, IsStatus(err, tt.status))
		})
	}
}

func TestClient_NotAuthenticated(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	t.Run("before sign in", func(t *testing.T) {
		session := NewSession(func(context.Context) (Identity, error) { return Identity{}, nil })
		client, err := NewClient(srv.URL, session)
		require.NoError(t, err)

		_, err = client.TopSales(context.Background(), domain.DateRange{})
		assert.ErrorIs(t, err, ErrNotAuthenticated)

		_, err = client.Upload(context.Background(), domain.UploadSales, "s.csv", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("after sign out", func(t *testing.T) {
		session := signedIn(t, "tok")
		session.SignOut()

		client, err := NewClient(srv.URL, session)
		require.NoError(t, err)

		assert.ErrorIs(t, client.DeleteUser(context.Background(), "u1"), ErrNotAuthenticated)
	})

	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestClient_Requests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/api/tiktokdata":
			_, _ = w.Write([]byte(`[]`))
		case "/api/salesdata":
			assert.Equal(t, "2024-01-01", r.URL.Query().Get("start_date"))
			assert.Empty(t, r.URL.Query().Get("end_date"))
			_, _ = w.Write([]byte(`[{"product_name":"Widget","amount":10}]`))
		case "/api/users":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"message":"User created successfully","uid":"u-new"}`))
		case "/api/log_activity":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"message":"Activity logged","id":"log-1"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, signedIn(t, "tok"))
	require.NoError(t, err)
	ctx := context.Background()

	rows, err := client.PlatformData(ctx, domain.PlatformTikTok)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	start, err := domain.ParseDateRange("2024-01-01", "")
	require.NoError(t, err)
	sales, err := client.SalesData(ctx, start)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Widget", sales[0]["product_name"])

	uid, err := client.CreateUser(ctx, domain.CreateUserRequest{Email: "n@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "u-new", uid)

	assert.NoError(t, client.LogActivity(ctx, "export", "sales.csv"))

	_, err = client.PlatformData(ctx, domain.PlatformAll)
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
}

func TestClient_DashboardViews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/dashboard/platform":
			assert.Equal(t, "tiktok", r.URL.Query().Get("platform"))
			assert.Equal(t, "last3months", r.URL.Query().Get("time_range"))
			_, _ = w.Write([]byte(`{"platform":"tiktok","time_range":"last3months",` +
				`"buckets":[{"period_key":"2024-05","reach":10,"engagement":2,"sales":0}],"labels":["May 2024"],` +
				`"totals":{},"charts":[{"id":"reachChart","type":"line"}]}`))
		case "/api/dashboard/top-performers":
			_, _ = w.Write([]byte(`{"products":[{"product_name":"Lens","sales":90}],"chart":{"id":"topPerformersChart"}}`))
		case "/api/sales/top":
			assert.Equal(t, "2024-01-01", r.URL.Query().Get("start_date"))
			assert.Equal(t, "2024-01-31", r.URL.Query().Get("end_date"))
			_, _ = w.Write([]byte(`[{"product_name":"Lens","sales":90}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, signedIn(t, "tok"))
	require.NoError(t, err)
	ctx := context.Background()

	platform, err := client.DashboardPlatform(ctx, domain.PlatformTikTok, domain.WindowLast3Months)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformTikTok, platform.Platform)
	assert.Equal(t, []string{"May 2024"}, platform.Labels)
	assert.Equal(t, []domain.AggregatedBucket{{PeriodKey: "2024-05", Reach: 10, Engagement: 2}}, platform.Buckets)
	require.Len(t, platform.Charts, 1)
	assert.JSONEq(t, `{"id":"reachChart","type":"line"}`, string(platform.Charts[0]))

	top, err := client.DashboardTopPerformers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TopProduct{{ProductName: "Lens", Sales: 90}}, top.Products)
	assert.JSONEq(t, `{"id":"topPerformersChart"}`, string(top.Chart))

	january, err := domain.ParseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	products, err := client.TopSales(ctx, january)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestClient_ReportFailure(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.LogActivityRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		got = req.Action + ": " + req.Details
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, signedIn(t, "tok"))
	require.NoError(t, err)

	client.ReportFailure(context.Background(), "upload", errors.New("file too large"))
	assert.Equal(t, "upload failed: file too large", got)
}

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "secret123" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"code":"AUTH_001","message":"Invalid email or password"}`))
				return
			}
			_, _ = w.Write([]byte(`{"token":"fresh"}`))
		case "/v1/me":
			assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"uid":"u1","email":"a@example.com","custom_claims":{"Marketing Team":true},"role":"marketing_team"}`))
		}
	}))
	defer srv.Close()

	t.Run("valid credentials", func(t *testing.T) {
		session := NewSession(func(ctx context.Context) (Identity, error) {
			return SignIn(ctx, srv.URL, "a@example.com", "secret123", nil)
		})

		identity, err := session.Init(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fresh", identity.Token)
		assert.Equal(t, "u1", identity.Profile.UID)
		assert.True(t, session.HasAnyRole(domain.RoleAdmin, domain.RoleMarketingTeam))
		assert.False(t, session.HasAnyRole(domain.RoleAdmin))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := SignIn(context.Background(), srv.URL, "a@example.com", "nope", nil)
		assert.True(t, IsStatus(err, http.StatusUnauthorized))
		assert.EqualError(t, err, "Invalid email or password (AUTH_001)")
	})
}
