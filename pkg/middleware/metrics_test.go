package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type observation struct {
	route, method string
	status        int
}

type recordingObserver struct {
	seen []observation
}

func (o *recordingObserver) ObserveHTTPRequest(route, method string, status int, _ time.Duration) {
	o.seen = append(o.seen, observation{route: route, method: method, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	observer := &recordingObserver{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	MetricsMiddleware(observer, "/v1/users/:uid")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/users/abc", nil))

	assert.Equal(t, []observation{{route: "/v1/users/:uid", method: http.MethodPut, status: http.StatusCreated}}, observer.seen)
}

func TestMetricsMiddleware_NilObserver(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, MetricsMiddleware(nil, "/healthcheck")(next))
}
