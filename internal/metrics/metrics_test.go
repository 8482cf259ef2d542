package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecorder(t *testing.T) {
	Convey("Given a fresh recorder", t, func() {
		r := New()

		Convey("ObserveRequest counts by route, method and status", func() {
			r.ObserveRequest("/students", http.MethodGet, 200, 10*time.Millisecond)
			r.ObserveRequest("/students", http.MethodGet, 200, 20*time.Millisecond)
			r.ObserveRequest("", http.MethodGet, 404, time.Millisecond)

			So(testutil.ToFloat64(r.httpRequests.WithLabelValues("/students", "GET", "200")), ShouldEqual, 2)
			So(testutil.ToFloat64(r.httpRequests.WithLabelValues("unmatched", "GET", "404")), ShouldEqual, 1)
		})

		Convey("ObserveError counts codes and rate-limit rejections", func() {
			r.ObserveError("NOT_FOUND")
			r.ObserveError("RATE_LIMIT_EXCEEDED")

			So(testutil.ToFloat64(r.apiErrors.WithLabelValues("NOT_FOUND")), ShouldEqual, 1)
			So(testutil.ToFloat64(r.rateLimited), ShouldEqual, 1)
		})

		Convey("Handler exposes the collectors", func() {
			r.ObserveRequest("/contents", http.MethodPost, 200, time.Millisecond)

			rec := httptest.NewRecorder()
			r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "arabic_learning_http_requests_total")
		})
	})
}
