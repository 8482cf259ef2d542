package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

type observation struct {
	route  string
	method string
	status int
}

type fakeObserver struct {
	requests []observation
	codes    []string
}

func (f *fakeObserver) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	f.requests = append(f.requests, observation{route, method, status})
}

func (f *fakeObserver) ObserveError(code string) {
	f.codes = append(f.codes, code)
}

func TestMethodGuard(t *testing.T) {
	Convey("Given an engine behind the method guard", t, func() {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(OpenCORS(), JSONContentType(), MethodGuard(false))
		r.GET("/students", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

		Convey("OPTIONS is answered without dispatch", func() {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/students", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.Len(), ShouldEqual, 0)
			So(rec.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		})

		Convey("HEAD is not an API method", func() {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/students", nil))

			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})

		Convey("GET is dispatched with the JSON content type", func() {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldEqual, "application/json")
		})
	})
}

func TestBrotli(t *testing.T) {
	Convey("Given an engine with brotli above 64 bytes", t, func() {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(Brotli(64))
		long := strings.Repeat("kitab ", 50)
		r.GET("/long", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"text": long}) })
		r.GET("/short", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"text": "ok"}) })

		get := func(path, accept string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Accept-Encoding", accept)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			return rec
		}

		Convey("Long bodies are compressed for br clients", func() {
			rec := get("/long", "gzip;q=1.0, br;q=0.8")

			So(rec.Header().Get("Content-Encoding"), ShouldEqual, "br")
			plain, err := io.ReadAll(brotli.NewReader(rec.Body))
			So(err, ShouldBeNil)
			var body map[string]string
			So(json.Unmarshal(plain, &body), ShouldBeNil)
			So(body["text"], ShouldEqual, long)
		})

		Convey("Short bodies pass through", func() {
			rec := get("/short", "br")

			So(rec.Header().Get("Content-Encoding"), ShouldBeEmpty)
			So(rec.Body.String(), ShouldEqual, `{"text":"ok"}`)
		})

		Convey("Clients without br get plain bodies", func() {
			rec := get("/long", "gzip")

			So(rec.Header().Get("Content-Encoding"), ShouldBeEmpty)
			So(rec.Body.String(), ShouldContainSubstring, "kitab")
		})
	})
}

func TestRequestLoggerAndMetrics(t *testing.T) {
	Convey("Given an engine with logging and metrics", t, func() {
		gin.SetMode(gin.TestMode)
		var buf bytes.Buffer
		obs := &fakeObserver{}

		r := gin.New()
		r.Use(response.RequestIDMiddleware(), RequestLogger(zerolog.New(&buf)), Metrics(obs), Recovery(zerolog.Nop(), false))
		r.GET("/contents/:id", func(c *gin.Context) {
			response.Fail(c, response.NotFound("Content not found"), false)
		})
		r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

		Convey("A failed request is logged and counted with its code", func() {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contents/9", nil))

			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(buf.String(), ShouldContainSubstring, `"status":404`)
			So(buf.String(), ShouldContainSubstring, `"error_code":"NOT_FOUND"`)
			So(obs.requests, ShouldResemble, []observation{{"/contents/:id", http.MethodGet, http.StatusNotFound}})
			So(obs.codes, ShouldResemble, []string{"NOT_FOUND"})
		})

		Convey("A panic is recovered as 500", func() {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
			So(rec.Body.String(), ShouldContainSubstring, "kaboom")
			So(obs.codes, ShouldResemble, []string{"INTERNAL_ERROR"})
		})
	})
}
