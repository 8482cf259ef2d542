package router

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stemsi/arabic-learning-backend/internal/config"
	"github.com/stemsi/arabic-learning-backend/internal/handler"
	"github.com/stemsi/arabic-learning-backend/internal/metrics"
	"github.com/stemsi/arabic-learning-backend/internal/middleware"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/response"
	"github.com/stemsi/arabic-learning-backend/internal/validator"
)

// Endpoints binds the operations one resource supports. A nil entry is not routed.
type Endpoints struct {
	List   handler.Func
	Get    handler.Func
	Create handler.Func
	Delete handler.Func
}

func (e Endpoints) empty() bool {
	return e.List == nil && e.Get == nil && e.Create == nil && e.Delete == nil
}

// Table maps every exposed resource to its endpoints.
type Table map[model.Resource]Endpoints

// Validate rejects unknown resources and resources without endpoints.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("router: resource table is empty")
	}
	for res, ep := range t {
		if !res.Valid() {
			return errors.Errorf("router: unknown resource %q", res)
		}
		if ep.empty() {
			return errors.Errorf("router: resource %q has no endpoints", res)
		}
	}
	return nil
}

// Handlers groups all handler instances for route setup.
type Handlers struct {
	API        *handler.APIHandler
	Student    *handler.StudentHandler
	Content    *handler.ContentHandler
	QuizResult *handler.QuizResultHandler
}

// Table returns the resource table served by these handlers.
func (h *Handlers) Table() Table {
	return Table{
		model.ResourceStudents: {
			List:   h.Student.List,
			Get:    h.Student.Get,
			Create: h.Student.Create,
		},
		model.ResourceContents: {
			List:   h.Content.List,
			Get:    h.Content.Get,
			Create: h.Content.Create,
			Delete: h.Content.Delete,
		},
		model.ResourceQuizResults: {
			List:   h.QuizResult.List,
			Create: h.QuizResult.Submit,
		},
	}
}

// Options carries the optional collaborators of the router.
type Options struct {
	// Limiter guards writes when set.
	Limiter *middleware.RateLimiter
	// Metrics enables request metrics and GET /metrics when set.
	Metrics *metrics.Recorder
}

// SetupRouter validates the resource table and builds the HTTP entry point.
// The returned handler strips mount prefixes before gin sees the path.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger, opts Options) (http.Handler, error) {
	table := handlers.Table()
	if err := table.Validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	// Forwarded client addresses are honoured only from these peers; none by default.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, errors.Wrap(err, "router: invalid trusted proxies")
	}

	withStack := !cfg.IsProduction()
	httpLog := log.With().Str("component", "http").Logger()

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(httpLog))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.Brotli(cfg.CompressionMinBytes))
	router.Use(middleware.Recovery(httpLog, withStack))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*).
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
		corsConfig.ExposeHeaders = []string{"X-Request-ID"}
		corsConfig.MaxAge = 12 * time.Hour
		corsConfig.OptionsResponseStatusCode = http.StatusOK
		router.Use(cors.New(corsConfig))
	} else {
		router.Use(middleware.OpenCORS())
	}
	router.Use(middleware.JSONContentType())
	router.Use(middleware.MethodGuard(withStack))

	router.GET("/", wrap(handlers.API.Root, withStack))
	router.GET("/health", handlers.API.Health)
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// Writes go through the rate limiter when one is configured.
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if opts.Limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{opts.Limiter.Middleware(), h}
	}

	resources := make([]model.Resource, 0, len(table))
	for res := range table {
		resources = append(resources, res)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i] < resources[j] })

	for _, res := range resources {
		ep := table[res]
		collection := "/" + string(res)
		item := collection + "/:id"

		if ep.List != nil {
			router.GET(collection, wrap(ep.List, withStack))
		}
		if ep.Get != nil {
			router.GET(item, wrap(ep.Get, withStack))
		}
		if ep.Create != nil {
			router.POST(collection, guarded(wrap(ep.Create, withStack))...)
		}
		if ep.Delete != nil {
			router.DELETE(item, guarded(wrap(ep.Delete, withStack))...)
		}
	}

	// Updates are not supported on any resource.
	router.PUT("/*path", func(c *gin.Context) {
		response.Fail(c, response.NotImplemented(), withStack)
	})

	// An empty POST is rejected before the path is resolved.
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodPost {
			if _, err := validator.RequireBody(c); err != nil {
				response.Fail(c, err, withStack)
				return
			}
		}
		response.Fail(c, response.NotFound(response.MsgEndpointNotFound), withStack)
	})

	log.Info().Int("resources", len(resources)).Str("mount_prefix", cfg.MountPrefix).Msg("Routes registered")

	return StripMount(router, cfg.MountPrefix), nil
}

// wrap adapts a handler.Func to gin. Errors are rendered exactly once here.
func wrap(fn handler.Func, withStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := fn(c)
		if err != nil {
			response.Fail(c, err, withStack)
			return
		}
		response.OK(c, data)
	}
}
