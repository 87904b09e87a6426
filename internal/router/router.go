// Package router assembles the gin engine and its middlewares.
package router

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/budgetbuddy/backend/internal/controllers"
	"github.com/budgetbuddy/backend/internal/controllers/healthz"
	"github.com/budgetbuddy/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router controls the routes for the API.
func Router(co *controllers.Controller) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if err := registerPrometheusMetrics(); err != nil {
		return nil, err
	}
	r.Use(MetricsMiddleware())

	pprof.Register(r)

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.OPTIONS("/metrics", httputil.OptionsGet)

	healthz.RegisterRoutes(r.Group("/healthz"))

	v1 := r.Group("/v1")
	{
		v1.GET("", GetV1)
		v1.OPTIONS("", OptionsV1)
	}

	co.RegisterExpenseRoutes(v1.Group("/expenses"))
	co.RegisterCategoryRoutes(v1.Group("/categories"))
	co.RegisterGoalRoutes(v1.Group("/goals"))
	co.RegisterInsightsRoutes(v1)

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/healthz"`
	Metrics string `json:"metrics" example:"https://example.com/metrics"` // Endpoint returning Prometheus metrics
	Version string `json:"version" example:"https://example.com/version"`
	V1      string `json:"v1" example:"https://example.com/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: "/healthz",
			Metrics: "/metrics",
			Version: "/version",
			V1:      "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Expenses   string `json:"expenses" example:"https://example.com/v1/expenses"`
	Categories string `json:"categories" example:"https://example.com/v1/categories"`
	Goals      string `json:"goals" example:"https://example.com/v1/goals"`
	Insights   string `json:"insights" example:"https://example.com/v1/insights"`
	Export     string `json:"export" example:"https://example.com/v1/export"`
	Reset      string `json:"reset" example:"https://example.com/v1/reset"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Expenses:   "/v1/expenses",
			Categories: "/v1/categories",
			Goals:      "/v1/goals",
			Insights:   "/v1/insights",
			Export:     "/v1/export",
			Reset:      "/v1/reset",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
