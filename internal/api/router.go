// Package api exposes the projection engine over HTTP.
package api

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/rpgo/investment-calculator/internal/api/handlers"
	"github.com/rpgo/investment-calculator/internal/api/middleware"
	"github.com/rpgo/investment-calculator/internal/api/models"
	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// Options configures the HTTP service.
type Options struct {
	Engine         *calculation.ProjectionEngine
	Currency       domain.CurrencyOptions
	AllowedOrigins []string
	// AccessLog receives one line per request; nil disables access logging.
	AccessLog io.Writer
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	if opts.AccessLog != nil {
		router.Use(gin.LoggerWithWriter(opts.AccessLog))
	}
	router.Use(middleware.ErrorHandler())

	currency := opts.Currency
	if currency.Symbol == "" && currency.Grouping == "" {
		currency = domain.DefaultCurrency()
	}
	projectionHandler := handlers.NewProjectionHandler(opts.Engine, currency)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/defaults", projectionHandler.Defaults)
		api.GET("/formats", handlers.ListFormats)

		api.POST("/projections", projectionHandler.Project)
		api.POST("/projections/compare", projectionHandler.Compare)
		api.POST("/projections/render", projectionHandler.Render)
		api.POST("/projections/sweep", projectionHandler.Sweep)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewError("NOT_FOUND", "no route for "+c.Request.Method+" "+c.Request.URL.Path))
	})

	return router
}

// NewHandler wraps the router with CORS handling.
func NewHandler(opts Options) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         int((12 * time.Hour).Seconds()),
	})
	return c.Handler(NewRouter(opts))
}

// NewServer returns an http.Server serving the API on addr.
func NewServer(addr string, opts Options) *http.Server {
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	return &http.Server{
		Addr:              addr,
		Handler:           NewHandler(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
