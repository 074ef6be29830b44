package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"rateboard/internal/infra/config"
	"rateboard/internal/infra/obs"
)

type RoomsHTTP interface {
	List(c *gin.Context)
}

type SeasonHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Ending(c *gin.Context)
}

type PricingHTTP interface {
	Resolve(c *gin.Context)
	Day(c *gin.Context)
	Calendar(c *gin.Context)
	AddManual(c *gin.Context)
	BulkAdjust(c *gin.Context)
	DeleteManual(c *gin.Context)
	ClearManual(c *gin.Context)
}

type Handlers struct {
	Rooms   RoomsHTTP
	Seasons SeasonHTTP
	Pricing PricingHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := NewRouter(obsMW, health, h)
	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

// NewRouter builds the route table; split from NewServer so handler tests can
// drive it through httptest.
func NewRouter(obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Rooms != nil {
		api.GET("/rooms", h.Rooms.List)
	}
	if h.Seasons != nil {
		api.GET("/seasons", h.Seasons.List)
		api.POST("/seasons", h.Seasons.Create)
		api.PUT("/seasons/:id", h.Seasons.Update)
		api.DELETE("/seasons/:id", h.Seasons.Delete)
		api.GET("/seasons/ending", h.Seasons.Ending)
	}
	if h.Pricing != nil {
		api.GET("/prices/resolve", h.Pricing.Resolve)
		api.GET("/calendar", h.Pricing.Calendar)
		api.GET("/calendar/:date", h.Pricing.Day)
		api.POST("/manual-prices", h.Pricing.AddManual)
		api.POST("/manual-prices/bulk", h.Pricing.BulkAdjust)
		api.DELETE("/manual-prices/:id", h.Pricing.DeleteManual)
		api.DELETE("/manual-prices", h.Pricing.ClearManual)
	}

	return router
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
