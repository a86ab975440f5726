package rest

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mkurbatov/amazon-search-cache/pkg/httpx"
)

// RouterConfig — параметры сборки роутера.
type RouterConfig struct {
	AllowedOrigins    []string // CORS-источники; пусто — CORS выключен
	OtelServiceName   string   // имя сервиса для otelgin; пусто — без трейсинга
	EnableCacheDelete bool     // сервисная ручка удаления кэша (не production)
}

// NewRouter — HTTP-роутер сервиса.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if cfg.OtelServiceName != "" {
		r.Use(otelgin.Middleware(cfg.OtelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowMethods = []string{"GET", "DELETE", "OPTIONS"}
		r.Use(cors.New(corsCfg))
	}

	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	products := r.Group("/amazon-products")
	products.GET("/search", h.search)
	products.GET("/health", h.cacheHealth)
	if cfg.EnableCacheDelete {
		products.DELETE("/cache/:query", h.dropCacheEntry)
	}

	return r
}
