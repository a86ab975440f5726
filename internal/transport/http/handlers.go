package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/amazon-search-cache/internal/domain"
	"github.com/mkurbatov/amazon-search-cache/internal/ports"
	"github.com/mkurbatov/amazon-search-cache/pkg/validate"
)

// Handler — HTTP-обработчики поверх прикладного сервиса.
type Handler struct {
	service    ports.SearchService
	log        ports.Logger
	timeout    time.Duration // предел на обработку одного запроса; 0 — без лимита
	version    string
	devDetails bool // детали ошибок провайдера в теле 503 (только вне production)
	startedAt  time.Time
}

// NewHandler — конструктор Handler.
func NewHandler(service ports.SearchService, log ports.Logger, timeout time.Duration, version string, devDetails bool) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		timeout:    timeout,
		version:    version,
		devDetails: devDetails,
		startedAt:  time.Now(),
	}
}

type searchMetadata struct {
	Query     string        `json:"query"`
	ItemCount int           `json:"itemCount"`
	Source    domain.Source `json:"source"`
	TookMs    int64         `json:"tookMs"`
}

type searchEnvelope struct {
	Products []domain.Product `json:"products"`
	Metadata searchMetadata   `json:"metadata"`
}

// search — GET /amazon-products/search?query=...&itemCount=...
// Валидация до любого I/O; классификация ошибок по контракту:
// 400 — невалидный запрос, 503 — сбой провайдера, 500 — всё остальное.
func (h *Handler) search(c *gin.Context) {
	start := time.Now()

	q, err := validate.ParseSearchQuery(c.Query("query"), c.Query("itemCount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res, err := h.service.Search(ctx, q)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			h.log.Errorf(ctx, "search provider failed query=%q err=%v", q.Raw, err)
			body := gin.H{"error": "search service temporarily unavailable"}
			if h.devDetails {
				body["details"] = err.Error()
			}
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		h.log.Errorf(ctx, "search failed query=%q err=%v", q.Raw, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	products := res.Products
	if products == nil {
		products = []domain.Product{}
	}

	c.JSON(http.StatusOK, searchEnvelope{
		Products: products,
		Metadata: searchMetadata{
			Query:     q.Raw,
			ItemCount: q.ItemCount,
			Source:    res.Source,
			TookMs:    time.Since(start).Milliseconds(),
		},
	})
}

// health — GET /health: процесс жив; метаданные для мониторинга.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// cacheHealth — GET /amazon-products/health: доступность хранилища кэша.
func (h *Handler) cacheHealth(c *gin.Context) {
	if err := h.service.CheckCache(c.Request.Context()); err != nil {
		h.log.Errorf(c.Request.Context(), "cache health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// dropCacheEntry — DELETE /amazon-products/cache/:query?itemCount=...
// Сервисный путь; регистрируется только вне production.
func (h *Handler) dropCacheEntry(c *gin.Context) {
	q, err := validate.ParseSearchQuery(c.Param("query"), c.Query("itemCount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DropCacheEntry(c.Request.Context(), q); err != nil {
		h.log.Errorf(c.Request.Context(), "drop cache entry failed key=%s err=%v", q.CacheKey(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": q.CacheKey()})
}
