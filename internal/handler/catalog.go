package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/service"
)

// CatalogHandler serves the dashboard home page.
type CatalogHandler struct {
	stats service.StatsService
	dev   bool
}

func NewCatalogHandler(stats service.StatsService, dev bool) *CatalogHandler {
	return &CatalogHandler{stats: stats, dev: dev}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Index)
	rg.GET("/", h.Index)
}

func (h *CatalogHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	summary, err := h.stats.Summary(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"title":                         "Local Library Home",
		"book_count":                    summary.Books,
		"book_instance_count":           summary.BookInstances,
		"book_instance_available_count": summary.InstancesAvailable,
		"author_count":                  summary.Authors,
		"genre_count":                   summary.Genres,
	})
}

// NotFound is the fallback for unmatched routes.
func NotFound(c *gin.Context) {
	showNotFound(c, "Page Not Found")
}
