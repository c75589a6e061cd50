// Package handler wires the catalog pages to gin: each entity has a
// handler type with RegisterRoutes on a router group, rendering HTML
// templates and redirecting after successful writes.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestTimeout bounds every database round trip a handler makes.
const requestTimeout = 5 * time.Second

// parseID extracts and parses the :id route parameter. A malformed id
// can never resolve to an entity, so it renders the not-found page
// directly and reports false.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		showNotFound(c, "Invalid identifier")
		return uuid.Nil, false
	}
	return id, true
}

// parseDeleteID is the delete-path variant: a malformed id cannot
// resolve any better than a well-formed unknown one, so both follow
// the redirect-to-list policy instead of rendering the 404 page.
func parseDeleteID(c *gin.Context, listPath string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, listPath)
		return uuid.Nil, false
	}
	return id, true
}

func showNotFound(c *gin.Context, title string) {
	c.HTML(http.StatusNotFound, "error_page.tmpl", gin.H{
		"title": title,
		"error": "The record you requested does not exist.",
	})
}

// showServerError renders the generic failure page. The underlying
// error detail is exposed only in development mode.
func showServerError(c *gin.Context, err error, dev bool) {
	slog.Error("request failed",
		slog.String("request_method", c.Request.Method),
		slog.String("request_url", c.Request.URL.String()),
		slog.String("error", err.Error()),
	)
	detail := ""
	if dev {
		detail = err.Error()
	}
	c.HTML(http.StatusInternalServerError, "error_page.tmpl", gin.H{
		"title": "Database Error",
		"error": detail,
	})
}
