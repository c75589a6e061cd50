package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary/internal/forms"
	"locallibrary/internal/repository"
	"locallibrary/internal/service"
)

type GenreHandler struct {
	svc service.GenreService
	dev bool
}

func NewGenreHandler(svc service.GenreService, dev bool) *GenreHandler {
	return &GenreHandler{svc: svc, dev: dev}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/genres", h.List)
	rg.GET("/genre/create", h.CreateGet)
	rg.POST("/genre/create", h.CreatePost)
	rg.GET("/genre/:id", h.Detail)
	rg.GET("/genre/:id/update", h.UpdateGet)
	rg.POST("/genre/:id/update", h.UpdatePost)
	rg.GET("/genre/:id/delete", h.DeleteGet)
	rg.POST("/genre/:id/delete", h.DeletePost)
}

func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	genres, err := h.svc.List(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "genre_list.tmpl", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

func (h *GenreHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	genre, books, err := h.svc.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "Genre Not Found")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "genre_detail.tmpl", gin.H{
		"title":       "Genre: " + genre.Name,
		"genre":       genre,
		"genre_books": books,
	})
}

func (h *GenreHandler) CreateGet(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form.tmpl", gin.H{
		"title": "Create Genre",
	})
}

// CreatePost persists a new genre, or redirects to the already-stored
// genre when the name matches one ignoring case.
func (h *GenreHandler) CreatePost(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		showServerError(c, err, h.dev)
		return
	}
	form := forms.NewGenreForm(c.Request.PostForm)
	genre := form.Build(uuid.Nil)

	if !form.Valid() {
		c.HTML(http.StatusUnprocessableEntity, "genre_form.tmpl", gin.H{
			"title":  "Create Genre",
			"genre":  genre,
			"errors": form.Violations,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	saved, err := h.svc.Create(ctx, genre)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, saved.URL())
}

func (h *GenreHandler) UpdateGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	genre, err := h.svc.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "Genre Not Found")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "genre_form.tmpl", gin.H{
		"title": "Update Genre",
		"genre": genre,
	})
}

func (h *GenreHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		showServerError(c, err, h.dev)
		return
	}
	form := forms.NewGenreForm(c.Request.PostForm)
	genre := form.Build(id)

	if !form.Valid() {
		c.HTML(http.StatusUnprocessableEntity, "genre_form.tmpl", gin.H{
			"title":  "Update Genre",
			"genre":  genre,
			"errors": form.Violations,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Update(ctx, genre); err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, genre.URL())
}

func (h *GenreHandler) DeleteGet(c *gin.Context) {
	id, ok := parseDeleteID(c, "/catalog/genres")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	genre, books, err := h.svc.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.Redirect(http.StatusFound, "/catalog/genres")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "genre_delete.tmpl", gin.H{
		"title":       "Delete Genre",
		"genre":       genre,
		"genre_books": books,
	})
}

func (h *GenreHandler) DeletePost(c *gin.Context) {
	id, ok := parseDeleteID(c, "/catalog/genres")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	err := h.svc.Delete(ctx, id)
	if errors.Is(err, service.ErrHasDependents) {
		genre, books, derr := h.svc.Detail(ctx, id)
		if derr != nil {
			showServerError(c, derr, h.dev)
			return
		}
		c.HTML(http.StatusOK, "genre_delete.tmpl", gin.H{
			"title":       "Delete Genre",
			"genre":       genre,
			"genre_books": books,
		})
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, "/catalog/genres")
}
