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

type AuthorHandler struct {
	svc service.AuthorService
	dev bool
}

func NewAuthorHandler(svc service.AuthorService, dev bool) *AuthorHandler {
	return &AuthorHandler{svc: svc, dev: dev}
}

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/authors", h.List)
	rg.GET("/author/create", h.CreateGet)
	rg.POST("/author/create", h.CreatePost)
	rg.GET("/author/:id", h.Detail)
	rg.GET("/author/:id/update", h.UpdateGet)
	rg.POST("/author/:id/update", h.UpdatePost)
	rg.GET("/author/:id/delete", h.DeleteGet)
	rg.POST("/author/:id/delete", h.DeletePost)
}

func (h *AuthorHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	authors, err := h.svc.List(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "author_list.tmpl", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

func (h *AuthorHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	author, books, err := h.svc.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "Author Not Found")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "author_detail.tmpl", gin.H{
		"title":        "Author Detail",
		"author":       author,
		"author_books": books,
	})
}

func (h *AuthorHandler) CreateGet(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form.tmpl", gin.H{
		"title": "Create Author",
	})
}

func (h *AuthorHandler) CreatePost(c *gin.Context) {
	h.save(c, "Create Author", uuid.Nil)
}

func (h *AuthorHandler) UpdateGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	author, err := h.svc.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "Author Not Found")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "author_form.tmpl", gin.H{
		"title":  "Update Author",
		"author": author,
	})
}

func (h *AuthorHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.save(c, "Update Author", id)
}

// save runs the shared create/update pipeline: sanitize and validate
// exactly once, build the candidate, then either re-render the form
// with violations or persist and redirect to the detail page. A zero
// id means create; any other id is preserved through the update.
func (h *AuthorHandler) save(c *gin.Context, title string, id uuid.UUID) {
	if err := c.Request.ParseForm(); err != nil {
		showServerError(c, err, h.dev)
		return
	}
	form := forms.NewAuthorForm(c.Request.PostForm)
	author := form.Build(id)

	if !form.Valid() {
		c.HTML(http.StatusUnprocessableEntity, "author_form.tmpl", gin.H{
			"title":  title,
			"author": author,
			"errors": form.Violations,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var err error
	if id == uuid.Nil {
		err = h.svc.Create(ctx, author)
	} else {
		err = h.svc.Update(ctx, author)
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, author.URL())
}

func (h *AuthorHandler) DeleteGet(c *gin.Context) {
	id, ok := parseDeleteID(c, "/catalog/authors")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	author, books, err := h.svc.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.Redirect(http.StatusFound, "/catalog/authors")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "author_delete.tmpl", gin.H{
		"title":        "Delete Author",
		"author":       author,
		"author_books": books,
	})
}

func (h *AuthorHandler) DeletePost(c *gin.Context) {
	id, ok := parseDeleteID(c, "/catalog/authors")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	err := h.svc.Delete(ctx, id)
	if errors.Is(err, service.ErrHasDependents) {
		// Refused: re-render the confirmation page with the books
		// that still reference the author.
		author, books, derr := h.svc.Detail(ctx, id)
		if derr != nil {
			showServerError(c, derr, h.dev)
			return
		}
		c.HTML(http.StatusOK, "author_delete.tmpl", gin.H{
			"title":        "Delete Author",
			"author":       author,
			"author_books": books,
		})
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, "/catalog/authors")
}
