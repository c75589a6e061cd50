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

type BookHandler struct {
	svc service.BookService
	dev bool
}

func NewBookHandler(svc service.BookService, dev bool) *BookHandler {
	return &BookHandler{svc: svc, dev: dev}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", h.List)
	rg.GET("/book/create", h.CreateGet)
	rg.POST("/book/create", h.CreatePost)
	rg.GET("/book/:id", h.Detail)
	rg.GET("/book/:id/update", h.UpdateGet)
	rg.POST("/book/:id/update", h.UpdatePost)
	rg.GET("/book/:id/delete", h.DeleteGet)
	rg.POST("/book/:id/delete", h.DeletePost)
}

func (h *BookHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, err := h.svc.List(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "book_list.tmpl", gin.H{
		"title":     "Book List",
		"book_list": books,
	})
}

func (h *BookHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, copies, err := h.svc.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "Book Not Found")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "book_detail.tmpl", gin.H{
		"title":          book.Title,
		"book":           book,
		"book_instances": copies,
	})
}

func (h *BookHandler) CreateGet(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	authors, genres, err := h.svc.FormOptions(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "book_form.tmpl", gin.H{
		"title":   "Create Book",
		"authors": authors,
		"genres":  genres,
	})
}

func (h *BookHandler) CreatePost(c *gin.Context) {
	h.save(c, "Create Book", uuid.Nil)
}

func (h *BookHandler) UpdateGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.svc.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "Book Not Found")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	authors, genres, err := h.svc.FormOptions(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "book_form.tmpl", gin.H{
		"title":   "Update Book",
		"book":    book,
		"authors": authors,
		"genres":  genres,
	})
}

func (h *BookHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.save(c, "Update Book", id)
}

// save runs the shared create/update pipeline. On violations the form
// collections are reloaded so the select and checkbox controls can be
// re-rendered with the submitted genres still checked.
func (h *BookHandler) save(c *gin.Context, title string, id uuid.UUID) {
	if err := c.Request.ParseForm(); err != nil {
		showServerError(c, err, h.dev)
		return
	}
	form := forms.NewBookForm(c.Request.PostForm)
	book := form.Build(id)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if !form.Valid() {
		authors, genres, err := h.svc.FormOptions(ctx)
		if err != nil {
			showServerError(c, err, h.dev)
			return
		}
		c.HTML(http.StatusUnprocessableEntity, "book_form.tmpl", gin.H{
			"title":   title,
			"book":    book,
			"authors": authors,
			"genres":  genres,
			"errors":  form.Violations,
		})
		return
	}

	var err error
	if id == uuid.Nil {
		err = h.svc.Create(ctx, book)
	} else {
		err = h.svc.Update(ctx, book)
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, book.URL())
}

func (h *BookHandler) DeleteGet(c *gin.Context) {
	id, ok := parseDeleteID(c, "/catalog/books")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, copies, err := h.svc.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.Redirect(http.StatusFound, "/catalog/books")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "book_delete.tmpl", gin.H{
		"title":          "Delete Book",
		"book":           book,
		"book_instances": copies,
	})
}

func (h *BookHandler) DeletePost(c *gin.Context) {
	id, ok := parseDeleteID(c, "/catalog/books")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	err := h.svc.Delete(ctx, id)
	if errors.Is(err, service.ErrHasDependents) {
		book, copies, derr := h.svc.Detail(ctx, id)
		if derr != nil {
			showServerError(c, derr, h.dev)
			return
		}
		c.HTML(http.StatusOK, "book_delete.tmpl", gin.H{
			"title":          "Delete Book",
			"book":           book,
			"book_instances": copies,
		})
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, "/catalog/books")
}
