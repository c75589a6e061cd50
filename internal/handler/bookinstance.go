package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary/internal/forms"
	"locallibrary/internal/models"
	"locallibrary/internal/repository"
	"locallibrary/internal/service"
)

type BookInstanceHandler struct {
	svc service.BookInstanceService
	dev bool
}

func NewBookInstanceHandler(svc service.BookInstanceService, dev bool) *BookInstanceHandler {
	return &BookInstanceHandler{svc: svc, dev: dev}
}

func (h *BookInstanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookinstances", h.List)
	rg.GET("/bookinstance/create", h.CreateGet)
	rg.POST("/bookinstance/create", h.CreatePost)
	rg.GET("/bookinstance/:id", h.Detail)
	rg.GET("/bookinstance/:id/update", h.UpdateGet)
	rg.POST("/bookinstance/:id/update", h.UpdatePost)
	rg.GET("/bookinstance/:id/delete", h.DeleteGet)
	rg.POST("/bookinstance/:id/delete", h.DeletePost)
}

func (h *BookInstanceHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	instances, err := h.svc.List(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "bookinstance_list.tmpl", gin.H{
		"title":             "Book Instance List",
		"bookinstance_list": instances,
	})
}

func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	instance, err := h.svc.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "Book Copy Not Found")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "bookinstance_detail.tmpl", gin.H{
		"title":        "Book: " + instance.Book.Title,
		"bookinstance": instance,
	})
}

func (h *BookInstanceHandler) CreateGet(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, err := h.svc.BookOptions(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "bookinstance_form.tmpl", gin.H{
		"title":     "Create BookInstance",
		"book_list": books,
		"statuses":  models.InstanceStatuses,
	})
}

func (h *BookInstanceHandler) CreatePost(c *gin.Context) {
	h.save(c, "Create BookInstance", uuid.Nil)
}

func (h *BookInstanceHandler) UpdateGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	instance, err := h.svc.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		showNotFound(c, "Book Copy Not Found")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	books, err := h.svc.BookOptions(ctx)
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "bookinstance_form.tmpl", gin.H{
		"title":        "Update BookInstance",
		"bookinstance": instance,
		"book_list":    books,
		"statuses":     models.InstanceStatuses,
	})
}

func (h *BookInstanceHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.save(c, "Update BookInstance", id)
}

func (h *BookInstanceHandler) save(c *gin.Context, title string, id uuid.UUID) {
	if err := c.Request.ParseForm(); err != nil {
		showServerError(c, err, h.dev)
		return
	}
	form := forms.NewBookInstanceForm(c.Request.PostForm)
	instance := form.Build(id)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if !form.Valid() {
		books, err := h.svc.BookOptions(ctx)
		if err != nil {
			showServerError(c, err, h.dev)
			return
		}
		c.HTML(http.StatusUnprocessableEntity, "bookinstance_form.tmpl", gin.H{
			"title":        title,
			"bookinstance": instance,
			"book_list":    books,
			"statuses":     models.InstanceStatuses,
			"errors":       form.Violations,
		})
		return
	}

	var err error
	if id == uuid.Nil {
		err = h.svc.Create(ctx, instance)
	} else {
		err = h.svc.Update(ctx, instance)
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, instance.URL())
}

func (h *BookInstanceHandler) DeleteGet(c *gin.Context) {
	id, ok := parseDeleteID(c, "/catalog/bookinstances")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	instance, err := h.svc.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.Redirect(http.StatusFound, "/catalog/bookinstances")
		return
	}
	if err != nil {
		showServerError(c, err, h.dev)
		return
	}
	c.HTML(http.StatusOK, "bookinstance_delete.tmpl", gin.H{
		"title":        "Delete Book Instance",
		"bookinstance": instance,
	})
}

// DeletePost removes the copy; nothing depends on a book instance so
// there is no dependent check.
func (h *BookInstanceHandler) DeletePost(c *gin.Context) {
	id, ok := parseDeleteID(c, "/catalog/bookinstances")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		showServerError(c, err, h.dev)
		return
	}
	c.Redirect(http.StatusFound, "/catalog/bookinstances")
}
