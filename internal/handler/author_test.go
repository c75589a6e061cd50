package handler_test

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"locallibrary/internal/handler"
	"locallibrary/internal/models"
	"locallibrary/internal/repository"
	"locallibrary/internal/service"
)

// Minimal template set so c.HTML can resolve every page name the
// handlers render.
const testTemplates = `
{{define "index.tmpl"}}index{{end}}
{{define "error_page.tmpl"}}error:{{.title}}{{end}}
{{define "author_list.tmpl"}}author_list:{{len .author_list}}{{end}}
{{define "author_detail.tmpl"}}author_detail{{end}}
{{define "author_form.tmpl"}}author_form:{{.title}}:{{len .errors}}{{end}}
{{define "author_delete.tmpl"}}author_delete:{{len .author_books}}{{end}}
{{define "genre_list.tmpl"}}genre_list{{end}}
{{define "genre_detail.tmpl"}}genre_detail{{end}}
{{define "genre_form.tmpl"}}genre_form:{{.title}}:{{len .errors}}{{end}}
{{define "genre_delete.tmpl"}}genre_delete{{end}}
{{define "book_list.tmpl"}}book_list{{end}}
{{define "book_detail.tmpl"}}book_detail{{end}}
{{define "book_form.tmpl"}}book_form:{{.title}}:{{len .errors}}:{{len .authors}}{{end}}
{{define "book_delete.tmpl"}}book_delete:{{len .book_instances}}{{end}}
{{define "bookinstance_list.tmpl"}}bookinstance_list{{end}}
{{define "bookinstance_detail.tmpl"}}bookinstance_detail{{end}}
{{define "bookinstance_form.tmpl"}}bookinstance_form:{{.title}}:{{len .errors}}{{end}}
{{define "bookinstance_delete.tmpl"}}bookinstance_delete{{end}}
`

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- MOCK SERVICE ---

type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) List(ctx context.Context) ([]models.Author, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorService) Detail(ctx context.Context, id uuid.UUID) (*models.Author, []models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Author), args.Get(1).([]models.Book), args.Error(2)
}

func (m *MockAuthorService) Get(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorService) Create(ctx context.Context, a *models.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAuthorService) Update(ctx context.Context, a *models.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupAuthorRouter(svc *MockAuthorService) *gin.Engine {
	r := newTestRouter()
	h := handler.NewAuthorHandler(svc, true)
	h.RegisterRoutes(r.Group("/catalog"))
	return r
}

// --- TESTS ---

func TestAuthorList(t *testing.T) {
	svc := new(MockAuthorService)
	r := setupAuthorRouter(svc)

	svc.On("List", mock.Anything).Return([]models.Author{
		{ID: uuid.New(), FirstName: "Jorge", FamilyName: "Borges"},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/catalog/authors", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "author_list:1")
	svc.AssertExpectations(t)
}

func TestAuthorDetailNotFound(t *testing.T) {
	svc := new(MockAuthorService)
	r := setupAuthorRouter(svc)

	id := uuid.New()
	svc.On("Detail", mock.Anything, id).Return(nil, nil, repository.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/catalog/author/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthorCreatePost(t *testing.T) {
	t.Run("InvalidRerendersWithViolations", func(t *testing.T) {
		svc := new(MockAuthorService)
		r := setupAuthorRouter(svc)

		w := postForm(r, "/catalog/author/create", url.Values{
			"first_name":  {"   "},
			"family_name": {"Borges"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "author_form:Create Author:1")
		// No persistence call happens on a validation failure.
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ValidPersistsAndRedirects", func(t *testing.T) {
		svc := new(MockAuthorService)
		r := setupAuthorRouter(svc)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Author) bool {
			return a.FirstName == "Jorge" && a.FamilyName == "Borges"
		})).Return(nil).Once()

		w := postForm(r, "/catalog/author/create", url.Values{
			"first_name":  {"Jorge"},
			"family_name": {"Borges"},
		})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/catalog/author/"))
		svc.AssertExpectations(t)
	})
}

func TestAuthorUpdatePostKeepsIdentity(t *testing.T) {
	svc := new(MockAuthorService)
	r := setupAuthorRouter(svc)

	id := uuid.New()
	svc.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Author) bool {
		return a.ID == id
	})).Return(nil).Once()

	w := postForm(r, "/catalog/author/"+id.String()+"/update", url.Values{
		"first_name":  {"Jorge"},
		"family_name": {"Borges"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/author/"+id.String(), w.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestAuthorDelete(t *testing.T) {
	t.Run("MissingTargetRedirectsToList", func(t *testing.T) {
		svc := new(MockAuthorService)
		r := setupAuthorRouter(svc)

		id := uuid.New()
		svc.On("Detail", mock.Anything, id).Return(nil, nil, repository.ErrNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/catalog/author/"+id.String()+"/delete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))
	})

	t.Run("MalformedIDRedirectsToListToo", func(t *testing.T) {
		// Delete targets that cannot resolve follow the same
		// redirect-to-list policy whether the id is unknown or
		// unparseable.
		svc := new(MockAuthorService)
		r := setupAuthorRouter(svc)

		req, _ := http.NewRequest(http.MethodGet, "/catalog/author/not-a-uuid/delete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))

		w = postForm(r, "/catalog/author/not-a-uuid/delete", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("DependentsRefuseDeletion", func(t *testing.T) {
		svc := new(MockAuthorService)
		r := setupAuthorRouter(svc)

		id := uuid.New()
		author := &models.Author{ID: id, FirstName: "Jorge", FamilyName: "Borges"}
		books := []models.Book{{ID: uuid.New(), Title: "Ficciones", AuthorID: id}}

		svc.On("Delete", mock.Anything, id).Return(service.ErrHasDependents).Once()
		svc.On("Detail", mock.Anything, id).Return(author, books, nil).Once()

		w := postForm(r, "/catalog/author/"+id.String()+"/delete", nil)

		// Re-rendered confirmation listing the dependent book.
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "author_delete:1")
		svc.AssertExpectations(t)
	})

	t.Run("NoDependentsDeletesAndRedirects", func(t *testing.T) {
		svc := new(MockAuthorService)
		r := setupAuthorRouter(svc)

		id := uuid.New()
		svc.On("Delete", mock.Anything, id).Return(nil).Once()

		w := postForm(r, "/catalog/author/"+id.String()+"/delete", nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))
		svc.AssertExpectations(t)
	})
}
