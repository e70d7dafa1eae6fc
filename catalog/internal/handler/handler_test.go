package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/config"
	"github.com/Astemirdum/locallibrary/catalog/internal/errs"
	"github.com/Astemirdum/locallibrary/catalog/internal/handler"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"

	service_mocks "github.com/Astemirdum/locallibrary/catalog/internal/handler/mocks"
)

func newTestRouter(t *testing.T, env string) (http.Handler, *service_mocks.MockCatalogService) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockCatalogService(c)
	h := handler.New(svc, zap.NewNop(), &config.Config{Env: env})
	return h.NewRouter(), svc
}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestHandler_AuthorDetail(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	author := model.Author{ID: id, FirstName: "Flann", FamilyName: "O&#x27;Brien"}

	type response struct {
		expectedCode int
		contains     string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService)

	tests := []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/catalog/author/" + id.String(),
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetAuthor(gomock.Any(), id).Return(author, nil)
				r.EXPECT().AuthorDetail(gomock.Any(), author).Return(model.AuthorDetailPage{
					Title:  "Author Detail",
					Author: author,
					Books:  []model.Book{{ID: uuid.New(), Title: "The Third Policeman", Summary: "A murder"}},
				}, nil)
			},
			response: response{expectedCode: http.StatusOK, contains: "O&#39;Brien, Flann"},
		},
		{
			name:   "err. not found",
			target: "/catalog/author/" + id.String(),
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetAuthor(gomock.Any(), id).Return(model.Author{}, errs.NotFound(model.KindAuthor))
			},
			response: response{expectedCode: http.StatusNotFound, contains: "Author not found"},
		},
		{
			name:         "err. malformed id",
			target:       "/catalog/author/42",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response:     response{expectedCode: http.StatusNotFound, contains: "Author not found"},
		},
		{
			name:   "err. internal",
			target: "/catalog/author/" + id.String(),
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetAuthor(gomock.Any(), id).Return(model.Author{}, errors.New("db internal"))
			},
			response: response{expectedCode: http.StatusInternalServerError, contains: "Internal Server Error"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router, svc := newTestRouter(t, "")
			tt.mockBehavior(svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, http.NoBody))

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Contains(t, w.Body.String(), tt.response.contains)
			require.NotContains(t, w.Body.String(), "db internal")
		})
	}
}

func TestHandler_ErrorDetailInDevelopment(t *testing.T) {
	t.Parallel()
	router, svc := newTestRouter(t, config.EnvDevelopment)
	svc.EXPECT().Index(gomock.Any()).Return(model.IndexPage{}, errors.New("db internal"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", http.NoBody))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "db internal")
}

func TestHandler_Index(t *testing.T) {
	t.Parallel()
	router, svc := newTestRouter(t, "")
	svc.EXPECT().Index(gomock.Any()).Return(model.IndexPage{
		Title:                      "Local Library Home",
		BookCount:                  7,
		BookInstanceAvailableCount: 3,
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "<title>Local Library Home</title>")
	require.Contains(t, w.Body.String(), "<strong>Books:</strong> 7")
	require.Contains(t, w.Body.String(), "<strong>Copies available:</strong> 3")
}

func TestHandler_HomeRedirect(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/catalog", w.Header().Get("Location"))
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_DeleteAbsentRedirectsToList(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	tests := []struct {
		name         string
		method       string
		target       string
		mockBehavior func(r *service_mocks.MockCatalogService)
		location     string
	}{
		{
			name:   "author get",
			method: http.MethodGet,
			target: "/catalog/author/" + id.String() + "/delete",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetAuthor(gomock.Any(), id).Return(model.Author{}, errs.NotFound(model.KindAuthor))
			},
			location: model.AuthorsPath,
		},
		{
			name:   "genre post",
			method: http.MethodPost,
			target: "/catalog/genre/" + id.String() + "/delete",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetGenre(gomock.Any(), id).Return(model.Genre{}, errs.NotFound(model.KindGenre))
			},
			location: model.GenresPath,
		},
		{
			name:         "book malformed id",
			method:       http.MethodGet,
			target:       "/catalog/book/xyz/delete",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			location:     model.BooksPath,
		},
		{
			name:   "bookinstance post",
			method: http.MethodPost,
			target: "/catalog/bookinstance/" + id.String() + "/delete",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetBookInstance(gomock.Any(), id).Return(model.BookInstance{}, errs.NotFound(model.KindBookInstance))
			},
			location: model.BookInstancesPath,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router, svc := newTestRouter(t, "")
			tt.mockBehavior(svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, http.NoBody))

			require.Equal(t, http.StatusFound, w.Code)
			require.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}

func TestHandler_CreateGenre(t *testing.T) {
	t.Parallel()
	existing := model.Genre{ID: uuid.New(), Name: "Fantasy"}

	t.Run("redirect", func(t *testing.T) {
		t.Parallel()
		router, svc := newTestRouter(t, "")
		svc.EXPECT().
			CreateGenre(gomock.Any(), model.GenreInput{Name: "Fantasy"}).
			Return(model.GenreFormPage{}, existing.URL(), nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, postForm("/catalog/genre/create", url.Values{"name": {"Fantasy"}}))

		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, existing.URL(), w.Header().Get("Location"))
	})
	t.Run("re-render with errors", func(t *testing.T) {
		t.Parallel()
		router, svc := newTestRouter(t, "")
		svc.EXPECT().
			CreateGenre(gomock.Any(), model.GenreInput{Name: "ab"}).
			Return(model.GenreFormPage{
				Title:  "Create Genre",
				Genre:  model.GenreInput{Name: "ab"},
				Errors: []model.FieldError{{Field: "name", Message: "Genre name must be between 3 and 100 characters.", Value: "ab"}},
			}, "", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, postForm("/catalog/genre/create", url.Values{"name": {"ab"}}))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `value="ab"`)
		require.Contains(t, w.Body.String(), "Genre name must be between 3 and 100 characters.")
	})
}

func TestHandler_CreateBook_GenreValues(t *testing.T) {
	t.Parallel()
	g1, g2 := uuid.NewString(), uuid.NewString()
	tests := []struct {
		name   string
		genres []string
	}{
		{name: "none", genres: nil},
		{name: "single", genres: []string{g1}},
		{name: "many", genres: []string{g1, g2}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router, svc := newTestRouter(t, "")
			form := url.Values{
				"title":   {"Dune"},
				"author":  {uuid.NewString()},
				"summary": {"Spice"},
				"isbn":    {"9780441013593"},
			}
			for _, g := range tt.genres {
				form.Add("genre", g)
			}
			svc.EXPECT().
				CreateBook(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ interface{}, in model.BookInput) (model.BookFormPage, string, error) {
					require.Equal(t, "Dune", in.Title)
					require.Equal(t, len(tt.genres), len(in.Genre))
					for i := range tt.genres {
						require.Equal(t, tt.genres[i], in.Genre[i])
					}
					return model.BookFormPage{}, "/catalog/book/1", nil
				})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, postForm("/catalog/book/create", form))

			require.Equal(t, http.StatusFound, w.Code)
		})
	}
}

func TestHandler_UpdateBook_UsesResolvedRecord(t *testing.T) {
	t.Parallel()
	router, svc := newTestRouter(t, "")
	book := model.Book{ID: uuid.New(), Title: "Dune"}
	svc.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil).Times(1)
	svc.EXPECT().
		UpdateBook(gomock.Any(), book, gomock.Any()).
		Return(model.BookFormPage{}, book.URL(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postForm(book.URL()+"/update", url.Values{"title": {"Dune Messiah"}}))

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, book.URL(), w.Header().Get("Location"))
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: uuid.New(), Title: "Dune"}

	t.Run("has copies", func(t *testing.T) {
		t.Parallel()
		router, svc := newTestRouter(t, "")
		svc.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil)
		svc.EXPECT().DeleteBook(gomock.Any(), book).Return(model.BookDeletePage{
			Title:     "Delete Book",
			Book:      book,
			Instances: []model.BookInstance{{ID: uuid.New(), Imprint: "Ace", Status: model.StatusLoaned}},
		}, "", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, postForm(book.URL()+"/delete", url.Values{}))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Delete the following copies before attempting to delete this Book.")
	})
	t.Run("conflict", func(t *testing.T) {
		t.Parallel()
		router, svc := newTestRouter(t, "")
		svc.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil)
		svc.EXPECT().DeleteBook(gomock.Any(), book).Return(model.BookDeletePage{}, "", errs.ErrConflict)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, postForm(book.URL()+"/delete", url.Values{}))

		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_BookInstanceForm(t *testing.T) {
	t.Parallel()
	router, svc := newTestRouter(t, "")
	bookID := uuid.New()
	svc.EXPECT().BookInstanceCreateForm(gomock.Any()).Return(model.BookInstanceFormPage{
		Title:    "Create BookInstance",
		Instance: model.BookInstanceInput{Book: bookID.String(), Status: string(model.StatusLoaned)},
		Books:    []model.BookOption{{Book: model.Book{ID: bookID, Title: "Dune"}, Selected: true}},
		Statuses: model.Statuses,
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/bookinstance/create", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `<option value="`+bookID.String()+`" selected>Dune</option>`)
	require.Contains(t, w.Body.String(), `<option value="Loaned" selected>Loaned</option>`)
}

func TestHandler_UnknownRoute(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/nothing/here", http.NoBody))

	require.Equal(t, http.StatusNotFound, w.Code)
}
