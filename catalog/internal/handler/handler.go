package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/config"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
	mw "github.com/Astemirdum/locallibrary/pkg/middleware"
	"github.com/Astemirdum/locallibrary/pkg/validate"
	_ "github.com/Astemirdum/locallibrary/swagger"
)

type Handler struct {
	svc         CatalogService
	log         *zap.Logger
	development bool
}

func New(svc CatalogService, log *zap.Logger, cfg *config.Config) *Handler {
	return &Handler{
		svc:         svc,
		log:         log.Named("handler"),
		development: cfg.IsDevelopment(),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS    = 10
		catalogRPS = 100
	)
	e.HideBanner = true
	e.Renderer = NewRenderer()
	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Pre(middleware.RemoveTrailingSlash())

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	base.GET("/", h.Home)

	catalog := e.Group("/catalog",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(catalogRPS),
		middleware.BodyLimit("1M"),
	)
	catalog.GET("", h.Index)

	authorFound := resolve(model.KindAuthor, h.svc.GetAuthor, notFound)
	authorOrList := resolve(model.KindAuthor, h.svc.GetAuthor, redirectTo(model.AuthorsPath))
	catalog.GET("/authors", h.AuthorList)
	catalog.GET("/author/create", h.AuthorCreateForm)
	catalog.POST("/author/create", h.CreateAuthor)
	catalog.GET("/author/:id", h.AuthorDetail, authorFound)
	catalog.GET("/author/:id/update", h.AuthorUpdateForm, authorFound)
	catalog.POST("/author/:id/update", h.UpdateAuthor, authorFound)
	catalog.GET("/author/:id/delete", h.AuthorDeleteForm, authorOrList)
	catalog.POST("/author/:id/delete", h.DeleteAuthor, authorOrList)

	genreFound := resolve(model.KindGenre, h.svc.GetGenre, notFound)
	genreOrList := resolve(model.KindGenre, h.svc.GetGenre, redirectTo(model.GenresPath))
	catalog.GET("/genres", h.GenreList)
	catalog.GET("/genre/create", h.GenreCreateForm)
	catalog.POST("/genre/create", h.CreateGenre)
	catalog.GET("/genre/:id", h.GenreDetail, genreFound)
	catalog.GET("/genre/:id/update", h.GenreUpdateForm, genreFound)
	catalog.POST("/genre/:id/update", h.UpdateGenre, genreFound)
	catalog.GET("/genre/:id/delete", h.GenreDeleteForm, genreOrList)
	catalog.POST("/genre/:id/delete", h.DeleteGenre, genreOrList)

	bookFound := resolve(model.KindBook, h.svc.GetBook, notFound)
	bookOrList := resolve(model.KindBook, h.svc.GetBook, redirectTo(model.BooksPath))
	catalog.GET("/books", h.BookList)
	catalog.GET("/book/create", h.BookCreateForm)
	catalog.POST("/book/create", h.CreateBook)
	catalog.GET("/book/:id", h.BookDetail, bookFound)
	catalog.GET("/book/:id/update", h.BookUpdateForm, bookFound)
	catalog.POST("/book/:id/update", h.UpdateBook, bookFound)
	catalog.GET("/book/:id/delete", h.BookDeleteForm, bookOrList)
	catalog.POST("/book/:id/delete", h.DeleteBook, bookOrList)

	instanceFound := resolve(model.KindBookInstance, h.svc.GetBookInstance, notFound)
	instanceOrList := resolve(model.KindBookInstance, h.svc.GetBookInstance, redirectTo(model.BookInstancesPath))
	catalog.GET("/bookinstances", h.BookInstanceList)
	catalog.GET("/bookinstance/create", h.BookInstanceCreateForm)
	catalog.POST("/bookinstance/create", h.CreateBookInstance)
	catalog.GET("/bookinstance/:id", h.BookInstanceDetail, instanceFound)
	catalog.GET("/bookinstance/:id/update", h.BookInstanceUpdateForm, instanceFound)
	catalog.POST("/bookinstance/:id/update", h.UpdateBookInstance, instanceFound)
	catalog.GET("/bookinstance/:id/delete", h.BookInstanceDeleteForm, instanceOrList)
	catalog.POST("/bookinstance/:id/delete", h.DeleteBookInstance, instanceOrList)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/catalog")
}

// Index godoc
// @Summary      Catalog home page
// @Description  Counts of books, copies, available copies, authors and genres
// @Tags         catalog
// @Produce      html
// @Success      200
// @Failure      500
// @Router       /catalog [get]
func (h *Handler) Index(c echo.Context) error {
	page, err := h.svc.Index(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index", page)
}

// respond redirects with 302 when the workflow produced a target and renders
// the page otherwise.
func respond(c echo.Context, view string, page any, redirect string) error {
	if redirect != "" {
		return c.Redirect(http.StatusFound, redirect)
	}
	return c.Render(http.StatusOK, view, page)
}
