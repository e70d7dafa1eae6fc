package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

// BookList godoc
// @Summary      List books
// @Tags         book
// @Produce      html
// @Success      200
// @Router       /catalog/books [get]
func (h *Handler) BookList(c echo.Context) error {
	page, err := h.svc.BookList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_list", page)
}

// BookDetail godoc
// @Summary      Book detail with its copies
// @Tags         book
// @Produce      html
// @Param        id   path      string  true  "book id"
// @Success      200
// @Failure      404
// @Router       /catalog/book/{id} [get]
func (h *Handler) BookDetail(c echo.Context) error {
	page, err := h.svc.BookDetail(c.Request().Context(), record[model.Book](c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_detail", page)
}

func (h *Handler) BookCreateForm(c echo.Context) error {
	page, err := h.svc.BookCreateForm(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_form", page)
}

// CreateBook godoc
// @Summary      Create a book
// @Tags         book
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        title    formData  string    true   "title"
// @Param        author   formData  string    true   "author id"
// @Param        summary  formData  string    true   "summary"
// @Param        isbn     formData  string    true   "ISBN"
// @Param        genre    formData  []string  false  "genre ids" collectionFormat(multi)
// @Success      200
// @Success      302
// @Failure      422
// @Router       /catalog/book/create [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var in model.BookInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, redirect, err := h.svc.CreateBook(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, "book_form", page, redirect)
}

func (h *Handler) BookUpdateForm(c echo.Context) error {
	page, err := h.svc.BookUpdateForm(c.Request().Context(), record[model.Book](c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_form", page)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var in model.BookInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, redirect, err := h.svc.UpdateBook(c.Request().Context(), record[model.Book](c), in)
	if err != nil {
		return err
	}
	return respond(c, "book_form", page, redirect)
}

func (h *Handler) BookDeleteForm(c echo.Context) error {
	page, err := h.svc.BookDeleteForm(c.Request().Context(), record[model.Book](c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_delete", page)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	page, redirect, err := h.svc.DeleteBook(c.Request().Context(), record[model.Book](c))
	if err != nil {
		return err
	}
	return respond(c, "book_delete", page, redirect)
}
