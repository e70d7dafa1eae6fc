package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

func (h *Handler) BookInstanceList(c echo.Context) error {
	page, err := h.svc.BookInstanceList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bookinstance_list", page)
}

func (h *Handler) BookInstanceDetail(c echo.Context) error {
	return c.Render(http.StatusOK, "bookinstance_detail", h.svc.BookInstanceDetail(record[model.BookInstance](c)))
}

func (h *Handler) BookInstanceCreateForm(c echo.Context) error {
	page, err := h.svc.BookInstanceCreateForm(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bookinstance_form", page)
}

// CreateBookInstance godoc
// @Summary      Create a copy of a book
// @Tags         bookinstance
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        book      formData  string  true   "book id"
// @Param        imprint   formData  string  true   "imprint"
// @Param        status    formData  string  false  "Available, Maintenance, Loaned or Reserved"
// @Param        due_back  formData  string  false  "YYYY-MM-DD"
// @Success      200
// @Success      302
// @Router       /catalog/bookinstance/create [post]
func (h *Handler) CreateBookInstance(c echo.Context) error {
	var in model.BookInstanceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, redirect, err := h.svc.CreateBookInstance(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, "bookinstance_form", page, redirect)
}

func (h *Handler) BookInstanceUpdateForm(c echo.Context) error {
	page, err := h.svc.BookInstanceUpdateForm(c.Request().Context(), record[model.BookInstance](c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bookinstance_form", page)
}

func (h *Handler) UpdateBookInstance(c echo.Context) error {
	var in model.BookInstanceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, redirect, err := h.svc.UpdateBookInstance(c.Request().Context(), record[model.BookInstance](c), in)
	if err != nil {
		return err
	}
	return respond(c, "bookinstance_form", page, redirect)
}

func (h *Handler) BookInstanceDeleteForm(c echo.Context) error {
	return c.Render(http.StatusOK, "bookinstance_delete", h.svc.BookInstanceDeleteForm(record[model.BookInstance](c)))
}

func (h *Handler) DeleteBookInstance(c echo.Context) error {
	redirect, err := h.svc.DeleteBookInstance(c.Request().Context(), record[model.BookInstance](c))
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, redirect)
}
