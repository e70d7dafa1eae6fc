package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

// AuthorList godoc
// @Summary      List authors
// @Description  All authors ordered by family name
// @Tags         author
// @Produce      html
// @Success      200
// @Failure      500
// @Router       /catalog/authors [get]
func (h *Handler) AuthorList(c echo.Context) error {
	page, err := h.svc.AuthorList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "author_list", page)
}

// AuthorDetail godoc
// @Summary      Author detail
// @Tags         author
// @Produce      html
// @Param        id   path      string  true  "author id"
// @Success      200
// @Failure      404
// @Router       /catalog/author/{id} [get]
func (h *Handler) AuthorDetail(c echo.Context) error {
	page, err := h.svc.AuthorDetail(c.Request().Context(), record[model.Author](c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "author_detail", page)
}

func (h *Handler) AuthorCreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "author_form", h.svc.AuthorCreateForm())
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Redirects to the new author, or re-renders the form with errors
// @Tags         author
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        first_name     formData  string  true   "first name"
// @Param        family_name    formData  string  true   "family name"
// @Param        date_of_birth  formData  string  false  "YYYY-MM-DD"
// @Param        date_of_death  formData  string  false  "YYYY-MM-DD"
// @Success      200
// @Success      302
// @Router       /catalog/author/create [post]
func (h *Handler) CreateAuthor(c echo.Context) error {
	var in model.AuthorInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, redirect, err := h.svc.CreateAuthor(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, "author_form", page, redirect)
}

func (h *Handler) AuthorUpdateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "author_form", h.svc.AuthorUpdateForm(record[model.Author](c)))
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	var in model.AuthorInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, redirect, err := h.svc.UpdateAuthor(c.Request().Context(), record[model.Author](c), in)
	if err != nil {
		return err
	}
	return respond(c, "author_form", page, redirect)
}

func (h *Handler) AuthorDeleteForm(c echo.Context) error {
	page, err := h.svc.AuthorDeleteForm(c.Request().Context(), record[model.Author](c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "author_delete", page)
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Refused with the confirmation page while the author has books
// @Tags         author
// @Produce      html
// @Param        id   path      string  true  "author id"
// @Success      200
// @Success      302
// @Failure      409
// @Router       /catalog/author/{id}/delete [post]
func (h *Handler) DeleteAuthor(c echo.Context) error {
	page, redirect, err := h.svc.DeleteAuthor(c.Request().Context(), record[model.Author](c))
	if err != nil {
		return err
	}
	return respond(c, "author_delete", page, redirect)
}
