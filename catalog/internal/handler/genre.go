package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

// GenreList godoc
// @Summary      List genres
// @Tags         genre
// @Produce      html
// @Success      200
// @Router       /catalog/genres [get]
func (h *Handler) GenreList(c echo.Context) error {
	page, err := h.svc.GenreList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "genre_list", page)
}

func (h *Handler) GenreDetail(c echo.Context) error {
	page, err := h.svc.GenreDetail(c.Request().Context(), record[model.Genre](c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "genre_detail", page)
}

func (h *Handler) GenreCreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "genre_form", h.svc.GenreCreateForm())
}

// CreateGenre godoc
// @Summary      Create a genre
// @Description  Redirects to an existing genre with the same name instead of adding a duplicate
// @Tags         genre
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        name  formData  string  true  "genre name"
// @Success      200
// @Success      302
// @Router       /catalog/genre/create [post]
func (h *Handler) CreateGenre(c echo.Context) error {
	var in model.GenreInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, redirect, err := h.svc.CreateGenre(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, "genre_form", page, redirect)
}

func (h *Handler) GenreUpdateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "genre_form", h.svc.GenreUpdateForm(record[model.Genre](c)))
}

func (h *Handler) UpdateGenre(c echo.Context) error {
	var in model.GenreInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	page, redirect, err := h.svc.UpdateGenre(c.Request().Context(), record[model.Genre](c), in)
	if err != nil {
		return err
	}
	return respond(c, "genre_form", page, redirect)
}

func (h *Handler) GenreDeleteForm(c echo.Context) error {
	page, err := h.svc.GenreDeleteForm(c.Request().Context(), record[model.Genre](c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "genre_delete", page)
}

func (h *Handler) DeleteGenre(c echo.Context) error {
	page, redirect, err := h.svc.DeleteGenre(c.Request().Context(), record[model.Genre](c))
	if err != nil {
		return err
	}
	return respond(c, "genre_delete", page, redirect)
}
