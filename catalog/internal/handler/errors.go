package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/locallibrary/catalog/internal/errs"
	"github.com/Astemirdum/locallibrary/catalog/internal/model"
)

// errorHandler renders the error page. Not found maps to 404; anything the
// workflow did not anticipate is a 500 with a generic message, and the
// underlying error is only shown in development.
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	page := model.ErrorPage{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
	var he *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		page.Status, page.Message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrConflict):
		page.Status, page.Message = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrInvalidReference):
		page.Status, page.Message = http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &he):
		page.Status, page.Message = he.Code, fmt.Sprint(he.Message)
	}
	page.Title = page.Message
	if h.development {
		page.Detail = fmt.Sprintf("%+v", err)
	}

	if page.Status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(page.Status)
	} else {
		err = c.Render(page.Status, "error", page)
	}
	if err != nil {
		h.log.Error("render error page", zap.Error(err))
	}
}
