package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/locallibrary/catalog/internal/errs"
)

const recordKey = "record"

type idParam struct {
	ID string `param:"id" validate:"required,uuid"`
}

// missingFunc decides the response when the :id record does not exist.
type missingFunc func(c echo.Context, err error) error

func notFound(_ echo.Context, err error) error {
	return err
}

func redirectTo(path string) missingFunc {
	return func(c echo.Context, _ error) error {
		return c.Redirect(http.StatusFound, path)
	}
}

// resolve looks up the record named by the :id path parameter once per
// request and stores it in the context for the handler. An identifier that
// is not a valid id cannot name a record and is treated as missing.
func resolve[T any](kind string, get func(context.Context, uuid.UUID) (T, error), missing missingFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var p idParam
			if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			if err := c.Validate(p); err != nil {
				return missing(c, errs.NotFound(kind))
			}
			id, err := uuid.Parse(p.ID)
			if err != nil {
				return missing(c, errs.NotFound(kind))
			}

			rec, err := get(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, errs.ErrNotFound) {
					return missing(c, err)
				}
				return err
			}
			c.Set(recordKey, rec)
			return next(c)
		}
	}
}

func record[T any](c echo.Context) T {
	rec, _ := c.Get(recordKey).(T)
	return rec
}
