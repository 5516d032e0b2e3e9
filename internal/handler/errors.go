package handler

import (
	"github.com/labstack/echo/v4"

	"profilesvc/internal/errors"
)

// httpError maps a service error onto the JSON error body. The original
// error is kept as the internal cause so the request logger records it.
func httpError(err error) *echo.HTTPError {
	mapped := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse()).SetInternal(err)
}
