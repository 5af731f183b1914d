package middleware

import (
	"net/http"

	domainerrors "insurance/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResponseStatus reports the status the client will see. Errors returned from the
// handler chain are rendered by the HTTPErrorHandler after middleware unwinds, so
// the status is derived from err when nothing was written yet.
func ResponseStatus(c echo.Context, err error) int {
	res := c.Response()
	if res.Committed {
		return res.Status
	}
	if err == nil {
		if res.Status == 0 {
			return http.StatusOK
		}

		return res.Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
