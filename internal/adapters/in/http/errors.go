package http

import (
	"errors"
	"net/http"

	"petadoption/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps an application error to its HTTP status. Unrecognized
// errors become a 500 with a generic message so internals never leak.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return respondErrorWithStatus(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotAuthenticated):
		return respondErrorWithStatus(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrAccessForbidden):
		return respondErrorWithStatus(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondErrorWithStatus(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return respondErrorWithStatus(ctx, http.StatusConflict, err.Error())
	default:
		return respondErrorWithStatus(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func respondErrorWithStatus(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}
