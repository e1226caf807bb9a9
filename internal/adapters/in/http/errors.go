package http

import (
	"errors"
	"fmt"
	"net/http"

	"deliverydesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindPersistence:
		return http.StatusServiceUnavailable
	case errs.KindInternal:
	}
	return http.StatusInternalServerError
}

// handleError is the echo error handler. Error messages are returned
// verbatim; echo's own errors keep their status.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := StatusFor(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && errs.KindOf(err) == errs.KindInternal {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	ctx := s.log.WithField(c.Request().Context(), "status", status)
	if status >= http.StatusInternalServerError {
		s.log.Error(ctx, "request failed", err)
	} else {
		s.log.Debug(ctx, "request rejected: "+message)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, Error{Code: status, Message: message})
	}
	if err != nil {
		s.log.Error(ctx, "write error response", err)
	}
}
