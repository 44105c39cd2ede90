package web

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/labstack/echo/v4"
	"github.com/nbkstem/booth/internal/kiosk"
	"github.com/nbkstem/booth/internal/store"
	"github.com/nbkstem/booth/log2"
)

func newHTTPErrorHandler(log *log2.Log) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		cause := errors.Cause(err)
		switch origErr := cause.(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				msg := vErr.Tag()
				if p := vErr.Param(); p != "" {
					msg += "=" + p
				}
				fldErrs[vErr.Field()] = msg
			}
			code = http.StatusBadRequest
			message = fldErrs
		default:
			switch {
			case cause == store.ErrAttachmentTooLarge:
				code = http.StatusRequestEntityTooLarge
				message = cause.Error()
			case cause == store.ErrRemoteDisabled:
				code = http.StatusServiceUnavailable
				message = cause.Error()
			case cause == kiosk.ErrStopped:
				code = http.StatusServiceUnavailable
				message = cause.Error()
			case errors.IsNotValid(err):
				code = http.StatusBadRequest
				message = err.Error()
			case errors.IsNotFound(err):
				code = http.StatusNotFound
				message = err.Error()
			default: // any other error is a server error
				code = http.StatusInternalServerError
				message = http.StatusText(code)
				log.Error(errors.Annotatef(err, "web %s %s", ctx.Request().Method, ctx.Request().URL.Path))
			}
		}

		if _, ok := message.(string); ok {
			message = echo.Map{"error": message}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				log.Error(errors.Annotate(err, "web send error"))
			}
		}
	}
}
