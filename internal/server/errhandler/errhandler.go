package errhandler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/static-server/internal/errors"
)

var _ echo.HTTPErrorHandler = Handler{}.Handle

//go:generate options-gen -out-filename=errhandler_options.gen.go -from-struct=Options
type Options struct {
	logger          *zap.Logger                                       `option:"mandatory" validate:"required"`
	productionMode  bool                                              `option:"mandatory"`
	responseBuilder func(code int, msg string, details string) string `option:"mandatory" validate:"required"`
}

type Handler struct {
	lg              *zap.Logger
	productionMode  bool
	responseBuilder func(code int, msg string, details string) string
}

func New(opts Options) (Handler, error) {
	if err := opts.Validate(); err != nil {
		return Handler{}, fmt.Errorf("validate options: %v", err)
	}

	return Handler{
		lg:              opts.logger,
		productionMode:  opts.productionMode,
		responseBuilder: opts.responseBuilder,
	}, nil
}

// Handle writes a plain-text error response. Headers already staged on the
// response are kept.
func (h Handler) Handle(err error, eCtx echo.Context) {
	if eCtx.Response().Committed {
		h.lg.Warn("error after response committed", zap.Error(err))
		return
	}

	code, msg, details := h.processError(err)
	if code >= http.StatusInternalServerError {
		h.lg.Error("handle request", zap.Error(err))
	} else {
		h.lg.Debug("handle request", zap.Error(err))
	}

	var errResp error
	if eCtx.Request().Method == http.MethodHead {
		errResp = eCtx.NoContent(code)
	} else {
		errResp = eCtx.String(code, h.responseBuilder(code, msg, details))
	}
	if errResp != nil {
		h.lg.Error("write error response", zap.Error(errResp))
	}
}

func (h Handler) processError(err error) (code int, msg string, details string) {
	code, msg, details = internalerrors.ProcessServerError(err)

	if code < 100 || code > 599 {
		code = http.StatusInternalServerError
	}

	// If production mode is ON method should return only code and message and hide details.
	if h.productionMode {
		details = ""
	}

	return code, msg, details
}
