package serverstatic

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/static-server/internal/errors"
)

var indexPages = []string{"index.html", "index.htm"}

//go:generate options-gen -out-filename=handlers_options.gen.go -from-struct=Options
type Options struct {
	logger  *zap.Logger `option:"mandatory" validate:"required"`
	fsys    fs.FS       `option:"mandatory" validate:"required"`
	listing bool
}

type Handlers struct {
	lg      *zap.Logger
	fsys    fs.FS
	listing bool
}

func NewHandlers(opts Options) (Handlers, error) {
	if err := opts.Validate(); err != nil {
		return Handlers{}, fmt.Errorf("validate options: %v", err)
	}

	return Handlers{
		lg:      opts.logger,
		fsys:    opts.fsys,
		listing: opts.listing,
	}, nil
}

// ServeFile answers GET and HEAD with the file, the index page or the listing
// of the directory the URL path points at.
func (h Handlers) ServeFile(eCtx echo.Context) error {
	upath := eCtx.Request().URL.Path
	if !strings.HasPrefix(upath, "/") {
		upath = "/" + upath
	}

	if hasParentSegment(upath) {
		return internalerrors.NewServerError(http.StatusBadRequest, "invalid URL path",
			fmt.Errorf("parent segment in %q", upath))
	}

	name := strings.TrimPrefix(path.Clean(upath), "/")
	if name == "" {
		name = "."
	}

	f, err := h.fsys.Open(name)
	if err != nil {
		return openError(name, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return openError(name, err)
	}

	if !fi.IsDir() {
		// "/file.html/" names a directory that does not exist.
		if strings.HasSuffix(upath, "/") {
			return openError(name, fs.ErrNotExist)
		}
		return h.serveContent(eCtx, fi, f)
	}

	if !strings.HasSuffix(upath, "/") {
		return redirectToDir(eCtx)
	}

	for _, index := range indexPages {
		served, err := h.serveIndex(eCtx, path.Join(name, index))
		if err != nil {
			return err
		}
		if served {
			return nil
		}
	}

	if !h.listing {
		return openError(name, fs.ErrNotExist)
	}
	return h.serveListing(eCtx, f, upath)
}

// Preflight answers CORS preflight requests. The CORS headers themselves come from the middleware.
func (h Handlers) Preflight(eCtx echo.Context) error {
	return eCtx.NoContent(http.StatusNoContent)
}

func (h Handlers) serveIndex(eCtx echo.Context, name string) (bool, error) {
	f, err := h.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, openError(name, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return false, openError(name, err)
	}
	if fi.IsDir() {
		return false, nil
	}

	return true, h.serveContent(eCtx, fi, f)
}

func (h Handlers) serveContent(eCtx echo.Context, fi fs.FileInfo, f fs.File) error {
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		return fmt.Errorf("file %q is not seekable", fi.Name())
	}

	http.ServeContent(eCtx.Response(), eCtx.Request(), fi.Name(), fi.ModTime(), rs)
	return nil
}

func redirectToDir(eCtx echo.Context) error {
	target := eCtx.Request().URL.EscapedPath() + "/"
	if q := eCtx.Request().URL.RawQuery; q != "" {
		target += "?" + q
	}
	return eCtx.Redirect(http.StatusMovedPermanently, target)
}

func hasParentSegment(upath string) bool {
	for _, seg := range strings.FieldsFunc(upath, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}

func openError(name string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return internalerrors.NewServerError(http.StatusNotFound, "File not found", err)
	case errors.Is(err, fs.ErrPermission):
		return internalerrors.NewServerError(http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, fs.ErrInvalid):
		return internalerrors.NewServerError(http.StatusBadRequest, "invalid URL path", err)
	default:
		return fmt.Errorf("open %q: %w", name, err)
	}
}
