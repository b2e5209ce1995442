// Package devserver sequences the start of the static server: bind the
// socket, print the banner, open the browser and serve until interrupted.
package devserver

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"go.uber.org/zap"

	"github.com/zestagio/static-server/internal/banner"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/devserver_mock.gen.go -package=devservermocks

type httpServer interface {
	Listen(ctx context.Context) (net.Listener, error)
	Serve(ctx context.Context, ln net.Listener) error
}

type browserLauncher interface {
	Open(url string) error
}

//go:generate options-gen -out-filename=devserver_options.gen.go -from-struct=Options
type Options struct {
	logger      *zap.Logger     `option:"mandatory" validate:"required"`
	server      httpServer      `option:"mandatory" validate:"required"`
	launcher    browserLauncher `option:"mandatory" validate:"required"`
	banner      *banner.Printer `option:"mandatory" validate:"required"`
	root        string          `option:"mandatory" validate:"required"`
	openBrowser bool
}

type Runner struct {
	Options
}

func New(opts Options) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	return &Runner{Options: opts}, nil
}

// Run returns nil once ctx is done and the server has shut down.
// A socket that cannot be bound is returned as an error.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := r.server.Listen(ctx)
	if err != nil {
		return fmt.Errorf("bind: %w", err)
	}

	url := RootURL(ln.Addr())
	r.banner.Started(r.root, url, r.openBrowser)

	if r.openBrowser {
		// Launchers may block until the browser exits.
		go r.launch(url)
	}

	if err := r.server.Serve(ctx, ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	if ctx.Err() != nil {
		r.banner.Stopped()
	}
	return nil
}

func (r *Runner) launch(url string) {
	if err := r.launcher.Open(url); err != nil {
		r.logger.Warn("cannot open browser", zap.String("url", url), zap.Error(err))
		r.banner.BrowserFailed(url)
		return
	}
	r.logger.Debug("browser opened", zap.String("url", url))
}

// RootURL is the address a local browser should use to reach addr.
// Wildcard hosts are reached through localhost.
func RootURL(addr net.Addr) string {
	host, port := "localhost", ""

	switch a := addr.(type) {
	case *net.TCPAddr:
		port = strconv.Itoa(a.Port)
		if a.IP != nil && !a.IP.IsUnspecified() {
			host = a.IP.String()
		}
	default:
		h, p, err := net.SplitHostPort(addr.String())
		if err != nil {
			return "http://" + addr.String()
		}
		port = p
		if ip := net.ParseIP(h); h != "" && (ip == nil || !ip.IsUnspecified()) {
			host = h
		}
	}

	return "http://" + net.JoinHostPort(host, port)
}
