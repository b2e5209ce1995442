package main

import (
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/zestagio/static-server/internal/server"
	serverstatic "github.com/zestagio/static-server/internal/server-static"
	"github.com/zestagio/static-server/internal/server/errhandler"
)

const nameServerStatic = "server-static"

func initServerStatic(
	productionMode bool,
	addr string,
	fsys fs.FS,
	listing bool,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerStatic)

	handlers, err := serverstatic.NewHandlers(serverstatic.NewOptions(lg, fsys, serverstatic.WithListing(listing)))
	if err != nil {
		return nil, fmt.Errorf("create handlers: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, productionMode, errhandler.ResponseBuilder))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		addr,
		serverstatic.NewHandlersRegistrar(handlers, errHandler.Handle),
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
