package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"dealfinder/pkg/logx"
)

// HTTPServer starts the API server and shuts it down gracefully once the
// context is canceled.
type HTTPServer struct {
	ShutdownTimeout time.Duration
	// OnListen, when set, is called after the listener is bound.
	OnListen func()
}

func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) {
	g.Go(func() error {
		listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", httpServer.Addr)
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}

		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				logger(ctx).Error("server.Shutdown", logx.Error(err))
			}
		}()

		logger(ctx).Info("http server started", slog.String("address", listener.Addr().String()))

		if h.OnListen != nil {
			h.OnListen()
		}

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.Serve: %w", err)
		}

		logger(ctx).Info("http server stopped", slog.String("address", httpServer.Addr))

		return nil
	})
}
