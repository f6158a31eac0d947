package modules_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"dealfinder/pkg/application/modules"
)

func TestHTTPServer(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listening := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: time.Second,
		OnListen:        func() { close(listening) },
	}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	})

	select {
	case <-listening:
	case <-time.After(5 * time.Second):
		rq.FailNow("server did not start listening")
	}

	cancel()

	rq.NoError(g.Wait())
}

func TestHTTPServerListenError(t *testing.T) {
	rq := require.New(t)

	g, ctx := errgroup.WithContext(context.Background())

	modules.HTTPServer{ShutdownTimeout: time.Second}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:              "127.0.0.1:-1",
		ReadHeaderTimeout: time.Second,
	})

	rq.ErrorContains(g.Wait(), "net.Listen")
}
