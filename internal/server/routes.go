package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dealfinder/pkg/httpx/reply"
	"dealfinder/pkg/logx"
	"dealfinder/pkg/middlewarex"
)

type RouterOptions struct {
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogFieldMaxLen      int
}

// NewRouter wires the middleware chain in front of the API routes.
func NewRouter(s Server, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Get("/docs", handler(s.getDocs))

		r.Route("/api", func(r chi.Router) {
			r.Post("/find-deals", handler(s.postFindDeals))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
