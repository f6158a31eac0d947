package server

import (
	"fmt"
	"net/http"

	scalargo "github.com/bdpiprava/scalar-go"

	"dealfinder/pkg/httpx/reply"
)

type DocsServer struct {
	page string
}

// NewDocsServer renders the API reference page once from the OpenAPI document.
func NewDocsServer(spec []byte) (DocsServer, error) {
	page, err := scalargo.NewV2(
		scalargo.WithSpecBytes(spec),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle("Deal Finder API"),
		),
	)
	if err != nil {
		return DocsServer{}, fmt.Errorf("scalargo.NewV2: %w", err)
	}

	return DocsServer{page: page}, nil
}

func (s DocsServer) getDocs(w http.ResponseWriter, r *http.Request) error {
	reply.HTML(r.Context(), w, http.StatusOK, s.page)

	return nil
}
