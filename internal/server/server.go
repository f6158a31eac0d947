package server

// Server groups the entity-specific HTTP servers behind a single router.
type Server struct {
	DealServer
	DocsServer
}

func NewServer(
	dealServer DealServer,
	docsServer DocsServer,
) Server {
	return Server{
		DealServer: dealServer,
		DocsServer: docsServer,
	}
}
