package endpoints

import (
	"github.com/abidraza5594/SecurePass/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterRecordsEndpoints(srv)
	RegisterSummaryEndpoint(srv)
	RegisterStatusEndpoint(srv)
}
