package endpoints

import (
	"net/http"

	"github.com/abidraza5594/SecurePass/pkg/identity"
	"github.com/abidraza5594/SecurePass/pkg/server"
)

// RegisterSummaryEndpoint registers the aggregation endpoint. The summary
// re-lists all three kinds in full, independent of any listing filter.
func RegisterSummaryEndpoint(s *server.Server) {
	router := s.Router.PathPrefix("/summary").Subrouter()
	router.Use(s.TokenAuth.Middleware)
	router.HandleFunc("", handleSummary(s)).Methods("GET")
}

func handleSummary(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "no authenticated identity")
			return
		}

		summary, err := s.Vault(id).Summary(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to compute summary")
			return
		}

		respondWithJSON(w, http.StatusOK, summary)
	}
}
