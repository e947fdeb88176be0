package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/abidraza5594/SecurePass/pkg/server"
)

// StatusResponse is the JSON variant of the status page
type StatusResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// RegisterStatusEndpoint registers the status page (no auth required)
func RegisterStatusEndpoint(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("SECUREPASS_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		// Check if JSON is requested via Accept header or format query param
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(StatusResponse{
				Service: "securepass",
				Version: version,
			})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>SecurePass Status</title>
  </head>
  <body>
    <main>
      <h1>Status</h1>
      <p>Your SecurePass server is running!</p>
      <dl>
        <dt>Details:</dt>
        <dd>Version ` + version + `</dd>
      </dl>
    </main>
  </body>
</html>
`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}
