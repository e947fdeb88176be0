package endpoints

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/abidraza5594/SecurePass/pkg/config"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// clientIP resolves the caller's address for audit events. X-Forwarded-For
// is honoured only when the direct peer is a configured trusted proxy.
func clientIP(r *http.Request, cfg *config.Config) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" && cfg.IsTrustedProxy(host) {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	return host
}
