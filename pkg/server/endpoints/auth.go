package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/abidraza5594/SecurePass/pkg/audit"
	"github.com/abidraza5594/SecurePass/pkg/auth"
	"github.com/abidraza5594/SecurePass/pkg/identity"
	"github.com/abidraza5594/SecurePass/pkg/server"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterAuthEndpoints registers sign-up, sign-in, password reset and
// logout.
func RegisterAuthEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/authn/signup", handleSignUp(s)).Methods("POST")
	router.HandleFunc("/authn/login", handleLogin(s)).Methods("POST")
	router.HandleFunc("/authn/reset", handlePasswordReset(s)).Methods("POST")

	logout := router.PathPrefix("/authn/logout").Subrouter()
	logout.Use(s.TokenAuth.Middleware)
	logout.HandleFunc("", handleLogout(s)).Methods("POST")
}

func handleSignUp(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}

		user, err := s.Provider.SignUp(r.Context(), req.Email, req.Password)
		if err != nil {
			audit.Log(audit.AuthenticateEvent{
				Email:        req.Email,
				ClientIP:     clientIP(r, s.Config),
				Operation:    "signup",
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithError(w, authStatus(err, http.StatusUnprocessableEntity), err.Error())
			return
		}

		token, err := s.Issuer.Issue(user)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to issue session token")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Email:     user.Email,
			ClientIP:  clientIP(r, s.Config),
			Operation: "signup",
			Success:   true,
		})

		respondWithJSON(w, http.StatusCreated, sessionResponse{
			Token:     token,
			ExpiresAt: time.Now().Add(s.Config.TokenTTL()),
		})
	}
}

func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}

		user, err := s.Provider.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			audit.Log(audit.AuthenticateEvent{
				Email:        req.Email,
				ClientIP:     clientIP(r, s.Config),
				Operation:    "login",
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithError(w, authStatus(err, http.StatusUnauthorized), err.Error())
			return
		}

		token, err := s.Issuer.Issue(user)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to issue session token")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Email:     user.Email,
			ClientIP:  clientIP(r, s.Config),
			Operation: "login",
			Success:   true,
		})

		respondWithJSON(w, http.StatusOK, sessionResponse{
			Token:     token,
			ExpiresAt: time.Now().Add(s.Config.TokenTTL()),
		})
	}
}

func handlePasswordReset(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}

		err := s.Provider.RequestPasswordReset(r.Context(), req.Email)
		if err != nil {
			audit.Log(audit.AuthenticateEvent{
				Email:        req.Email,
				ClientIP:     clientIP(r, s.Config),
				Operation:    "reset",
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithError(w, authStatus(err, http.StatusNotFound), err.Error())
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Email:     req.Email,
			ClientIP:  clientIP(r, s.Config),
			Operation: "reset",
			Success:   true,
		})

		respondWithJSON(w, http.StatusAccepted, map[string]string{
			"message": "password reset requested",
		})
	}
}

func handleLogout(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "no authenticated identity")
			return
		}

		s.Teardown(id.OwnerID)

		audit.Log(audit.AuthenticateEvent{
			Email:     id.Email,
			ClientIP:  clientIP(r, s.Config),
			Operation: "logout",
			Success:   true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}

// authStatus maps provider failures to the endpoint's failure status.
// Anything that is not an *auth.AuthError is an internal error.
func authStatus(err error, code int) int {
	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		return code
	}
	return http.StatusInternalServerError
}
