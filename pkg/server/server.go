package server

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/abidraza5594/SecurePass/pkg/auth"
	"github.com/abidraza5594/SecurePass/pkg/config"
	"github.com/abidraza5594/SecurePass/pkg/identity"
	"github.com/abidraza5594/SecurePass/pkg/model"
	"github.com/abidraza5594/SecurePass/pkg/server/middleware"
	"github.com/abidraza5594/SecurePass/pkg/session"
	"github.com/abidraza5594/SecurePass/pkg/vault/manager"
	"github.com/abidraza5594/SecurePass/pkg/vault/store"
	gormstore "github.com/abidraza5594/SecurePass/pkg/vault/store/gorm"
)

type Server struct {
	Router    *mux.Router
	DB        *gorm.DB
	Provider  auth.Provider
	Issuer    *auth.TokenIssuer
	TokenAuth *middleware.TokenAuthenticator
	Config    *config.Config

	APIKeys   store.RecordStore[model.APIKey]
	Passwords store.RecordStore[model.Password]
	Notes     store.RecordStore[model.Note]

	srv *http.Server

	mu     sync.Mutex
	vaults map[string]*ownerVault
}

// ownerVault is the session-scoped state of one authenticated owner: the
// session the managers are subscribed to, plus the three managers with
// their filter, pagination and visibility state. ready is closed once the
// creating request has resolved the session, so concurrent first requests
// never see an unresolved vault.
type ownerVault struct {
	session *session.Session
	vault   *manager.Vault
	ready   chan struct{}
}

func NewServer(
	db *gorm.DB,
	provider auth.Provider,
	issuer *auth.TokenIssuer,
	cfg *config.Config,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:    router,
		DB:        db,
		Provider:  provider,
		Issuer:    issuer,
		TokenAuth: middleware.NewTokenAuthenticator(issuer),
		Config:    cfg,
		APIKeys:   gormstore.NewAPIKeyStore(db),
		Passwords: gormstore.NewPasswordStore(db),
		Notes:     gormstore.NewNoteStore(db),
		srv:       srv,
		vaults:    map[string]*ownerVault{},
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Vault returns the record managers for the identity's owner, creating
// and resolving them on first use. The same owner always gets the same
// vault until Teardown, so filter, pagination and visibility state
// survive across requests.
func (s *Server) Vault(id *identity.Identity) *manager.Vault {
	s.mu.Lock()
	ov, ok := s.vaults[id.OwnerID]
	if !ok {
		sess := session.New()
		ov = &ownerVault{
			session: sess,
			vault:   manager.NewVault(sess, s.APIKeys, s.Passwords, s.Notes),
			ready:   make(chan struct{}),
		}
		s.vaults[id.OwnerID] = ov
	}
	s.mu.Unlock()

	if !ok {
		// Resolving outside the lock lets the managers run their first
		// listing without blocking unrelated owners.
		ov.session.Resolve(id)
		close(ov.ready)
	}

	// Concurrent requests that raced the creating one wait here until the
	// session is resolved and the first listing has completed.
	<-ov.ready
	return ov.vault
}

// Teardown signs the owner's session out and discards the vault state.
func (s *Server) Teardown(ownerID string) {
	s.mu.Lock()
	ov := s.vaults[ownerID]
	delete(s.vaults, ownerID)
	s.mu.Unlock()

	if ov != nil {
		ov.session.SignOut()
		ov.vault.Close()
	}
}
