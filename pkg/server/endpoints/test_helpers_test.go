package endpoints

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/abidraza5594/SecurePass/pkg/auth"
	"github.com/abidraza5594/SecurePass/pkg/config"
	"github.com/abidraza5594/SecurePass/pkg/model"
	"github.com/abidraza5594/SecurePass/pkg/server"
	"github.com/abidraza5594/SecurePass/pkg/vault/store"
)

// memoryStore is an in-memory RecordStore for endpoint tests. It mirrors
// the gorm store's contract: ids are store-assigned and every operation
// is scoped to the owner.
type memoryStore[T any, PT interface {
	*T
	model.Record
}] struct {
	mu   sync.Mutex
	next int
	recs map[string][]T
}

func newMemoryStore[T any, PT interface {
	*T
	model.Record
}]() *memoryStore[T, PT] {
	return &memoryStore[T, PT]{recs: map[string][]T{}}
}

func (s *memoryStore[T, PT]) List(_ context.Context, ownerID string) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.recs[ownerID]))
	copy(out, s.recs[ownerID])
	return out, nil
}

func (s *memoryStore[T, PT]) Create(_ context.Context, ownerID string, rec T) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	id := fmt.Sprintf("rec-%d", s.next)
	p := PT(&rec)
	p.SetID(id)
	p.SetOwner(ownerID)
	s.recs[ownerID] = append(s.recs[ownerID], rec)
	return id, nil
}

func (s *memoryStore[T, PT]) Update(_ context.Context, ownerID, id string, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recs[ownerID] {
		existing := PT(&s.recs[ownerID][i])
		if existing.GetID() == id {
			p := PT(&rec)
			p.SetID(id)
			p.SetOwner(ownerID)
			s.recs[ownerID][i] = rec
			return nil
		}
	}
	return store.ErrRecordNotFound
}

func (s *memoryStore[T, PT]) Delete(_ context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.recs[ownerID]
	for i := range recs {
		if PT(&recs[i]).GetID() == id {
			s.recs[ownerID] = append(recs[:i:i], recs[i+1:]...)
			return nil
		}
	}
	return store.ErrRecordNotFound
}

// MockProvider implements auth.Provider for testing using testify/mock
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SignUp(ctx context.Context, email, password string) (*model.VaultUser, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VaultUser), args.Error(1)
}

func (m *MockProvider) SignIn(ctx context.Context, email, password string) (*model.VaultUser, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VaultUser), args.Error(1)
}

func (m *MockProvider) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// newTestServer builds a server backed by in-memory stores and the given
// provider, with all endpoints registered.
func newTestServer(provider auth.Provider) (*server.Server, *auth.TokenIssuer) {
	issuer := auth.NewTokenIssuer([]byte("test-signing-key"), time.Minute)
	s := server.NewServer(nil, provider, issuer, config.Get(), "127.0.0.1", "0")
	s.APIKeys = newMemoryStore[model.APIKey, *model.APIKey]()
	s.Passwords = newMemoryStore[model.Password, *model.Password]()
	s.Notes = newMemoryStore[model.Note, *model.Note]()
	RegisterAll(s)
	return s, issuer
}

// sessionToken issues a bearer token for a test owner.
func sessionToken(issuer *auth.TokenIssuer, ownerID, email string) string {
	token, _ := issuer.Issue(&model.VaultUser{ID: ownerID, Email: email})
	return "Bearer " + token
}
