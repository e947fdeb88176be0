package manager

import (
	"context"
	"log"

	"github.com/abidraza5594/SecurePass/pkg/model"
	"github.com/abidraza5594/SecurePass/pkg/session"
	"github.com/abidraza5594/SecurePass/pkg/vault/aggregate"
	"github.com/abidraza5594/SecurePass/pkg/vault/store"
)

// Vault bundles the three per-kind managers for one session and keeps them
// subscribed to the session's identity resolution.
type Vault struct {
	APIKeys   *Manager[model.APIKey]
	Passwords *Manager[model.Password]
	Notes     *Manager[model.Note]

	cancel func()
}

// NewVault wires the three managers to the session. Each identity change
// re-derives all three lists; sign-out discards them.
func NewVault(
	sess *session.Session,
	keys store.RecordStore[model.APIKey],
	passwords store.RecordStore[model.Password],
	notes store.RecordStore[model.Note],
) *Vault {
	v := &Vault{
		APIKeys: New(model.KindAPIKey, keys),
		Passwords: New(model.KindPassword, passwords).
			WithCategory(func(p model.Password) string { return p.Category() }),
		Notes: New(model.KindNote, notes),
	}

	v.cancel = sess.Subscribe(func(state session.State) {
		ctx := context.Background()
		if err := v.APIKeys.HandleSession(ctx, state); err != nil {
			log.Printf("api key listing failed: %v", err)
		}
		if err := v.Passwords.HandleSession(ctx, state); err != nil {
			log.Printf("password listing failed: %v", err)
		}
		if err := v.Notes.HandleSession(ctx, state); err != nil {
			log.Printf("note listing failed: %v", err)
		}
	})
	return v
}

// Summary re-lists all three kinds in full and recomputes the aggregation
// view. It is independent of any filter or pagination state.
func (v *Vault) Summary(ctx context.Context) (aggregate.Summary, error) {
	if err := v.APIKeys.Refresh(ctx); err != nil {
		return aggregate.Summary{}, err
	}
	if err := v.Passwords.Refresh(ctx); err != nil {
		return aggregate.Summary{}, err
	}
	if err := v.Notes.Refresh(ctx); err != nil {
		return aggregate.Summary{}, err
	}

	return aggregate.Compute(
		v.APIKeys.Records(),
		v.Passwords.Records(),
		v.Notes.Records(),
	), nil
}

// Close detaches the vault from the session.
func (v *Vault) Close() {
	if v.cancel != nil {
		v.cancel()
	}
}
