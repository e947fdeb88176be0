package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abidraza5594/SecurePass/pkg/model"
)

// Provider is the identity provider contract the rest of the system
// consumes. All failures are *AuthError.
type Provider interface {
	// SignUp registers a new identity.
	SignUp(ctx context.Context, email, password string) (*model.VaultUser, error)

	// SignIn validates credentials and returns the identity.
	SignIn(ctx context.Context, email, password string) (*model.VaultUser, error)

	// RequestPasswordReset starts a reset for the account. Delivery of the
	// reset message is handled out of band.
	RequestPasswordReset(ctx context.Context, email string) error
}

// Ensure GormProvider implements Provider
var _ Provider = (*GormProvider)(nil)

// GormProvider implements Provider against the vault_users table.
type GormProvider struct {
	db *gorm.DB
}

// NewProvider creates a GORM-backed identity provider.
func NewProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

const minPasswordLen = 8

// SignUp registers a new identity.
func (p *GormProvider) SignUp(ctx context.Context, email, password string) (*model.VaultUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, authErr("a valid email address is required", nil)
	}
	if len(password) < minPasswordLen {
		return nil, authErr("password must be at least 8 characters", nil)
	}

	var existing model.VaultUser
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, authErr("an account with this email already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, authErr("sign-up failed, please try again", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, authErr("sign-up failed, please try again", err)
	}

	user := model.VaultUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := p.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, authErr("sign-up failed, please try again", err)
	}
	return &user, nil
}

// SignIn validates credentials and returns the identity.
func (p *GormProvider) SignIn(ctx context.Context, email, password string) (*model.VaultUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.VaultUser
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authErr("invalid email or password", nil)
		}
		return nil, authErr("sign-in failed, please try again", err)
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, authErr("sign-in failed, please try again", err)
	}
	if !ok {
		return nil, authErr("invalid email or password", nil)
	}
	return &user, nil
}

// RequestPasswordReset starts a reset for the account.
func (p *GormProvider) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.VaultUser
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authErr("no account with this email", nil)
		}
		return authErr("password reset failed, please try again", err)
	}
	return nil
}
