package myvault

import (
	"context"
	"time"

	"github.com/aoigroupbuy/storefront/lib/mystore"
)

// Session marks an authenticated admin. The uid doubles as the opaque
// token handed to the client.
type Session struct {
	UID       string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type VaultReader interface {
	Get(c context.Context, uid string) (Session, bool, error)
}

//go:generate mockgen -source=vault.go -package myvault -destination vault_mock.go Vault
type Vault interface {
	VaultReader
	Put(c context.Context, uid string, value Session) error
	Remove(c context.Context, uid string) error
}

func New(c context.Context) (Vault, func(), error) {
	store, cleanup, err := mystore.New[Session](c)
	if err != nil {
		return nil, nil, err
	}
	return sessionVault{store: store}, cleanup, nil
}

type sessionVault struct {
	store mystore.Store[Session]
}

func (v sessionVault) Get(c context.Context, uid string) (Session, bool, error) {
	return v.store.Get(c, uid)
}

func (v sessionVault) Put(c context.Context, uid string, value Session) error {
	return v.store.Put(c, uid, value)
}

func (v sessionVault) Remove(c context.Context, uid string) error {
	return v.store.Remove(c, uid)
}
