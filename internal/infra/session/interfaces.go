package session

import "context"

// Cart is a per-session mapping of product id to a positive quantity.
// It lives only for the browsing session and is never persisted with
// the order ledger.
type Cart map[uint]int

// CartStore keeps carts per browsing session. Setting a quantity of
// zero or less removes the line, mirroring the storefront cart form.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	Add(ctx context.Context, sessionID string, productID uint, qty int) error
	SetQuantity(ctx context.Context, sessionID string, productID uint, qty int) error
	Remove(ctx context.Context, sessionID string, productID uint) error
	Clear(ctx context.Context, sessionID string) error
}

// TokenStore maps opaque auth tokens to user ids for the session TTL.
type TokenStore interface {
	Put(ctx context.Context, token string, userID uint) error
	Lookup(ctx context.Context, token string) (uint, bool, error)
	Revoke(ctx context.Context, token string) error
}

var (
	_ CartStore  = (*RedisCartStore)(nil)
	_ CartStore  = (*MemoryCartStore)(nil)
	_ TokenStore = (*RedisTokenStore)(nil)
	_ TokenStore = (*MemoryTokenStore)(nil)
)
