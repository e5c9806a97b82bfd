package shopify

import (
	"context"

	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

// Client is the single gateway to the commerce backend. Cart mutations and
// queries go to the Storefront API; product lookup falls back to the Admin
// API when the Storefront API is unreachable.
//
//go:generate mockgen -source=api.go -package shopify -destination client_mock.go Client
type Client interface {
	CreateCart(c context.Context, lines []cartapi.LineItem) (cartapi.CartModification, error)
	AddLines(c context.Context, cartID string, lines []cartapi.LineItem) (cartapi.CartModification, error)
	UpdateLines(c context.Context, cartID string, updates []cartapi.LineUpdate) (cartapi.CartModification, error)
	RemoveLines(c context.Context, cartID string, lineIDs []string) (cartapi.CartModification, error)
	GetCart(c context.Context, cartID string) (cartapi.Cart, bool, error)
	GetProductByHandle(c context.Context, handle string) (cartapi.Product, bool, error)
}

type buyerIPKey struct{}

// WithBuyerIP marks the originating shopper address on the context, so that
// the backend can associate checkout with the shopper's session.
func WithBuyerIP(c context.Context, ip string) context.Context {
	if ip == "" {
		return c
	}
	return context.WithValue(c, buyerIPKey{}, ip)
}

func buyerIPFromContext(c context.Context) string {
	ip, _ := c.Value(buyerIPKey{}).(string)
	return ip
}
