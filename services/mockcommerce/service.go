package mockcommerce

import (
	"context"
	"fmt"

	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/mystore"
	"github.com/scottygfc67/pearlperfect-website/lib/mytime"
	"github.com/scottygfc67/pearlperfect-website/lib/myuuid"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

type service struct {
	carts  mystore.Store[MockCart]
	nower  mytime.Nower
	uuider myuuid.UUIDer
}

func newService(carts mystore.Store[MockCart], nower mytime.Nower, uuider myuuid.UUIDer) *service {
	return &service{
		carts:  carts,
		nower:  nower,
		uuider: uuider,
	}
}

func (s *service) createCart(c context.Context, hostname string, lines []cartapi.LineItem) (cartapi.CartModification, error) {
	now := s.nower.Now()
	cart := MockCart{
		ID:        "mock_cart_" + s.uuider.Create(),
		CreatedAt: now,
		UpdatedAt: now,
		Lines:     lines,
	}

	err := s.carts.Put(c, cart.ID, cart)
	if err != nil {
		return cartapi.CartModification{}, myerrors.NewInternalError(fmt.Errorf("error storing cart: %s", err))
	}

	return s.modification(hostname, cart), nil
}

func (s *service) addLines(c context.Context, hostname string, cartID string, lines []cartapi.LineItem) (cartapi.CartModification, error) {
	var cart MockCart
	err := s.carts.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		cart, found, err = s.carts.Get(c, cartID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching cart: %s", err))
		}
		if !found {
			return myerrors.NewInvalidInputErrorf("cart %s does not exist", cartID)
		}

		cart.Lines = mergeLines(cart.Lines, lines)
		cart.UpdatedAt = s.nower.Now()

		return s.carts.Put(c, cart.ID, cart)
	})
	if err != nil {
		return cartapi.CartModification{}, err
	}

	return s.modification(hostname, cart), nil
}

func (s *service) getCart(c context.Context, cartID string) (MockCart, bool, error) {
	return s.carts.Get(c, cartID)
}

// The mock backend hosts its own checkout page, so the checkout URL points
// back at whatever host this process is reachable on.
func (s *service) modification(hostname string, cart MockCart) cartapi.CartModification {
	return cartapi.CartModification{
		CartID:        cart.ID,
		CheckoutURL:   fmt.Sprintf("%s/mock-checkout?cart=%s", hostname, cart.ID),
		TotalQuantity: cart.totalQuantity(),
	}
}

// mergeLines folds repeated merchandise into a single line, the way the real
// backend does.
func mergeLines(existing []cartapi.LineItem, added []cartapi.LineItem) []cartapi.LineItem {
	result := make([]cartapi.LineItem, len(existing))
	copy(result, existing)

outer:
	for _, line := range added {
		for i, have := range result {
			if have.MerchandiseID == line.MerchandiseID && have.SellingPlanID == line.SellingPlanID {
				result[i].Quantity += line.Quantity
				continue outer
			}
		}
		result = append(result, line)
	}

	return result
}
