package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/myevents"
	"github.com/scottygfc67/pearlperfect-website/lib/mylog"
	"github.com/scottygfc67/pearlperfect-website/lib/mypublisher"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
	"github.com/scottygfc67/pearlperfect-website/services/cartevents"
	"github.com/scottygfc67/pearlperfect-website/services/shopify"
)

type service struct {
	client    shopify.Client
	publisher mypublisher.Publisher
	logger    mylog.Logger
}

func newService(client shopify.Client, publisher mypublisher.Publisher, logger mylog.Logger) *service {
	return &service{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *service) createCart(c context.Context, lines []cartapi.LineItem) (cartapi.CartModification, error) {
	modification, err := s.client.CreateCart(c, lines)
	if err != nil {
		return cartapi.CartModification{}, s.mapError(c, "cartCreate", err)
	}

	s.publish(c, cartevents.CartCreated{
		CartID:        modification.CartID,
		CheckoutURL:   modification.CheckoutURL,
		TotalQuantity: modification.TotalQuantity,
		Lines:         lines,
	})

	return modification, nil
}

func (s *service) addLines(c context.Context, cartID string, lines []cartapi.LineItem) (cartapi.CartModification, error) {
	modification, err := s.client.AddLines(c, cartID, lines)
	if err != nil {
		return cartapi.CartModification{}, s.mapError(c, "cartLinesAdd", err)
	}

	s.publish(c, cartevents.CartLinesAdded{
		CartID:        modification.CartID,
		TotalQuantity: modification.TotalQuantity,
		Lines:         lines,
	})

	return modification, nil
}

func (s *service) updateLines(c context.Context, cartID string, updates []cartapi.LineUpdate) (cartapi.CartModification, error) {
	modification, err := s.client.UpdateLines(c, cartID, updates)
	if err != nil {
		return cartapi.CartModification{}, s.mapError(c, "cartLinesUpdate", err)
	}

	s.publish(c, cartevents.CartLinesUpdated{
		CartID:        modification.CartID,
		TotalQuantity: modification.TotalQuantity,
		Updates:       updates,
	})

	return modification, nil
}

func (s *service) removeLines(c context.Context, cartID string, lineIDs []string) (cartapi.CartModification, error) {
	modification, err := s.client.RemoveLines(c, cartID, lineIDs)
	if err != nil {
		return cartapi.CartModification{}, s.mapError(c, "cartLinesRemove", err)
	}

	s.publish(c, cartevents.CartLinesRemoved{
		CartID:        modification.CartID,
		TotalQuantity: modification.TotalQuantity,
		LineIDs:       lineIDs,
	})

	return modification, nil
}

func (s *service) getCart(c context.Context, cartID string) (cartapi.Cart, error) {
	cart, found, err := s.client.GetCart(c, cartID)
	if err != nil {
		return cartapi.Cart{}, s.mapError(c, "cart", err)
	}
	if !found {
		return cartapi.Cart{}, myerrors.NewNotFoundError(fmt.Errorf("cart not found"))
	}

	return cart, nil
}

// mapError translates backend failures into http-status-carrying errors. A
// transport failure never leaks its cause to the shopper; the real reason goes
// to the log instead.
func (s *service) mapError(c context.Context, operation string, err error) error {
	var transportErr *shopify.TransportError
	if errors.As(err, &transportErr) {
		s.logger.Log(c, operation, mylog.SeverityError, "Commerce backend unreachable: %s", err)
		return myerrors.NewUnavailableError(fmt.Errorf("could not complete request"))
	}

	var rejectedErr *shopify.BackendRejectedError
	if errors.As(err, &rejectedErr) {
		return myerrors.NewInvalidInputError(rejectedErr)
	}

	var invalidCartErr *shopify.InvalidCartError
	if errors.As(err, &invalidCartErr) {
		return myerrors.NewInvalidInputError(invalidCartErr)
	}

	// Validation errors already carry their status; anything else is
	// unexpected and must not leak its cause to the shopper
	if myerrors.GetHTTPStatus(err) == http.StatusInternalServerError {
		s.logger.Log(c, operation, mylog.SeverityError, "Unexpected error: %s", err)
		return myerrors.NewInternalError(fmt.Errorf("could not complete request"))
	}

	return err
}

// publish is best effort: a cart mutation that succeeded on the backend must
// not be reported as failed because the event could not be stored.
func (s *service) publish(c context.Context, event myevents.Event) {
	err := s.publisher.Publish(c, cartevents.TopicName, event)
	if err != nil {
		s.logger.Log(c, event.GetAggregateName(), mylog.SeverityError, "Error publishing %s: %s", event.GetEventTypeName(), err)
	}
}
