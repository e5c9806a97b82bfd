package checkout

import (
	"context"
	"errors"

	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/mylog"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
	"github.com/scottygfc67/pearlperfect-website/services/shopify"
)

type service struct {
	client     shopify.Client
	permalinks PermalinkBuilder
	logger     mylog.Logger
}

func newService(client shopify.Client, permalinks PermalinkBuilder, logger mylog.Logger) *service {
	return &service{
		client:     client,
		permalinks: permalinks,
		logger:     logger,
	}
}

// buyNow creates a single-line cart and hands back its checkout URL. When the
// cart API cannot be reached, the shopper is sent to a stateless permalink
// instead; no cart exists in that case, so the returned cart id is empty.
func (s *service) buyNow(c context.Context, line cartapi.LineItem) (string, string, error) {
	modification, err := s.client.CreateCart(c, []cartapi.LineItem{line})
	if err == nil {
		return modification.CheckoutURL, modification.CartID, nil
	}

	var transportErr *shopify.TransportError
	if errors.As(err, &transportErr) {
		s.logger.Log(c, line.MerchandiseID, mylog.SeverityWarn, "Cart API unreachable, using checkout permalink: %s", err)

		permalink, buildErr := s.permalinks.Build([]cartapi.LineItem{line})
		var configErr *ConfigurationError
		if errors.As(buildErr, &configErr) {
			// Operator problem, not the shopper's; hide the cause
			s.logger.Log(c, line.MerchandiseID, mylog.SeverityError, "No permalink fallback possible: %s", buildErr)
			return "", "", myerrors.NewUnavailableError(errors.New("could not complete request"))
		}
		if buildErr != nil {
			return "", "", buildErr
		}
		return permalink, "", nil
	}

	var rejectedErr *shopify.BackendRejectedError
	if errors.As(err, &rejectedErr) {
		return "", "", myerrors.NewInvalidInputError(rejectedErr)
	}

	return "", "", err
}
