package checkout

import (
	"fmt"
	"strings"

	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

// ConfigurationError means the checkout fallback cannot work at all until an
// operator fixes the deployment. Never caused by shopper input.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("checkout fallback misconfigured: %s", e.Reason)
}

// PermalinkBuilder produces stateless checkout links of the form
// https://<domain>/cart/<variant>:<quantity>,... which the commerce backend
// resolves without any pre-existing cart. Used when the cart API is down.
type PermalinkBuilder struct {
	storeDomain string
}

func NewPermalinkBuilder(storeDomain string) PermalinkBuilder {
	return PermalinkBuilder{
		storeDomain: storeDomain,
	}
}

func (b PermalinkBuilder) Build(lines []cartapi.LineItem) (string, error) {
	if b.storeDomain == "" {
		return "", &ConfigurationError{Reason: "store domain is not set"}
	}
	err := cartapi.ValidateLineItems(lines)
	if err != nil {
		return "", err
	}

	segments := make([]string, 0, len(lines))
	for _, line := range lines {
		variantID, err := numericVariantID(line.MerchandiseID)
		if err != nil {
			return "", err
		}
		segments = append(segments, fmt.Sprintf("%s:%d", variantID, line.Quantity))
	}

	return fmt.Sprintf("https://%s/cart/%s", b.storeDomain, strings.Join(segments, ",")), nil
}

// numericVariantID strips the gid prefix: permalinks only accept the bare
// numeric identifier, not gid://shopify/ProductVariant/<n>.
func numericVariantID(merchandiseID string) (string, error) {
	id := merchandiseID
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}
	if id == "" {
		return "", myerrors.NewInvalidInputErrorf("merchandise id %q has no variant id", merchandiseID)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", myerrors.NewInvalidInputErrorf("merchandise id %q has no numeric variant id", merchandiseID)
		}
	}
	return id, nil
}
