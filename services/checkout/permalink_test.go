package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

func TestPermalink(t *testing.T) {
	builder := NewPermalinkBuilder("example.myshopify.com")

	t.Run("Single line", func(t *testing.T) {
		url, err := builder.Build([]cartapi.LineItem{
			{MerchandiseID: "gid://shopify/ProductVariant/51494960857426", Quantity: 2},
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://example.myshopify.com/cart/51494960857426:2", url)
	})

	t.Run("Multiple lines are comma separated", func(t *testing.T) {
		url, err := builder.Build([]cartapi.LineItem{
			{MerchandiseID: "gid://shopify/ProductVariant/1", Quantity: 1},
			{MerchandiseID: "gid://shopify/ProductVariant/2", Quantity: 3},
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://example.myshopify.com/cart/1:1,2:3", url)
	})

	t.Run("Bare numeric id is accepted", func(t *testing.T) {
		url, err := builder.Build([]cartapi.LineItem{
			{MerchandiseID: "51494960857426", Quantity: 1},
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://example.myshopify.com/cart/51494960857426:1", url)
	})

	t.Run("Non-numeric variant id is rejected", func(t *testing.T) {
		_, err := builder.Build([]cartapi.LineItem{
			{MerchandiseID: "gid://shopify/ProductVariant/not-a-number", Quantity: 1},
		})

		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
	})

	t.Run("Empty lines are rejected", func(t *testing.T) {
		_, err := builder.Build(nil)

		assert.Error(t, err)
	})

	t.Run("Missing domain is a configuration error", func(t *testing.T) {
		_, err := NewPermalinkBuilder("").Build([]cartapi.LineItem{
			{MerchandiseID: "1", Quantity: 1},
		})

		var configErr *ConfigurationError
		assert.ErrorAs(t, err, &configErr)
	})
}
