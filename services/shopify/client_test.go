package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scottygfc67/pearlperfect-website/config"
	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

type sentRequest struct {
	method  string
	url     string
	headers map[string]string
	body    []byte
}

type cannedResponse struct {
	status int
	body   string
	err    error
}

type fakeSender struct {
	requests  []sentRequest
	responses []cannedResponse
}

func (f *fakeSender) Send(c context.Context, method string, url string, headers map[string]string, body []byte) (int, []byte, error) {
	f.requests = append(f.requests, sentRequest{method: method, url: url, headers: headers, body: body})

	if len(f.responses) == 0 {
		return 200, []byte(`{"data":{}}`), nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp.status, []byte(resp.body), resp.err
}

func newTestClient(sender *fakeSender) Client {
	return NewClient(&config.Config{
		StoreDomain:           "example.myshopify.com",
		StorefrontAccessToken: "shpca_test",
		AdminAccessToken:      "shpat_test",
		APIVersion:            "2025-07",
	}, sender)
}

func TestCreateCart(t *testing.T) {
	t.Run("Empty cart is valid and returns checkout url", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body:   `{"data":{"cartCreate":{"cart":{"id":"gid://shopify/Cart/abc","checkoutUrl":"https://example.myshopify.com/checkouts/abc","totalQuantity":0},"userErrors":[]}}}`,
		}}}
		client := newTestClient(sender)

		modification, err := client.CreateCart(context.Background(), nil)

		assert.NoError(t, err)
		assert.Equal(t, "gid://shopify/Cart/abc", modification.CartID)
		assert.Equal(t, "https://example.myshopify.com/checkouts/abc", modification.CheckoutURL)

		assert.Len(t, sender.requests, 1)
		request := sender.requests[0]
		assert.Equal(t, "https://example.myshopify.com/api/2025-07/graphql.json", request.url)
		assert.Equal(t, "shpca_test", request.headers["X-Shopify-Storefront-Access-Token"])
	})

	t.Run("Buyer ip is forwarded", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body:   `{"data":{"cartCreate":{"cart":{"id":"c1","checkoutUrl":"https://x/c1","totalQuantity":1},"userErrors":[]}}}`,
		}}}
		client := newTestClient(sender)

		c := WithBuyerIP(context.Background(), "203.0.113.7")
		_, err := client.CreateCart(c, []cartapi.LineItem{{MerchandiseID: "gid://shopify/ProductVariant/1", Quantity: 1}})

		assert.NoError(t, err)
		assert.Equal(t, "203.0.113.7", sender.requests[0].headers["Shopify-Storefront-Buyer-IP"])
	})

	t.Run("User errors become backend rejection", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body:   `{"data":{"cartCreate":{"cart":null,"userErrors":[{"field":["lines"],"message":"line quantity must be positive"},{"field":null,"message":"second detail"}]}}}`,
		}}}
		client := newTestClient(sender)

		_, err := client.CreateCart(context.Background(), []cartapi.LineItem{{MerchandiseID: "gid://shopify/ProductVariant/1", Quantity: 1}})

		var rejected *BackendRejectedError
		assert.ErrorAs(t, err, &rejected)
		assert.Equal(t, "line quantity must be positive", rejected.Error())
		assert.Len(t, rejected.Messages, 2)
	})

	t.Run("Network failure becomes transport error", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{err: fmt.Errorf("connection refused")}}}
		client := newTestClient(sender)

		_, err := client.CreateCart(context.Background(), nil)

		var transport *TransportError
		assert.ErrorAs(t, err, &transport)
	})

	t.Run("Non-2xx becomes transport error", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{status: 502, body: `bad gateway`}}}
		client := newTestClient(sender)

		_, err := client.CreateCart(context.Background(), nil)

		var transport *TransportError
		assert.ErrorAs(t, err, &transport)
	})

	t.Run("Malformed payload becomes transport error", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{status: 200, body: `{not json`}}}
		client := newTestClient(sender)

		_, err := client.CreateCart(context.Background(), nil)

		var transport *TransportError
		assert.ErrorAs(t, err, &transport)
	})

	t.Run("GraphQL errors become transport error", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{status: 200, body: `{"data":null,"errors":[{"message":"throttled"}]}`}}}
		client := newTestClient(sender)

		_, err := client.CreateCart(context.Background(), nil)

		var transport *TransportError
		assert.ErrorAs(t, err, &transport)
		assert.Contains(t, err.Error(), "throttled")
	})
}

func TestAddLines(t *testing.T) {
	t.Run("Empty lines never reach the network", func(t *testing.T) {
		sender := &fakeSender{}
		client := newTestClient(sender)

		_, err := client.AddLines(context.Background(), "gid://shopify/Cart/abc", []cartapi.LineItem{})

		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
		assert.Empty(t, sender.requests)
	})

	t.Run("Missing cart id never reaches the network", func(t *testing.T) {
		sender := &fakeSender{}
		client := newTestClient(sender)

		_, err := client.AddLines(context.Background(), "", []cartapi.LineItem{{MerchandiseID: "v1", Quantity: 1}})

		assert.Error(t, err)
		assert.Empty(t, sender.requests)
	})

	t.Run("Unresolvable cart becomes invalid-cart error", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body:   `{"data":{"cartLinesAdd":{"cart":null,"userErrors":[]}}}`,
		}}}
		client := newTestClient(sender)

		_, err := client.AddLines(context.Background(), "gid://shopify/Cart/expired", []cartapi.LineItem{{MerchandiseID: "v1", Quantity: 1}})

		var invalidCart *InvalidCartError
		assert.ErrorAs(t, err, &invalidCart)
		assert.Equal(t, "gid://shopify/Cart/expired", invalidCart.CartID)
	})

	t.Run("Selling plan is passed through", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body:   `{"data":{"cartLinesAdd":{"cart":{"id":"c1","checkoutUrl":"https://x/c1","totalQuantity":2},"userErrors":[]}}}`,
		}}}
		client := newTestClient(sender)

		_, err := client.AddLines(context.Background(), "c1", []cartapi.LineItem{
			{MerchandiseID: "gid://shopify/ProductVariant/1", Quantity: 2, SellingPlanID: "gid://shopify/SellingPlan/9"},
		})

		assert.NoError(t, err)
		request := struct {
			Variables struct {
				Lines []map[string]any `json:"lines"`
			} `json:"variables"`
		}{}
		assert.NoError(t, json.Unmarshal(sender.requests[0].body, &request))
		assert.Len(t, request.Variables.Lines, 1)
		assert.Equal(t, "gid://shopify/SellingPlan/9", request.Variables.Lines[0]["sellingPlanId"])
	})
}

func TestUpdateLines(t *testing.T) {
	t.Run("Quantity zero is passed through verbatim", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body:   `{"data":{"cartLinesUpdate":{"cart":{"id":"c1","checkoutUrl":"https://x/c1","totalQuantity":0},"userErrors":[]}}}`,
		}}}
		client := newTestClient(sender)

		_, err := client.UpdateLines(context.Background(), "c1", []cartapi.LineUpdate{{ID: "line-1", Quantity: 0}})

		assert.NoError(t, err)
		request := struct {
			Variables struct {
				Lines []map[string]any `json:"lines"`
			} `json:"variables"`
		}{}
		assert.NoError(t, json.Unmarshal(sender.requests[0].body, &request))
		assert.Equal(t, float64(0), request.Variables.Lines[0]["quantity"])
	})

	t.Run("Empty updates never reach the network", func(t *testing.T) {
		sender := &fakeSender{}
		client := newTestClient(sender)

		_, err := client.UpdateLines(context.Background(), "c1", nil)

		assert.Error(t, err)
		assert.Empty(t, sender.requests)
	})
}

func TestRemoveLines(t *testing.T) {
	t.Run("Empty line ids never reach the network", func(t *testing.T) {
		sender := &fakeSender{}
		client := newTestClient(sender)

		_, err := client.RemoveLines(context.Background(), "c1", nil)

		assert.Error(t, err)
		assert.Empty(t, sender.requests)
	})

	t.Run("Remove returns fresh projection", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body:   `{"data":{"cartLinesRemove":{"cart":{"id":"c1","checkoutUrl":"https://x/c1","totalQuantity":1},"userErrors":[]}}}`,
		}}}
		client := newTestClient(sender)

		modification, err := client.RemoveLines(context.Background(), "c1", []string{"line-1"})

		assert.NoError(t, err)
		assert.Equal(t, 1, modification.TotalQuantity)
	})
}

func TestGetCart(t *testing.T) {
	t.Run("Unresolvable id is absent, not an error", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{status: 200, body: `{"data":{"cart":null}}`}}}
		client := newTestClient(sender)

		_, found, err := client.GetCart(context.Background(), "gid://shopify/Cart/expired")

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Full cart projection", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body: `{"data":{"cart":{
				"id":"gid://shopify/Cart/abc",
				"checkoutUrl":"https://example.myshopify.com/checkouts/abc",
				"totalQuantity":3,
				"cost":{"subtotalAmount":{"amount":"59.97","currencyCode":"USD"},"totalAmount":{"amount":"59.97","currencyCode":"USD"}},
				"lines":{"edges":[
					{"node":{"id":"line-1","quantity":2,"merchandise":{
						"id":"gid://shopify/ProductVariant/51494960857426",
						"title":"Default",
						"image":{"url":"https://cdn/img.png","altText":"strips"},
						"product":{"title":"V34 Teeth Whitening Strips","handle":"v34-teeth-whitening-strips"},
						"price":{"amount":"19.99","currencyCode":"USD"},
						"compareAtPrice":{"amount":"29.99","currencyCode":"USD"}}}},
					{"node":{"id":"line-2","quantity":1,"merchandise":{
						"id":"gid://shopify/ProductVariant/2",
						"title":"Large",
						"image":null,
						"product":{"title":"Other","handle":"other"},
						"price":{"amount":"19.99","currencyCode":"USD"},
						"compareAtPrice":null}}}
				]}}}}`,
		}}}
		client := newTestClient(sender)

		cart, found, err := client.GetCart(context.Background(), "gid://shopify/Cart/abc")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "gid://shopify/Cart/abc", cart.ID)
		assert.Equal(t, 3, cart.TotalQuantity)
		assert.Equal(t, "59.97", cart.Cost.Total.Amount)
		assert.Len(t, cart.Lines, 2)
		assert.Equal(t, "V34 Teeth Whitening Strips", cart.Lines[0].Merchandise.ProductTitle)
		assert.NotNil(t, cart.Lines[0].Merchandise.CompareAtPrice)
		assert.Equal(t, "29.99", cart.Lines[0].Merchandise.CompareAtPrice.Amount)
		assert.Nil(t, cart.Lines[1].Merchandise.CompareAtPrice)
		assert.Empty(t, cart.Lines[1].Merchandise.ImageURL)
	})

	t.Run("Transport failure propagates", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{err: errors.New("timeout")}}}
		client := newTestClient(sender)

		_, _, err := client.GetCart(context.Background(), "c1")

		var transport *TransportError
		assert.ErrorAs(t, err, &transport)
	})
}

func TestGetProductByHandle(t *testing.T) {
	t.Run("Storefront answer wins", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{
			status: 200,
			body: `{"data":{"product":{
				"id":"gid://shopify/Product/1","handle":"v34-teeth-whitening-strips","title":"V34","description":"whitening",
				"featuredImage":{"url":"https://cdn/v34.png"},
				"variants":{"edges":[{"node":{"id":"gid://shopify/ProductVariant/51494960857426","title":"Default","availableForSale":true,
					"price":{"amount":"19.99","currencyCode":"USD"},"compareAtPrice":null,"image":null}}]}}}}`,
		}}}
		client := newTestClient(sender)

		product, found, err := client.GetProductByHandle(context.Background(), "v34-teeth-whitening-strips")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "V34", product.Title)
		assert.Len(t, product.Variants, 1)
		assert.True(t, product.Variants[0].AvailableForSale)
		assert.Len(t, sender.requests, 1)
	})

	t.Run("Unknown handle is absent", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{status: 200, body: `{"data":{"product":null}}`}}}
		client := newTestClient(sender)

		_, found, err := client.GetProductByHandle(context.Background(), "unknown")

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Falls back to admin api on transport failure", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{
			{status: 503, body: `unavailable`},
			{status: 200, body: `{"data":{"products":{"nodes":[{
				"id":"gid://shopify/Product/1","handle":"v34-teeth-whitening-strips","title":"V34","description":"whitening",
				"featuredImage":null,
				"variants":{"nodes":[{"id":"gid://shopify/ProductVariant/51494960857426","title":"Default","availableForSale":true,
					"price":"19.99","compareAtPrice":"29.99","image":null}]}}]}}}`},
		}}
		client := newTestClient(sender)

		product, found, err := client.GetProductByHandle(context.Background(), "v34-teeth-whitening-strips")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "V34", product.Title)
		assert.Equal(t, "19.99", product.Variants[0].Price.Amount)

		assert.Len(t, sender.requests, 2)
		assert.Equal(t, "https://example.myshopify.com/api/2025-07/graphql.json", sender.requests[0].url)
		assert.Equal(t, "https://example.myshopify.com/admin/api/2025-07/graphql.json", sender.requests[1].url)
		assert.Equal(t, "shpat_test", sender.requests[1].headers["X-Shopify-Access-Token"])
	})

	t.Run("No admin token means no fallback", func(t *testing.T) {
		sender := &fakeSender{responses: []cannedResponse{{status: 503, body: `unavailable`}}}
		client := NewClient(&config.Config{
			StoreDomain:           "example.myshopify.com",
			StorefrontAccessToken: "shpca_test",
			APIVersion:            "2025-07",
		}, sender)

		_, _, err := client.GetProductByHandle(context.Background(), "v34-teeth-whitening-strips")

		var transport *TransportError
		assert.ErrorAs(t, err, &transport)
		assert.Len(t, sender.requests, 1)
	})
}
