package shopify

import (
	"context"
	"fmt"

	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

func (cl *client) productFromStorefront(c context.Context, handle string) (cartapi.Product, bool, error) {
	data := struct {
		Product *productDetail `json:"product"`
	}{}
	err := cl.storefront(c, "product", productByHandleQuery, map[string]any{"handle": handle}, &data)
	if err != nil {
		return cartapi.Product{}, false, err
	}

	if data.Product == nil {
		return cartapi.Product{}, false, nil
	}

	return data.Product.toProduct(), true, nil
}

func (cl *client) productFromAdmin(c context.Context, handle string) (cartapi.Product, bool, error) {
	data := struct {
		Products struct {
			Nodes []adminProduct `json:"nodes"`
		} `json:"products"`
	}{}
	err := cl.admin(c, "adminProductSearch", adminProductSearchQuery, map[string]any{
		"query": fmt.Sprintf("handle:%s", handle),
	}, &data)
	if err != nil {
		return cartapi.Product{}, false, err
	}

	if len(data.Products.Nodes) == 0 {
		return cartapi.Product{}, false, nil
	}

	return data.Products.Nodes[0].toProduct(), true, nil
}
