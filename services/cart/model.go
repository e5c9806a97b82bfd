package cart

import (
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

type createRequest struct {
	Lines []cartapi.LineItem `json:"lines"`
}

type addRequest struct {
	CartID string             `json:"cartId"`
	Lines  []cartapi.LineItem `json:"lines"`
}

type updateRequest struct {
	CartID string               `json:"cartId"`
	Lines  []cartapi.LineUpdate `json:"lines"`
}

type removeRequest struct {
	CartID  string   `json:"cartId"`
	LineIDs []string `json:"lineIds"`
}

// CartModificationResponse is the envelope returned by every cart mutation.
type CartModificationResponse struct {
	Success       bool   `json:"success"`
	CartID        string `json:"cartId"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
}

type CartResponse struct {
	Success bool         `json:"success"`
	Cart    cartapi.Cart `json:"cart"`
}
