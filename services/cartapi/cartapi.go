package cartapi

import (
	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
)

// LineItem is one merchandise selection submitted to a cart mutation.
type LineItem struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
	SellingPlanID string `json:"sellingPlanId,omitempty"`
}

// LineUpdate targets an existing cart line by its id.
type LineUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type CartCost struct {
	Subtotal Money `json:"subtotal"`
	Total    Money `json:"total"`
}

type Merchandise struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ProductTitle string `json:"productTitle"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Price        Money  `json:"price"`
	// Only present when the backend reports a markdown
	CompareAtPrice *Money `json:"compareAtPrice,omitempty"`
}

type CartLine struct {
	ID          string      `json:"id"`
	Quantity    int         `json:"quantity"`
	Merchandise Merchandise `json:"merchandise"`
}

// Cart is a read-through projection of the backend-owned cart resource.
type Cart struct {
	ID            string     `json:"id"`
	CheckoutURL   string     `json:"checkoutUrl"`
	TotalQuantity int        `json:"totalQuantity"`
	Cost          CartCost   `json:"cost"`
	Lines         []CartLine `json:"lines"`
}

// CartModification is the normalized result of every cart mutation. The
// returned CartID supersedes whatever identifier the caller held before.
type CartModification struct {
	CartID        string `json:"cartId"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
}

type ProductVariant struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	AvailableForSale bool   `json:"availableForSale"`
	Price            Money  `json:"price"`
	CompareAtPrice   *Money `json:"compareAtPrice,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty"`
}

type Product struct {
	ID               string           `json:"id"`
	Handle           string           `json:"handle"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	FeaturedImageURL string           `json:"featuredImageUrl,omitempty"`
	Variants         []ProductVariant `json:"variants"`
}

func ValidateLineItems(lines []LineItem) error {
	if len(lines) == 0 {
		return myerrors.NewInvalidInputErrorf("lines are required")
	}
	for _, line := range lines {
		if line.MerchandiseID == "" {
			return myerrors.NewInvalidInputErrorf("line is missing a merchandise id")
		}
		if line.Quantity <= 0 {
			return myerrors.NewInvalidInputErrorf("line quantity must be positive")
		}
	}
	return nil
}

func ValidateLineUpdates(updates []LineUpdate) error {
	if len(updates) == 0 {
		return myerrors.NewInvalidInputErrorf("lines are required")
	}
	for _, update := range updates {
		if update.ID == "" {
			return myerrors.NewInvalidInputErrorf("line update is missing a line id")
		}
		if update.Quantity < 0 {
			return myerrors.NewInvalidInputErrorf("line quantity must not be negative")
		}
	}
	return nil
}

func ValidateLineIDs(lineIDs []string) error {
	if len(lineIDs) == 0 {
		return myerrors.NewInvalidInputErrorf("lineIds are required")
	}
	for _, id := range lineIDs {
		if id == "" {
			return myerrors.NewInvalidInputErrorf("empty line id")
		}
	}
	return nil
}
