package shopify

import "github.com/scottygfc67/pearlperfect-website/services/cartapi"

// Wire shapes of the Storefront and Admin GraphQL responses. These stay
// private; callers only ever see the cartapi projections.

type moneyPayload struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

func (m moneyPayload) toMoney() cartapi.Money {
	return cartapi.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

type imagePayload struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type cartDetail struct {
	ID            string `json:"id"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
	Cost          struct {
		SubtotalAmount moneyPayload `json:"subtotalAmount"`
		TotalAmount    moneyPayload `json:"totalAmount"`
	} `json:"cost"`
	Lines struct {
		Edges []struct {
			Node cartLineNode `json:"node"`
		} `json:"edges"`
	} `json:"lines"`
}

type cartLineNode struct {
	ID          string `json:"id"`
	Quantity    int    `json:"quantity"`
	Merchandise struct {
		ID      string        `json:"id"`
		Title   string        `json:"title"`
		Image   *imagePayload `json:"image"`
		Product struct {
			Title  string `json:"title"`
			Handle string `json:"handle"`
		} `json:"product"`
		Price          moneyPayload  `json:"price"`
		CompareAtPrice *moneyPayload `json:"compareAtPrice"`
	} `json:"merchandise"`
}

func (d *cartDetail) toCart() cartapi.Cart {
	cart := cartapi.Cart{
		ID:            d.ID,
		CheckoutURL:   d.CheckoutURL,
		TotalQuantity: d.TotalQuantity,
		Cost: cartapi.CartCost{
			Subtotal: d.Cost.SubtotalAmount.toMoney(),
			Total:    d.Cost.TotalAmount.toMoney(),
		},
		Lines: []cartapi.CartLine{},
	}

	for _, edge := range d.Lines.Edges {
		node := edge.Node
		line := cartapi.CartLine{
			ID:       node.ID,
			Quantity: node.Quantity,
			Merchandise: cartapi.Merchandise{
				ID:           node.Merchandise.ID,
				Title:        node.Merchandise.Title,
				ProductTitle: node.Merchandise.Product.Title,
				Price:        node.Merchandise.Price.toMoney(),
			},
		}
		if node.Merchandise.Image != nil {
			line.Merchandise.ImageURL = node.Merchandise.Image.URL
		}
		if node.Merchandise.CompareAtPrice != nil {
			compareAt := node.Merchandise.CompareAtPrice.toMoney()
			line.Merchandise.CompareAtPrice = &compareAt
		}
		cart.Lines = append(cart.Lines, line)
	}

	return cart
}

type productDetail struct {
	ID            string        `json:"id"`
	Handle        string        `json:"handle"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	FeaturedImage *imagePayload `json:"featuredImage"`
	Variants      struct {
		Edges []struct {
			Node productVariantNode `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type productVariantNode struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	AvailableForSale bool          `json:"availableForSale"`
	Price            moneyPayload  `json:"price"`
	CompareAtPrice   *moneyPayload `json:"compareAtPrice"`
	Image            *imagePayload `json:"image"`
}

func (d *productDetail) toProduct() cartapi.Product {
	product := cartapi.Product{
		ID:          d.ID,
		Handle:      d.Handle,
		Title:       d.Title,
		Description: d.Description,
		Variants:    []cartapi.ProductVariant{},
	}
	if d.FeaturedImage != nil {
		product.FeaturedImageURL = d.FeaturedImage.URL
	}

	for _, edge := range d.Variants.Edges {
		node := edge.Node
		variant := cartapi.ProductVariant{
			ID:               node.ID,
			Title:            node.Title,
			AvailableForSale: node.AvailableForSale,
			Price:            node.Price.toMoney(),
		}
		if node.CompareAtPrice != nil {
			compareAt := node.CompareAtPrice.toMoney()
			variant.CompareAtPrice = &compareAt
		}
		if node.Image != nil {
			variant.ImageURL = node.Image.URL
		}
		product.Variants = append(product.Variants, variant)
	}

	return product
}

// Admin API shapes: prices are plain decimal strings without a currency.

type adminProduct struct {
	ID            string        `json:"id"`
	Handle        string        `json:"handle"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	FeaturedImage *imagePayload `json:"featuredImage"`
	Variants      struct {
		Nodes []adminVariant `json:"nodes"`
	} `json:"variants"`
}

type adminVariant struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	AvailableForSale bool          `json:"availableForSale"`
	Price            string        `json:"price"`
	CompareAtPrice   *string       `json:"compareAtPrice"`
	Image            *imagePayload `json:"image"`
}

func (p *adminProduct) toProduct() cartapi.Product {
	product := cartapi.Product{
		ID:          p.ID,
		Handle:      p.Handle,
		Title:       p.Title,
		Description: p.Description,
		Variants:    []cartapi.ProductVariant{},
	}
	if p.FeaturedImage != nil {
		product.FeaturedImageURL = p.FeaturedImage.URL
	}

	for _, node := range p.Variants.Nodes {
		variant := cartapi.ProductVariant{
			ID:               node.ID,
			Title:            node.Title,
			AvailableForSale: node.AvailableForSale,
			Price:            cartapi.Money{Amount: node.Price},
		}
		if node.CompareAtPrice != nil {
			variant.CompareAtPrice = &cartapi.Money{Amount: *node.CompareAtPrice}
		}
		if node.Image != nil {
			variant.ImageURL = node.Image.URL
		}
		product.Variants = append(product.Variants, variant)
	}

	return product
}
