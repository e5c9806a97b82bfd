package cartactivity

import "time"

// CartActivity is a per-cart tally of what happened to it, fed by cart
// events. Gives operators a quick answer to "did this cart ever mutate".
type CartActivity struct {
	CartID        string    `json:"cartId"`
	CreatedAt     time.Time `json:"createdAt"`
	LastModified  time.Time `json:"lastModified"`
	TotalQuantity int       `json:"totalQuantity"`
	Mutations     int       `json:"mutations"`
}
