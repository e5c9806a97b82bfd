package mockcommerce

import (
	"time"

	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

// MockCart is the stored shape of a cart on the local stand-in backend.
type MockCart struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Lines     []cartapi.LineItem
}

func (m MockCart) totalQuantity() int {
	total := 0
	for _, line := range m.Lines {
		total += line.Quantity
	}
	return total
}
