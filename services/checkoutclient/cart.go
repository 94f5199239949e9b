package checkoutclient

import "github.com/MarcGrol/meatshop/services/catalog"

// Cart is an immutable value: every operation returns a new cart.
// The uniqueness invariant holds one line per product uid.
type Cart struct {
	lines []CartLine
}

func NewCart() Cart {
	return Cart{}
}

func (cart Cart) Add(product catalog.Product) Cart {
	lines := make([]CartLine, 0, len(cart.lines)+1)
	found := false
	for _, line := range cart.lines {
		if line.ProductUID == product.UID {
			line.Quantity++
			found = true
		}
		lines = append(lines, line)
	}
	if !found {
		lines = append(lines, CartLine{
			ProductUID:  product.UID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    1,
		})
	}

	return Cart{lines: lines}
}

func (cart Cart) UpdateQuantity(productUID string, delta int) Cart {
	lines := make([]CartLine, 0, len(cart.lines))
	for _, line := range cart.lines {
		if line.ProductUID == productUID {
			line.Quantity += delta
			if line.Quantity <= 0 {
				continue
			}
		}
		lines = append(lines, line)
	}

	return Cart{lines: lines}
}

func (cart Cart) Remove(productUID string) Cart {
	lines := make([]CartLine, 0, len(cart.lines))
	for _, line := range cart.lines {
		if line.ProductUID == productUID {
			continue
		}
		lines = append(lines, line)
	}

	return Cart{lines: lines}
}

func (cart Cart) TotalAmount() int64 {
	var total int64 = 0
	for _, line := range cart.lines {
		total += line.Price * int64(line.Quantity)
	}

	return total
}

func (cart Cart) IsEmpty() bool {
	return len(cart.lines) == 0
}

func (cart Cart) Lines() []CartLine {
	lines := make([]CartLine, len(cart.lines))
	copy(lines, cart.lines)

	return lines
}
