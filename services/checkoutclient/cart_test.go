package checkoutclient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/meatshop/services/catalog"
)

func TestCart(t *testing.T) {

	t.Run("Empty cart", func(t *testing.T) {
		cart := NewCart()

		assert.True(t, cart.IsEmpty())
		assert.Equal(t, int64(0), cart.TotalAmount())
	})

	t.Run("Adding same product twice increments quantity", func(t *testing.T) {
		cart := NewCart().Add(wagyu).Add(wagyu)

		lines := cart.Lines()
		assert.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, int64(2000), cart.TotalAmount())
	})

	t.Run("Total is sum of price times quantity", func(t *testing.T) {
		cart := NewCart().Add(wagyu).Add(wagyu).Add(chicken)

		assert.Equal(t, int64(2450), cart.TotalAmount())
	})

	t.Run("Decrementing quantity to zero removes the line", func(t *testing.T) {
		cart := NewCart().Add(wagyu).UpdateQuantity("1", -1)

		assert.True(t, cart.IsEmpty())
	})

	t.Run("Updating quantity of unknown product is a no-op", func(t *testing.T) {
		cart := NewCart().Add(wagyu).UpdateQuantity("999", 5)

		lines := cart.Lines()
		assert.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("Removing a product", func(t *testing.T) {
		cart := NewCart().Add(wagyu).Add(chicken).Remove("1")

		lines := cart.Lines()
		assert.Len(t, lines, 1)
		assert.Equal(t, "3", lines[0].ProductUID)
	})

	t.Run("Lines remain unique and positive over any sequence", func(t *testing.T) {
		cart := NewCart()
		for _, product := range catalog.Products() {
			cart = cart.Add(product).Add(product)
		}
		cart = cart.UpdateQuantity("2", -1).UpdateQuantity("4", -5).Remove("5")

		seen := map[string]bool{}
		for _, line := range cart.Lines() {
			assert.False(t, seen[line.ProductUID])
			seen[line.ProductUID] = true
			assert.GreaterOrEqual(t, line.Quantity, 1)
		}
	})

	t.Run("Operations leave the original cart untouched", func(t *testing.T) {
		cart := NewCart().Add(wagyu)
		_ = cart.Add(chicken)
		_ = cart.Remove("1")

		lines := cart.Lines()
		assert.Len(t, lines, 1)
		assert.Equal(t, "1", lines[0].ProductUID)
	})
}
