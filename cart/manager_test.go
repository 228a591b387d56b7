package cart

import (
	"context"
	"testing"

	"github.com/shophub-io/storefront/models"
	"github.com/shophub-io/storefront/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestManager(t *testing.T) (*Manager, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	return NewManager(context.Background(), s, "ctx-test", testLogger()), s
}

var (
	laptop = models.Product{ID: 1, Name: "Laptop", Price: 100, Category: "electronics"}
	mouse  = models.Product{ID: 2, Name: "Mouse", Price: 25}
)

func TestAddToCart_MergesQuantities(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	n := m.AddToCart(ctx, laptop, 2)
	assert.Equal(t, "success", n.Level)
	assert.Equal(t, "Laptop added to cart!", n.Message)

	n = m.AddToCart(ctx, laptop, 3)
	assert.Equal(t, "info", n.Level)
	assert.Equal(t, "Updated Laptop quantity in cart", n.Message)

	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 500.0, m.CartTotal())
	assert.Equal(t, 5, m.CartCount())
}

func TestCart_OneLinePerProduct(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	m.AddToCart(ctx, laptop, 1)
	m.AddToCart(ctx, mouse, 2)
	m.AddToCart(ctx, laptop, 1)
	m.UpdateQuantity(ctx, mouse.ID, 4)
	m.AddToCart(ctx, mouse, 1)

	seen := map[int64]bool{}
	for _, line := range m.Lines() {
		assert.False(t, seen[line.ProductID], "duplicate line for product %d", line.ProductID)
		seen[line.ProductID] = true
	}
	assert.Equal(t, 100.0*2+25.0*5, m.CartTotal())
}

func TestRemoveFromCart(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	m.AddToCart(ctx, laptop, 1)
	n := m.RemoveFromCart(ctx, laptop.ID)
	assert.Equal(t, "Laptop removed from cart", n.Message)
	assert.Empty(t, m.Lines())

	// Removing an absent product is a silent no-op.
	n = m.RemoveFromCart(ctx, 99)
	assert.Empty(t, n.Message)
}

func TestUpdateQuantity_BelowOneRemoves(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	m.AddToCart(ctx, laptop, 3)
	m.UpdateQuantity(ctx, laptop.ID, 0)
	assert.Empty(t, m.Lines())

	m.AddToCart(ctx, laptop, 3)
	m.UpdateQuantity(ctx, laptop.ID, -5)
	assert.Empty(t, m.Lines())
}

func TestUpdateQuantity_SetsDirectly(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	m.AddToCart(ctx, laptop, 3)
	m.UpdateQuantity(ctx, laptop.ID, 7)

	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity) // set, not merged
}

func TestClearCart(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	m.AddToCart(ctx, laptop, 1)
	m.AddToCart(ctx, mouse, 2)
	n := m.ClearCart(ctx)
	assert.Equal(t, "Cart cleared", n.Message)
	assert.Empty(t, m.Lines())
	assert.Zero(t, m.CartTotal())
	assert.Zero(t, m.CartCount())
}

func TestWishlist_AddIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	n := m.AddToWishlist(ctx, laptop)
	assert.Equal(t, "Laptop added to wishlist!", n.Message)

	n = m.AddToWishlist(ctx, laptop)
	assert.Equal(t, "Laptop is already in wishlist", n.Message)

	assert.Len(t, m.Wishlist(), 1)
	assert.True(t, m.IsInWishlist(laptop.ID))
	assert.False(t, m.IsInWishlist(mouse.ID))

	m.RemoveFromWishlist(ctx, laptop.ID)
	assert.False(t, m.IsInWishlist(laptop.ID))
}

func TestManager_WriteThroughPersistence(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	m1 := NewManager(ctx, s, "ctx-a", testLogger())
	m1.AddToCart(ctx, laptop, 2)
	m1.AddToWishlist(ctx, mouse)

	// A new manager over the same store and context sees the state.
	m2 := NewManager(ctx, s, "ctx-a", testLogger())
	require.Len(t, m2.Lines(), 1)
	assert.Equal(t, laptop.ID, m2.Lines()[0].ProductID)
	assert.True(t, m2.IsInWishlist(mouse.ID))

	// A different context does not.
	m3 := NewManager(ctx, s, "ctx-b", testLogger())
	assert.Empty(t, m3.Lines())
}

func TestManager_CorruptStateRestoresEmpty(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "ctx-a", store.KeyCart, []byte(`{not json`)))

	m := NewManager(ctx, s, "ctx-a", testLogger())
	assert.Empty(t, m.Lines())
}
