// Package cart owns the shopping cart and wishlist for one browser
// context. Mutations are funneled through the Manager and write through
// to the persisted store immediately; storage writes are treated as
// always succeeding (failures are logged, never surfaced).
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shophub-io/storefront/models"
	"github.com/shophub-io/storefront/store"
	"github.com/sirupsen/logrus"
)

// Notice is the toast-equivalent a mutation produces.
type Notice struct {
	Level   string `json:"level"` // "success" | "info"
	Message string `json:"message"`
}

type Manager struct {
	mu        sync.Mutex
	store     store.Store
	contextID string
	log       *logrus.Entry

	lines    []models.CartLine
	wishlist []models.WishlistEntry
}

// NewManager restores the cart and wishlist for contextID from the
// store. Corrupt or missing state restores as empty.
func NewManager(ctx context.Context, s store.Store, contextID string, log *logrus.Logger) *Manager {
	m := &Manager{
		store:     s,
		contextID: contextID,
		log:       log.WithField("component", "cart"),
	}
	m.lines = loadSlice[models.CartLine](ctx, s, contextID, store.KeyCart, m.log)
	m.wishlist = loadSlice[models.WishlistEntry](ctx, s, contextID, store.KeyWishlist, m.log)
	return m
}

func loadSlice[T any](ctx context.Context, s store.Store, contextID, key string, log *logrus.Entry) []T {
	raw, err := s.Get(ctx, contextID, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.WithError(err).WithField("key", key).Warn("failed to load persisted state")
		}
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.WithError(err).WithField("key", key).Warn("discarding corrupt persisted state")
		return nil
	}
	return out
}

// AddToCart merges quantity into an existing line or appends a new one.
// Quantity is assumed positive.
func (m *Manager) AddToCart(ctx context.Context, p models.Product, quantity int) Notice {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].ProductID == p.ID {
			m.lines[i].Quantity += quantity
			m.persistCart(ctx)
			return Notice{Level: "info", Message: fmt.Sprintf("Updated %s quantity in cart", p.Name)}
		}
	}

	m.lines = append(m.lines, models.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
		Quantity:  quantity,
	})
	m.persistCart(ctx)
	return Notice{Level: "success", Message: fmt.Sprintf("%s added to cart!", p.Name)}
}

// RemoveFromCart removes the line if present; no-op when absent.
func (m *Manager) RemoveFromCart(ctx context.Context, productID int64) Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(ctx, productID)
}

func (m *Manager) removeLocked(ctx context.Context, productID int64) Notice {
	for i, line := range m.lines {
		if line.ProductID == productID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			m.persistCart(ctx)
			return Notice{Level: "info", Message: fmt.Sprintf("%s removed from cart", line.Name)}
		}
	}
	return Notice{}
}

// UpdateQuantity sets the line's quantity directly; anything below 1
// behaves as removal.
func (m *Manager) UpdateQuantity(ctx context.Context, productID int64, quantity int) Notice {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity < 1 {
		return m.removeLocked(ctx, productID)
	}
	for i := range m.lines {
		if m.lines[i].ProductID == productID {
			m.lines[i].Quantity = quantity
			m.persistCart(ctx)
			break
		}
	}
	return Notice{}
}

func (m *Manager) ClearCart(ctx context.Context) Notice {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = nil
	m.persistCart(ctx)
	return Notice{Level: "info", Message: "Cart cleared"}
}

// AddToWishlist has set semantics; a duplicate add is a no-op notice.
func (m *Manager) AddToWishlist(ctx context.Context, p models.Product) Notice {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range m.wishlist {
		if entry.ProductID == p.ID {
			return Notice{Level: "info", Message: fmt.Sprintf("%s is already in wishlist", p.Name)}
		}
	}
	m.wishlist = append(m.wishlist, models.WishlistEntry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
	})
	m.persistWishlist(ctx)
	return Notice{Level: "success", Message: fmt.Sprintf("%s added to wishlist!", p.Name)}
}

func (m *Manager) RemoveFromWishlist(ctx context.Context, productID int64) Notice {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, entry := range m.wishlist {
		if entry.ProductID == productID {
			m.wishlist = append(m.wishlist[:i], m.wishlist[i+1:]...)
			break
		}
	}
	m.persistWishlist(ctx)
	return Notice{Level: "info", Message: "Removed from wishlist"}
}

func (m *Manager) IsInWishlist(productID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range m.wishlist {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

// Lines returns a copy of the cart lines.
func (m *Manager) Lines() []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// Wishlist returns a copy of the wishlist entries.
func (m *Manager) Wishlist() []models.WishlistEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.WishlistEntry, len(m.wishlist))
	copy(out, m.wishlist)
	return out
}

// CartTotal is the sum of price x quantity over all lines.
func (m *Manager) CartTotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for _, line := range m.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// CartCount is the sum of quantities over all lines.
func (m *Manager) CartCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int
	for _, line := range m.lines {
		count += line.Quantity
	}
	return count
}

func (m *Manager) persistCart(ctx context.Context) {
	m.persist(ctx, store.KeyCart, m.lines)
}

func (m *Manager) persistWishlist(ctx context.Context) {
	m.persist(ctx, store.KeyWishlist, m.wishlist)
}

func (m *Manager) persist(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		m.log.WithError(err).WithField("key", key).Error("failed to encode state")
		return
	}
	if err := m.store.Set(ctx, m.contextID, key, raw); err != nil {
		m.log.WithError(err).WithField("key", key).Error("failed to persist state")
	}
}
