package cart

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"promosur.cl/app/internal/localstore"
)

// Store holds the cart lines in insertion order and mirrors every mutation
// to durable storage. The source behavior is single-threaded; the mutex only
// serializes the concurrent request handlers of the Go HTTP layer.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage localstore.Store
	log     *slog.Logger
}

// NewStore hydrates the cart from storage exactly once. An absent or
// unparseable payload silently yields an empty cart.
func NewStore(storage localstore.Store, log *slog.Logger) *Store {
	s := &Store{storage: storage, log: log}

	payload, ok, err := storage.Get(StorageKey)
	if err != nil || !ok {
		if err != nil {
			log.Warn("cart_hydrate_failed", slog.Any("err", err))
		}
		return s
	}
	if err := json.Unmarshal(payload, &s.items); err != nil {
		log.Warn("cart_hydrate_unparseable", slog.Any("err", err))
		s.items = nil
	}
	return s
}

// Add merges the item into an existing line with the same identity key,
// incrementing its quantity in place, or appends a new line at the end.
func (s *Store) Add(item Item) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("cart: quantity must be positive, got %d", item.Quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].sameKey(item.Product.ID, item.SelectedColor, item.SelectedSize) {
			s.items[i].Quantity += item.Quantity
			return s.persist()
		}
	}

	s.items = append(s.items, item)
	return s.persist()
}

// Remove drops every line matching the identity key. A nil color or size
// only matches lines where that option was never set. Removing a missing
// key is a no-op.
func (s *Store) Remove(productID int, color, size *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if !it.sameKey(productID, color, size) {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return nil
	}
	s.items = kept
	return s.persist()
}

// TotalItems sums the quantities of all lines. Recomputed on every call.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Items returns a snapshot of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// persist serializes the whole cart under StorageKey. Callers hold the lock.
func (s *Store) persist() error {
	payload, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("cart: serialize: %w", err)
	}
	if err := s.storage.Set(StorageKey, payload); err != nil {
		return fmt.Errorf("cart: persist: %w", err)
	}
	return nil
}
