package service

import (
	"sync"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// Favorites is the set of guides a session has marked as favorite.
// Membership is keyed by guide id, so a guide appears at most once and adding
// or removing twice is the same as doing it once. It lives only in memory.
type Favorites struct {
	mu    sync.Mutex
	byID  map[int]domain.Guide
	order []int
}

// NewFavorites returns an empty set.
func NewFavorites() *Favorites {
	return &Favorites{byID: make(map[int]domain.Guide)}
}

// Add inserts g. No-op if a guide with the same id is already present.
func (f *Favorites) Add(g domain.Guide) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.add(g)
}

// Remove deletes g. No-op if it is absent.
func (f *Favorites) Remove(g domain.Guide) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.remove(g.ID)
}

// IsFavorite reports whether g is in the set.
func (f *Favorites) IsFavorite(g domain.Guide) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.byID[g.ID]
	return ok
}

// Toggle flips g's membership and returns the new state.
func (f *Favorites) Toggle(g domain.Guide) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[g.ID]; ok {
		f.remove(g.ID)
		return false
	}
	f.add(g)
	return true
}

// List returns the favorites in the order they were added.
func (f *Favorites) List() []domain.Guide {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Guide, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.order)
}

func (f *Favorites) add(g domain.Guide) {
	if _, ok := f.byID[g.ID]; ok {
		return
	}
	f.byID[g.ID] = g
	f.order = append(f.order, g.ID)
}

func (f *Favorites) remove(id int) {
	if _, ok := f.byID[id]; !ok {
		return
	}
	delete(f.byID, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}
