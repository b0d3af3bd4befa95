package state

import (
	"encoding/json"
	"fmt"

	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/logging/events"
	"github.com/atomicstack/navshell/internal/storage"
)

// MaxRecent bounds the recent collection.
const MaxRecent = 10

// Store owns the pinned and recent collections. It is not safe for
// concurrent use; all calls are expected from the UI event loop.
type Store struct {
	catalog *catalog.Catalog
	kv      storage.KV

	pinned []catalog.MenuItem
	recent []catalog.MenuItem

	initialized bool
	dirty       map[string]bool
}

// NewStore creates a store over cat that persists to kv. Call Init before use.
func NewStore(cat *catalog.Catalog, kv storage.KV) *Store {
	return &Store{
		catalog: cat,
		kv:      kv,
		dirty:   make(map[string]bool, 2),
	}
}

// Init loads both collections and runs the one-time backfill or seed pass.
// Subsequent calls are no-ops.
func (s *Store) Init() error {
	if s.initialized {
		return nil
	}
	pinned, err := s.load(storage.PinnedKey)
	if err != nil {
		return err
	}
	recent, err := s.load(storage.RecentKey)
	if err != nil {
		return err
	}
	s.recent = truncateRecent(recent)
	s.initialized = true

	if len(pinned) == 0 {
		s.pinned = s.seedPinned()
		return s.save(storage.PinnedKey)
	}

	s.pinned = dedupe(pinned)
	changed := len(s.pinned) != len(pinned)
	var backfilled []string
	for i, item := range s.pinned {
		if linked, ok := s.catalog.WithParent(item); ok {
			s.pinned[i] = linked
			backfilled = append(backfilled, linked.ID)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	events.Pin.Backfill(backfilled)
	return s.save(storage.PinnedKey)
}

// seedPinned returns every important catalog item with parents resolved.
func (s *Store) seedPinned() []catalog.MenuItem {
	var seeded []catalog.MenuItem
	var ids []string
	for _, item := range s.catalog.Items() {
		if !item.Important {
			continue
		}
		item, _ = s.catalog.WithParent(item)
		seeded = append(seeded, item)
		ids = append(ids, item.ID)
	}
	events.Pin.Seed(ids)
	return seeded
}

// Pinned returns the pinned items in display order.
func (s *Store) Pinned() []catalog.MenuItem {
	return append([]catalog.MenuItem(nil), s.pinned...)
}

// Recent returns the recent items, most recent first.
func (s *Store) Recent() []catalog.MenuItem {
	return append([]catalog.MenuItem(nil), s.recent...)
}

// IsPinned reports whether id is pinned. Works for category pin ids too.
func (s *Store) IsPinned(id string) bool {
	return indexOf(s.pinned, id) >= 0
}

// AddToPinned appends item to the pinned collection unless already present.
// Child items without an explicit parent are linked to their category parent.
func (s *Store) AddToPinned(item catalog.MenuItem) error {
	if s.IsPinned(item.ID) {
		return nil
	}
	item, _ = s.catalog.WithParent(item)
	s.pinned = append(s.pinned, item)
	events.Pin.Add(item.ID, item.ParentID)
	return s.save(storage.PinnedKey)
}

// AddCategoryToPinned pins a whole category as a synthetic parent entry.
// Unknown categories are ignored.
func (s *Store) AddCategoryToPinned(categoryID string) error {
	cat, ok := s.catalog.Category(categoryID)
	if !ok {
		return nil
	}
	id := catalog.CategoryPinID(categoryID)
	if s.IsPinned(id) {
		return nil
	}
	s.pinned = append(s.pinned, catalog.MenuItem{
		ID:       id,
		Name:     cat.Name,
		Icon:     s.catalog.CategoryIcon(categoryID),
		Category: categoryID,
		IsParent: true,
	})
	events.Pin.AddCategory(categoryID)
	return s.save(storage.PinnedKey)
}

// RemoveFromPinned drops id from the pinned collection if present.
func (s *Store) RemoveFromPinned(id string) error {
	idx := indexOf(s.pinned, id)
	if idx < 0 {
		return nil
	}
	s.pinned = append(s.pinned[:idx:idx], s.pinned[idx+1:]...)
	events.Pin.Remove(id)
	return s.save(storage.PinnedKey)
}

// TrackRecentItem moves item to the front of the recent collection.
func (s *Store) TrackRecentItem(item catalog.MenuItem) error {
	item.FromRecent = true
	next := make([]catalog.MenuItem, 0, len(s.recent)+1)
	next = append(next, item)
	for _, existing := range s.recent {
		if existing.ID == item.ID {
			continue
		}
		next = append(next, existing)
	}
	s.recent = truncateRecent(next)
	events.Recent.Track(item.ID, len(s.recent))
	return s.save(storage.RecentKey)
}

// ResetPinned replaces the pinned collection with the seeded default.
func (s *Store) ResetPinned() error {
	s.pinned = s.seedPinned()
	return s.save(storage.PinnedKey)
}

// ClearRecent empties the recent collection.
func (s *Store) ClearRecent() error {
	s.recent = nil
	events.Recent.Clear()
	return s.save(storage.RecentKey)
}

// Flush retries writes that previously failed.
func (s *Store) Flush() error {
	for _, key := range []string{storage.PinnedKey, storage.RecentKey} {
		if !s.dirty[key] {
			continue
		}
		if err := s.save(key); err != nil {
			return err
		}
	}
	return nil
}

// GetCategoryIcon returns the icon of a category, or the default icon.
func (s *Store) GetCategoryIcon(categoryID string) string {
	return s.catalog.CategoryIcon(categoryID)
}

// GetParentIcon returns the icon an item is rendered with.
func (s *Store) GetParentIcon(item catalog.MenuItem) string {
	return s.catalog.ParentIcon(item)
}

// Catalog exposes the catalog the store was built with.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Store) load(key string) ([]catalog.MenuItem, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		events.Storage.Error(key, err)
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		events.Storage.Load(key, 0)
		return nil, nil
	}
	var items []catalog.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		events.Storage.Decode(key, err)
		return nil, nil
	}
	events.Storage.Load(key, len(items))
	return items, nil
}

func (s *Store) save(key string) error {
	items := s.pinned
	if key == storage.RecentKey {
		items = s.recent
	}
	if items == nil {
		items = []catalog.MenuItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, data); err != nil {
		s.dirty[key] = true
		events.Storage.Error(key, err)
		return fmt.Errorf("save %s: %w", key, err)
	}
	delete(s.dirty, key)
	events.Storage.Save(key, len(items))
	return nil
}

func indexOf(items []catalog.MenuItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func dedupe(items []catalog.MenuItem) []catalog.MenuItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]catalog.MenuItem, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

func truncateRecent(items []catalog.MenuItem) []catalog.MenuItem {
	items = dedupe(items)
	if len(items) > MaxRecent {
		items = items[:MaxRecent]
	}
	return items
}
