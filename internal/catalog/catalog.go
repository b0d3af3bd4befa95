package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultIcon is used whenever no category or item icon can be resolved.
const DefaultIcon = "folder-open"

// CategoryPinPrefix prefixes the ids of synthesized category pins.
const CategoryPinPrefix = "category-"

// ErrDuplicateID reports a catalog that reuses an item or category id.
var ErrDuplicateID = errors.New("duplicate catalog id")

// Category groups menu items for browsing and filtering.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Order int    `json:"order" yaml:"order"`
}

// MenuItem is a navigable catalog entry. The same shape is persisted for
// pinned and recent items.
type MenuItem struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Icon       string `json:"icon" yaml:"icon"`
	Category   string `json:"category" yaml:"category"`
	Important  bool   `json:"important,omitempty" yaml:"important,omitempty"`
	IsParent   bool   `json:"isParent,omitempty" yaml:"isParent,omitempty"`
	ParentID   string `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	FromRecent bool   `json:"fromRecent,omitempty" yaml:"fromRecent,omitempty"`
}

// Catalog is the immutable set of categories and items. All lookups are
// index based and never fail; absent entries are reported through the ok
// result or a fallback value.
type Catalog struct {
	categories []Category
	items      []MenuItem

	itemByID         map[string]int
	categoryByID     map[string]int
	parentByCategory map[string]string
}

// New builds a catalog and its lookup indexes.
func New(categories []Category, items []MenuItem) (*Catalog, error) {
	c := &Catalog{
		categories:       append([]Category(nil), categories...),
		items:            append([]MenuItem(nil), items...),
		itemByID:         make(map[string]int, len(items)),
		categoryByID:     make(map[string]int, len(categories)),
		parentByCategory: make(map[string]string, len(categories)),
	}
	sort.SliceStable(c.categories, func(i, j int) bool {
		return c.categories[i].Order < c.categories[j].Order
	})
	for i, cat := range c.categories {
		if _, dup := c.categoryByID[cat.ID]; dup {
			return nil, fmt.Errorf("category %q: %w", cat.ID, ErrDuplicateID)
		}
		c.categoryByID[cat.ID] = i
	}
	for i, item := range c.items {
		if _, dup := c.itemByID[item.ID]; dup {
			return nil, fmt.Errorf("menu item %q: %w", item.ID, ErrDuplicateID)
		}
		c.itemByID[item.ID] = i
		if item.IsParent {
			if _, seen := c.parentByCategory[item.Category]; !seen {
				c.parentByCategory[item.Category] = item.ID
			}
		}
	}
	return c, nil
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Items returns every menu item in catalog order.
func (c *Catalog) Items() []MenuItem {
	return append([]MenuItem(nil), c.items...)
}

// ItemsInCategory returns the items that belong to categoryID, parent first.
func (c *Catalog) ItemsInCategory(categoryID string) []MenuItem {
	var parent []MenuItem
	var children []MenuItem
	for _, item := range c.items {
		if item.Category != categoryID {
			continue
		}
		if item.IsParent {
			parent = append(parent, item)
			continue
		}
		children = append(children, item)
	}
	return append(parent, children...)
}

// Item looks up a menu item by id.
func (c *Catalog) Item(id string) (MenuItem, bool) {
	idx, ok := c.itemByID[id]
	if !ok {
		return MenuItem{}, false
	}
	return c.items[idx], true
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	idx, ok := c.categoryByID[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[idx], true
}

// CategoryName returns the display name of a category, or the id itself when
// the category is unknown.
func (c *Catalog) CategoryName(id string) string {
	if cat, ok := c.Category(id); ok && cat.Name != "" {
		return cat.Name
	}
	return id
}

// CategoryPinID returns the synthetic pinned id for a whole category.
func CategoryPinID(categoryID string) string {
	return CategoryPinPrefix + categoryID
}
