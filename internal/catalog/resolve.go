package catalog

// ParentFor returns the parent-flagged item of a category.
func (c *Catalog) ParentFor(categoryID string) (MenuItem, bool) {
	id, ok := c.parentByCategory[categoryID]
	if !ok {
		return MenuItem{}, false
	}
	return c.Item(id)
}

// ResolveParent follows an explicit parent reference. Items without a
// parentId, or whose parentId is not in the catalog, have no parent.
func (c *Catalog) ResolveParent(item MenuItem) (MenuItem, bool) {
	if item.ParentID == "" {
		return MenuItem{}, false
	}
	return c.Item(item.ParentID)
}

// WithParent fills in parentId from the category index for items that are
// neither parents nor already linked. The bool reports whether item changed.
func (c *Catalog) WithParent(item MenuItem) (MenuItem, bool) {
	if item.IsParent || item.ParentID != "" {
		return item, false
	}
	parent, ok := c.ParentFor(item.Category)
	if !ok || parent.ID == item.ID {
		return item, false
	}
	item.ParentID = parent.ID
	return item, true
}

// CategoryIcon returns the category's icon or DefaultIcon.
func (c *Catalog) CategoryIcon(categoryID string) string {
	if cat, ok := c.Category(categoryID); ok && cat.Icon != "" {
		return cat.Icon
	}
	return DefaultIcon
}

// ParentIcon resolves the icon an item is displayed with.
//
// Linked items try the parent icon, then the category icon, then their own
// icon. Unlinked items try their own icon, then the category icon. Both
// chains end at DefaultIcon.
func (c *Catalog) ParentIcon(item MenuItem) string {
	if item.ParentID != "" {
		if parent, ok := c.ResolveParent(item); ok && parent.Icon != "" {
			return parent.Icon
		}
		if cat, ok := c.Category(item.Category); ok && cat.Icon != "" {
			return cat.Icon
		}
		if item.Icon != "" {
			return item.Icon
		}
		return DefaultIcon
	}
	if item.Icon != "" {
		return item.Icon
	}
	return c.CategoryIcon(item.Category)
}
