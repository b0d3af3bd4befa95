package ui

import (
	"strings"

	"github.com/atomicstack/navshell/internal/menu"
)

const menuHeaderSeparator = "→"

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

// menuHeader renders the breadcrumb of the level stack, such as
// "browse→governance".
func (m *Model) menuHeader() string {
	return strings.Join(m.breadcrumb(), menuHeaderSeparator)
}

// breadcrumb names the levels below the root. The root itself is named only
// when it is the sole level or when the popup opened straight into a submenu.
func (m *Model) breadcrumb() []string {
	if len(m.stack) == 0 {
		return nil
	}
	root := strings.TrimSpace(m.rootTitle)
	if root == "" {
		root = defaultRootTitle
	}
	var crumbs []string
	if len(m.stack) == 1 || m.rootMenuID != "" {
		crumbs = append(crumbs, root)
	}
	for _, l := range m.stack[1:] {
		if crumb := crumbFor(l); crumb != "" {
			crumbs = append(crumbs, crumb)
		}
	}
	if len(crumbs) == 0 {
		return []string{root}
	}
	return crumbs
}

// crumbFor names a level by the last segment of its id. Category levels
// share one id, so they are named by their category title instead.
func crumbFor(l *level) string {
	if l == nil {
		return ""
	}
	name := strings.TrimSpace(l.ID)
	if l.ID == menu.BrowseItems || name == "" {
		name = strings.TrimSpace(l.Title)
	}
	if idx := strings.LastIndex(name, ":"); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.Join(strings.Fields(strings.ToLower(headerSegmentCleaner.Replace(name))), " ")
}
