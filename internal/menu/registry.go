package menu

import "strings"

// Node represents a menu entry definition within the registry tree.
type Node struct {
	ID       string
	Loader   Loader
	Action   Action
	Children map[string]*Node
	// Pinnable marks levels whose rows can be pinned with the pin key.
	Pinnable bool
}

// definition declares one node. Ids nest with ":" so "settings:reset-pins"
// is the reset-pins child of settings.
type definition struct {
	id       string
	loader   Loader
	action   Action
	pinnable bool
}

// definitions is the whole navigation tree. Levels that list catalog items
// accept the pin toggle; settings rows do not.
func definitions() []definition {
	return []definition{
		{id: PinnedID, loader: loadPinnedMenu, action: PinnedAction, pinnable: true},
		{id: RecentID, loader: loadRecentMenu, action: NavigateAction, pinnable: true},
		{id: BrowseID, loader: loadBrowseMenu, action: OpenCategoryAction, pinnable: true},
		{id: BrowseItems, action: NavigateAction, pinnable: true},
		{id: SearchID, loader: loadSearchMenu, action: NavigateAction, pinnable: true},
		{id: SettingsID, loader: loadSettingsMenu},
		{id: SettingsID + ":reset-pins", action: ResetPinsAction},
		{id: SettingsID + ":clear-recent", action: ClearRecentAction},
	}
}

// Registry resolves menu ids to their nodes.
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

// BuildRegistry links the declared nodes into a tree under "root".
func BuildRegistry() *Registry {
	r := &Registry{nodes: make(map[string]*Node)}
	r.root = r.ensure("root")
	r.root.Loader = func(Context) ([]Item, error) { return RootItems(), nil }

	for _, def := range definitions() {
		node := r.ensure(def.id)
		node.Loader = def.loader
		node.Action = def.action
		node.Pinnable = def.pinnable
		parentID, key := splitID(def.id)
		r.ensure(parentID).Children[key] = node
	}
	return r
}

func (r *Registry) ensure(id string) *Node {
	if node, ok := r.nodes[id]; ok {
		return node
	}
	node := &Node{ID: id, Children: make(map[string]*Node)}
	r.nodes[id] = node
	return node
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Child resolves the node stored under key beneath parentID.
func (r *Registry) Child(parentID, key string) (*Node, bool) {
	if parent, ok := r.nodes[parentID]; ok {
		node, ok := parent.Children[key]
		return node, ok
	}
	return nil, false
}

// splitID returns the parent id and the last segment of a node id.
func splitID(id string) (parent, key string) {
	idx := strings.LastIndex(id, ":")
	if idx < 0 {
		return "root", id
	}
	return id[:idx], id[idx+1:]
}
