// Package menu builds the navigation tree a user is allowed to see and
// derives breadcrumbs for the page being rendered.
//
// The tree is static configuration. Filtering is driven by the flat
// permission list fetched at login: a node stays visible iff the user holds
// its permission or one of its descendants stays visible.
package menu

import "strings"

type Item struct {
	Key        string `mapstructure:"key" json:"key"`
	Title      string `mapstructure:"title" json:"title"`
	URL        string `mapstructure:"url" json:"url,omitempty"`
	Icon       string `mapstructure:"icon" json:"icon,omitempty"`
	Permission string `mapstructure:"permission" json:"-"`
	Active     bool   `mapstructure:"-" json:"active,omitempty"`
	Children   []Item `mapstructure:"children" json:"children,omitempty"`
}

type Crumb struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// PermissionSet is a case-insensitive set of permission codes.
type PermissionSet map[string]struct{}

func NewPermissionSet(codes []string) PermissionSet {
	set := make(PermissionSet, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		set[strings.ToUpper(code)] = struct{}{}
	}
	return set
}

func (p PermissionSet) Has(code string) bool {
	_, ok := p[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// permitted reports whether the node is visible on its own merits. Nodes
// without a permission are public only when they are leaves with a target;
// an empty section never shows up just because it has no permission.
func (i Item) permitted(perms PermissionSet) bool {
	if i.Permission != "" {
		return perms.Has(i.Permission)
	}
	return len(i.Children) == 0 && i.URL != ""
}

// Filter returns a pruned copy of items holding only what perms allows. The
// input tree is never modified.
func Filter(items []Item, perms PermissionSet) []Item {
	var out []Item
	for _, item := range items {
		children := Filter(item.Children, perms)
		if len(children) == 0 && !item.permitted(perms) {
			continue
		}
		kept := item
		kept.Children = children
		out = append(out, kept)
	}
	return out
}

// Path returns the chain of items from the root down to the item that best
// matches url: an exact URL match wins, otherwise the item whose URL is the
// longest path-segment prefix of url. It returns nil when nothing matches.
func Path(items []Item, url string) []Item {
	url = normalize(url)
	var best []Item
	bestScore := -1
	var walk func(nodes []Item, trail []Item)
	walk = func(nodes []Item, trail []Item) {
		for _, node := range nodes {
			current := append(append([]Item(nil), trail...), node)
			if score := matchScore(node.URL, url); score > bestScore {
				best, bestScore = current, score
			}
			walk(node.Children, current)
		}
	}
	walk(items, nil)
	return best
}

// Breadcrumbs converts the Path for url into crumbs. Sections without a URL
// keep their title so the trail still reads naturally.
func Breadcrumbs(items []Item, url string) []Crumb {
	path := Path(items, url)
	crumbs := make([]Crumb, 0, len(path))
	for _, item := range path {
		crumbs = append(crumbs, Crumb{Title: item.Title, URL: item.URL})
	}
	return crumbs
}

// Active returns a copy of items with Active set on every node along the
// Path for url.
func Active(items []Item, url string) []Item {
	onPath := make(map[string]bool)
	for _, item := range Path(items, url) {
		onPath[item.Key] = true
	}
	return markActive(items, onPath)
}

func markActive(items []Item, onPath map[string]bool) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		item.Active = onPath[item.Key]
		item.Children = markActive(item.Children, onPath)
		out[i] = item
	}
	return out
}

// matchScore is -1 when itemURL does not cover url. Exact matches outrank
// every prefix match; longer prefixes outrank shorter ones.
func matchScore(itemURL, url string) int {
	if itemURL == "" {
		return -1
	}
	itemURL = normalize(itemURL)
	switch {
	case itemURL == url:
		return 1 << 16
	case itemURL == "/":
		return 0
	case strings.HasPrefix(url, itemURL+"/"):
		return len(itemURL)
	}
	return -1
}

func normalize(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if len(url) > 1 {
		url = strings.TrimRight(url, "/")
	}
	if url == "" {
		return "/"
	}
	return url
}
