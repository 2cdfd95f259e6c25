package layout

import "fmt"

// counter allocates sectionsIndex values for one normalization run. It is
// created fresh per Normalize call and discarded afterwards, so runs never
// interfere.
type counter struct {
	n int
}

func (c *counter) next() int {
	c.n++
	return c.n
}

// tabScope is the per-Sections tab state, shared by reference across the
// sibling traversal of one scope.
type tabScope struct {
	index  int
	active bool
}

// scope is the traversal state threaded through the walk. It is passed by
// value: entering a Sections or Section node changes the state for that
// node's children only, while siblings after it keep the enclosing scope.
type scope struct {
	base          string
	sectionsID    string
	sectionsIndex int
	tabParentID   string
	tabs          *tabScope
}

// Normalize assigns section and tab ids, indices, and the single active tab
// per Sections scope. Only Form/Show containers carry tab state; other trees
// are returned as a plain clone.
func Normalize(tree *Node) *Node {
	if tree == nil {
		return nil
	}
	root := tree.Clone()
	if root.Tag != TagForm && root.Tag != TagShow {
		return root
	}
	ctr := &counter{}
	sc := scope{base: fmt.Sprintf("uix-%s-%s", root.Name, root.Tag)}
	root.Config.ID = sc.base
	walkChildren(root, sc, ctr)
	return root
}

func walkChildren(n *Node, sc scope, ctr *counter) {
	for _, c := range n.Children {
		walkNode(c, sc, ctr)
	}
}

func walkNode(n *Node, sc scope, ctr *counter) {
	switch n.Tag {
	case TagSections:
		idx := ctr.next()
		id := fmt.Sprintf("%s-sections-%d", sc.base, idx)
		n.Config.ID = id
		n.Config.SectionsIndex = idx

		inner := sc
		inner.sectionsID = id
		inner.sectionsIndex = idx
		inner.tabs = &tabScope{}
		walkChildren(n, inner, ctr)

		// No section claimed the active flag: the first sibling wins.
		if !inner.tabs.active {
			for _, c := range n.Children {
				if c.Tag == TagSection {
					active := true
					c.Config.Active = &active
					break
				}
			}
		}
		n.Config.Tabs = collectTabs(n)

	case TagSection:
		ts := sc.tabs
		if ts == nil {
			// Section outside any Sections scope still gets a local index.
			ts = &tabScope{}
			sc.tabs = ts
		}
		ts.index++
		ti := ts.index

		active := n.Options.Bool("default") && !ts.active
		if active {
			ts.active = true
		}

		id := fmt.Sprintf("%s-tab-%d", sc.sectionsID, ti)
		if sc.sectionsID == "" {
			id = fmt.Sprintf("%s-tab-%d", sc.base, ti)
		}
		n.Config.ID = id
		n.Config.Active = &active
		n.Config.SectionsID = sc.sectionsID
		n.Config.SectionsIndex = sc.sectionsIndex
		n.Config.TabParentID = sc.tabParentID
		n.Config.TabIndex = ti

		inner := sc
		inner.tabParentID = id
		inner.tabs = &tabScope{}
		walkChildren(n, inner, ctr)

	default:
		if len(n.Children) > 0 {
			walkChildren(n, sc, ctr)
		}
	}
}

// collectTabs summarizes the direct Section children for the tab strip.
func collectTabs(sections *Node) []Tab {
	var tabs []Tab
	for _, c := range sections.Children {
		if c.Tag != TagSection {
			continue
		}
		label := c.Config.Title
		if label == "" {
			label = c.Name
		}
		active := c.Config.Active != nil && *c.Config.Active
		tabs = append(tabs, Tab{
			ID:     c.Config.ID,
			Label:  label,
			Index:  c.Config.TabIndex,
			Active: active,
		})
	}
	return tabs
}
