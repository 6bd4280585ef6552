package dom

import (
	"slices"
	"strings"

	"github.com/go-lattice/lattice/pkg/errors"
)

// NodeType identifies the kind of a node.
type NodeType int

const (
	// ElementNode is a regular element.
	ElementNode NodeType = iota + 1
	// TextNode holds character data and never has children.
	TextNode
	// ShadowRootNode is the root of an isolated style scope attached to a host
	// element.
	ShadowRootNode
)

// Node is a single node of a document tree.
type Node struct {
	doc      *Document
	kind     NodeType
	tag      string
	text     string
	parent   *Node
	children []*Node

	// host is set on shadow roots; shadow is set on shadow hosts.
	host           *Node
	shadow         *Node
	delegatesFocus bool

	attrs   map[string]string
	classes []string

	scrollLeft float64
	scrollTop  float64
	focusable  bool

	sheets []string

	// props are expando slots keyed by package-chosen strings. The widget
	// layer stores its registry and counter side tables here so entry
	// lifetime is tied to the node itself.
	props map[string]any
}

// Type returns the node kind.
func (n *Node) Type() NodeType {
	return n.kind
}

// TagName returns the element tag, or "" for non-element nodes.
func (n *Node) TagName() string {
	return n.tag
}

// Text returns the character data of a text node.
func (n *Node) Text() string {
	return n.text
}

// OwnerDocument returns the document this node belongs to.
func (n *Node) OwnerDocument() *Document {
	return n.doc
}

// Parent returns the parent node, or nil for detached nodes and shadow roots.
func (n *Node) Parent() *Node {
	return n.parent
}

// ParentOrShadowHost returns the parent node, crossing a shadow boundary to
// the host element when the node is a shadow root.
func (n *Node) ParentOrShadowHost() *Node {
	if n.parent != nil {
		return n.parent
	}
	return n.host
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// ShadowRoot returns the shadow root attached to this element, or nil.
func (n *Node) ShadowRoot() *Node {
	return n.shadow
}

// Host returns the host element of a shadow root, or nil.
func (n *Node) Host() *Node {
	return n.host
}

// IsAttached reports whether the node's parent-or-shadow-host chain reaches
// the document body.
func (n *Node) IsAttached() bool {
	for cur := n; cur != nil; cur = cur.ParentOrShadowHost() {
		if cur == n.doc.body {
			return true
		}
	}
	return false
}

// Contains reports whether other is this node or a descendant of it,
// crossing shadow boundaries.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.ParentOrShadowHost() {
		if cur == n {
			return true
		}
	}
	return false
}

// AttachShadow creates and returns a shadow root on this element. When
// delegatesFocus is set, focusing the host forwards focus to the first
// focusable descendant inside the shadow tree.
func (n *Node) AttachShadow(delegatesFocus bool) *Node {
	errors.Assert(n.kind == ElementNode, "dom.AttachShadow", "shadow roots attach to elements only")
	errors.Assert(n.shadow == nil, "dom.AttachShadow", "element already hosts a shadow root")
	shadow := &Node{doc: n.doc, kind: ShadowRootNode, host: n}
	n.shadow = shadow
	n.delegatesFocus = delegatesFocus
	return shadow
}

// String describes the node for diagnostics: tag plus class list for
// elements, "#text" for text nodes, "#shadow-root" for shadow roots.
func (n *Node) String() string {
	switch n.kind {
	case TextNode:
		return "#text"
	case ShadowRootNode:
		return "#shadow-root"
	}
	if len(n.classes) == 0 {
		return n.tag
	}
	return n.tag + "." + strings.Join(n.classes, ".")
}

// SetAttribute sets an attribute on the node.
func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// Attribute returns an attribute value and whether it is present.
func (n *Node) Attribute(name string) (string, bool) {
	value, ok := n.attrs[name]
	return value, ok
}

// AddClass adds a class to the node's class list if not already present.
func (n *Node) AddClass(class string) {
	if !slices.Contains(n.classes, class) {
		n.classes = append(n.classes, class)
	}
}

// RemoveClass removes a class from the node's class list.
func (n *Node) RemoveClass(class string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
}

// HasClass reports whether the node carries the class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// ClassName returns the space-joined class list.
func (n *Node) ClassName() string {
	return strings.Join(n.classes, " ")
}

// ScrollLeft returns the horizontal scroll offset.
func (n *Node) ScrollLeft() float64 {
	return n.scrollLeft
}

// ScrollTop returns the vertical scroll offset.
func (n *Node) ScrollTop() float64 {
	return n.scrollTop
}

// SetScrollLeft sets the horizontal scroll offset.
func (n *Node) SetScrollLeft(offset float64) {
	n.scrollLeft = offset
}

// SetScrollTop sets the vertical scroll offset.
func (n *Node) SetScrollTop(offset float64) {
	n.scrollTop = offset
}

// SetFocusable marks the node as able to receive focus.
func (n *Node) SetFocusable(focusable bool) {
	n.focusable = focusable
}

// IsFocusable reports whether the node can receive focus.
func (n *Node) IsFocusable() bool {
	return n.focusable
}

// Focus moves document focus to this node. Focusing a non-focusable or
// detached node is a no-op, matching platform behavior. A shadow host with
// delegatesFocus forwards focus to its first focusable shadow descendant.
func (n *Node) Focus() {
	if n.shadow != nil && n.delegatesFocus {
		if target := firstFocusableDescendant(n.shadow); target != nil {
			target.Focus()
		}
		return
	}
	if !n.focusable || !n.IsAttached() {
		return
	}
	n.doc.active = n
}

// Blur removes focus from this node if it holds it.
func (n *Node) Blur() {
	if n.doc.active == n {
		n.doc.active = nil
	}
}

// HasFocus reports whether this node is the document's active element.
func (n *Node) HasFocus() bool {
	return n.doc.active == n
}

// firstFocusableDescendant finds the first focusable node in document order
// at or below root, descending into shadow trees.
func firstFocusableDescendant(root *Node) *Node {
	for cur := root.TraverseNext(root); cur != nil; cur = cur.TraverseNext(root) {
		if cur.focusable {
			return cur
		}
	}
	return nil
}

// AdoptStyleSheet appends a style sheet to this node's adopted list.
// Style sheets adopted on a shadow root scope to that shadow tree.
func (n *Node) AdoptStyleSheet(text string) {
	n.sheets = append(n.sheets, text)
}

// AdoptedStyleSheets returns the adopted style sheet list.
func (n *Node) AdoptedStyleSheets() []string {
	return slices.Clone(n.sheets)
}

// Prop returns an expando slot value and whether it is set.
func (n *Node) Prop(key string) (any, bool) {
	value, ok := n.props[key]
	return value, ok
}

// SetProp stores a value in an expando slot.
func (n *Node) SetProp(key string, value any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[key] = value
}

// DeleteProp clears an expando slot.
func (n *Node) DeleteProp(key string) {
	delete(n.props, key)
}

// TraverseNext returns the next node in depth-first composed order, entering
// shadow roots before light children, staying within stayWithin. Returns nil
// when the walk is exhausted.
func (n *Node) TraverseNext(stayWithin *Node) *Node {
	if n.shadow != nil {
		return n.shadow
	}
	if len(n.children) > 0 {
		return n.children[0]
	}
	for cur := n; cur != nil && cur != stayWithin; {
		if cur.kind == ShadowRootNode {
			// Shadow subtree exhausted: continue with the host's light children.
			if len(cur.host.children) > 0 {
				return cur.host.children[0]
			}
			cur = cur.host
			continue
		}
		if sibling := cur.nextSibling(); sibling != nil {
			return sibling
		}
		cur = cur.ParentOrShadowHost()
	}
	return nil
}

// nextSibling returns the node following this one in its parent's child
// list, or nil.
func (n *Node) nextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	index := slices.Index(n.parent.children, n)
	if index < 0 || index+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[index+1]
}

// AppendChild adds child as the last child of this node, consulting the
// document's mutation guard first. A child already parented elsewhere is
// moved.
func (n *Node) AppendChild(child *Node) {
	if n.doc.guard != nil {
		n.doc.guard.BeforeAppendChild(n, child)
	}
	n.appendChild(child)
}

// InsertBefore inserts child before anchor, consulting the document's
// mutation guard first. A nil anchor appends.
func (n *Node) InsertBefore(child, anchor *Node) {
	if n.doc.guard != nil {
		n.doc.guard.BeforeInsertBefore(n, child, anchor)
	}
	n.insertBefore(child, anchor)
}

// RemoveChild removes child from this node, consulting the document's
// mutation guard first.
func (n *Node) RemoveChild(child *Node) {
	if n.doc.guard != nil {
		n.doc.guard.BeforeRemoveChild(n, child)
	}
	n.removeChild(child)
}

// RemoveChildren removes every child of this node, consulting the document's
// mutation guard first.
func (n *Node) RemoveChildren() {
	if n.doc.guard != nil {
		n.doc.guard.BeforeRemoveChildren(n)
	}
	n.removeChildren()
}

// Unguarded is a view of a node's mutation primitives that skips the
// document's mutation guard. The widget layer uses it after performing its
// own bookkeeping; application code should call the Node methods instead.
type Unguarded struct {
	n *Node
}

// Unguarded returns the primitive mutation operations for this node.
func (n *Node) Unguarded() Unguarded {
	return Unguarded{n: n}
}

// AppendChild appends without consulting the mutation guard.
func (u Unguarded) AppendChild(child *Node) {
	u.n.appendChild(child)
}

// InsertBefore inserts without consulting the mutation guard.
func (u Unguarded) InsertBefore(child, anchor *Node) {
	u.n.insertBefore(child, anchor)
}

// RemoveChild removes without consulting the mutation guard.
func (u Unguarded) RemoveChild(child *Node) {
	u.n.removeChild(child)
}

// RemoveChildren removes all children without consulting the mutation guard.
func (u Unguarded) RemoveChildren() {
	u.n.removeChildren()
}

func (n *Node) appendChild(child *Node) {
	n.insertBefore(child, nil)
}

func (n *Node) insertBefore(child, anchor *Node) {
	errors.Assert(child != nil, "dom.InsertBefore", "attempt to insert nil node")
	errors.Assert(child.doc == n.doc, "dom.InsertBefore", "attempt to insert node from another document")
	errors.Assert(n.kind != TextNode, "dom.InsertBefore", "text nodes cannot have children")
	errors.Assert(!child.Contains(n), "dom.InsertBefore", "attempt to insert node into its own subtree")
	errors.Assert(child != n.doc.body, "dom.InsertBefore", "attempt to reparent the document body")

	if child.parent != nil {
		child.parent.removeFromChildList(child)
	}

	if anchor == nil {
		n.children = append(n.children, child)
	} else {
		index := slices.Index(n.children, anchor)
		errors.Assert(index >= 0, "dom.InsertBefore", "anchor is not a child of the target node")
		n.children = slices.Insert(n.children, index, child)
	}
	child.parent = n
}

func (n *Node) removeChild(child *Node) {
	errors.Assert(child != nil, "dom.RemoveChild", "attempt to remove nil node")
	errors.Assert(child.parent == n, "dom.RemoveChild", "node to remove is not a child of the target node")
	n.removeFromChildList(child)
	child.parent = nil
	n.doc.clearFocusWithin(child)
}

func (n *Node) removeChildren() {
	detached := n.children
	n.children = nil
	for _, child := range detached {
		child.parent = nil
		n.doc.clearFocusWithin(child)
	}
}

func (n *Node) removeFromChildList(child *Node) {
	index := slices.Index(n.children, child)
	errors.Assert(index >= 0, "dom.RemoveChild", "child list out of sync")
	n.children = slices.Delete(n.children, index, index+1)
}

// clearFocusWithin drops document focus when the focused node has just left
// the tree with the given subtree.
func (d *Document) clearFocusWithin(subtree *Node) {
	if d.active != nil && subtree.Contains(d.active) {
		d.active = nil
	}
}
