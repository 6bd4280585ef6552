// Package dom implements the retained document tree the widget framework
// layers on: element nodes with shadow roots, focus and scroll state, and
// mutation primitives that consult an installable guard before changing the
// tree.
//
// The package is deliberately small. It models exactly the platform surface
// the widget layer needs - parent-or-shadow-host traversal, a deep active
// element query, adopted style sheets, and per-node expando slots used by
// the widget side tables.
package dom

// MutationGuard vets tree mutations before they are applied. The widget
// layer installs a guard that rejects raw mutation of widget-owned subtrees;
// a guard method signals rejection by panicking, so a permitted mutation
// simply returns.
type MutationGuard interface {
	BeforeAppendChild(parent, child *Node)
	BeforeInsertBefore(parent, child, anchor *Node)
	BeforeRemoveChild(parent, child *Node)
	BeforeRemoveChildren(parent *Node)
}

// Document owns a node tree. All nodes are created through the document and
// stay bound to it for their lifetime. The document tracks the focused node
// and holds the mutation guard shared by every node in the tree.
//
// A document is single-threaded by contract: it must only be mutated from
// the host application's UI goroutine.
type Document struct {
	body   *Node
	active *Node
	guard  MutationGuard
}

// NewDocument creates an empty document with a body element.
func NewDocument() *Document {
	doc := &Document{}
	doc.body = &Node{doc: doc, kind: ElementNode, tag: "body"}
	return doc
}

// Body returns the document's root container element.
func (d *Document) Body() *Node {
	return d.body
}

// CreateElement creates a detached element node.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{doc: d, kind: ElementNode, tag: tag}
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	return &Node{doc: d, kind: TextNode, text: text}
}

// DeepActiveElement returns the focused node, descending through shadow
// boundaries, or nil when nothing holds focus.
func (d *Document) DeepActiveElement() *Node {
	return d.active
}

// SetMutationGuard installs the guard consulted by the guarded mutation
// methods on every node of this document. Passing nil removes the guard.
func (d *Document) SetMutationGuard(guard MutationGuard) {
	d.guard = guard
}

// InstalledMutationGuard returns the currently installed guard, or nil.
func (d *Document) InstalledMutationGuard() MutationGuard {
	return d.guard
}
