// Package widget implements a hierarchical widget tree layered on top of a
// dom.Document.
//
// Each widget owns a root element and tracks parent/child widget
// relationships independently of raw node nesting. The package keeps the
// logical widget tree, the physical document tree, and a set of
// cross-cutting invariants (visibility, notification re-entrancy, focus
// delegation, layout constraint propagation) synchronized at all times. A
// mutation guard installed on the document rejects raw mutations that would
// let the two trees silently diverge; all violations are fatal structural
// panics, never recoverable errors, because they indicate a programming bug
// in caller code.
//
// The package is single-threaded by contract, like the document it manages.
package widget
