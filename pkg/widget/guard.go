package widget

import (
	"github.com/go-lattice/lattice/pkg/dom"
	"github.com/go-lattice/lattice/pkg/errors"
)

// treeGuard enforces that widget elements only move through widget
// operations. It is installed on a document the first time a widget is
// created for it; from then on every guarded node mutation is vetted here.
// The widget layer itself bypasses the guard through dom.Unguarded after it
// has done the registry and counter bookkeeping.
type treeGuard struct{}

func ensureGuard(doc *dom.Document) {
	if doc.InstalledMutationGuard() == nil {
		doc.SetMutationGuard(treeGuard{})
	}
}

func (treeGuard) BeforeAppendChild(parent, child *dom.Node) {
	rejectWidgetInsertion("dom.AppendChild", parent, child)
}

func (treeGuard) BeforeInsertBefore(parent, child, anchor *dom.Node) {
	rejectWidgetInsertion("dom.InsertBefore", parent, child)
}

func (treeGuard) BeforeRemoveChild(parent, child *dom.Node) {
	if counterValue(child) > 0 || Lookup(child) != nil {
		errors.FatalGuardViolation(&errors.GuardViolationError{
			Op:      "dom.RemoveChild",
			Message: "attempt to remove element containing widget via regular DOM operation",
			Node:    child.String(),
		})
	}
}

func (treeGuard) BeforeRemoveChildren(parent *dom.Node) {
	if counterValue(parent) > 0 {
		errors.FatalGuardViolation(&errors.GuardViolationError{
			Op:      "dom.RemoveChildren",
			Message: "attempt to remove element containing widget via regular DOM operation",
			Node:    parent.String(),
		})
	}
}

// Moving a widget element to a new parent is a widget operation; re-inserting
// it under the parent it already occupies (reordering) is allowed.
func rejectWidgetInsertion(op string, parent, child *dom.Node) {
	if w := Lookup(child); w != nil && child.Parent() != parent {
		errors.FatalGuardViolation(&errors.GuardViolationError{
			Op:      op,
			Message: "attempt to add widget via regular DOM operation",
			Node:    child.String(),
		})
	}
}
