package widget

import (
	"github.com/go-lattice/lattice/pkg/dom"
	"github.com/go-lattice/lattice/pkg/errors"
)

// The registry and counter live in expando slots on the nodes themselves,
// so an association dies with its node instead of pinning it in a global
// map.
const (
	widgetProp  = "lattice.widget"
	counterProp = "lattice.widgetCounter"
)

// register creates the permanent association from a widget's root element
// to the widget. An element hosts at most one widget for its lifetime.
func register(element *dom.Node, w *Widget) {
	_, taken := element.Prop(widgetProp)
	errors.Assert(!taken, "widget.register", "element already hosts a widget")
	element.SetProp(widgetProp, w)
}

// Lookup returns the widget whose root element is node, or nil.
func Lookup(node *dom.Node) *Widget {
	if node == nil {
		return nil
	}
	if value, ok := node.Prop(widgetProp); ok {
		return value.(*Widget)
	}
	return nil
}

// nearestWidgetAncestor resolves the closest widget at or above node,
// walking parent-or-shadow-host links. Returns nil when the walk reaches
// the top without finding a registered widget.
func nearestWidgetAncestor(node *dom.Node) *Widget {
	for cur := node; cur != nil; cur = cur.ParentOrShadowHost() {
		if w := Lookup(cur); w != nil {
			return w
		}
	}
	return nil
}

// counterValue returns the number of widget elements strictly below node,
// excluding externally managed ones.
func counterValue(node *dom.Node) int {
	if value, ok := node.Prop(counterProp); ok {
		return value.(int)
	}
	return 0
}

func setCounterValue(node *dom.Node, count int) {
	if count == 0 {
		node.DeleteProp(counterProp)
		return
	}
	node.SetProp(counterProp, count)
}

// subtreeWidgetWeight is the amount an ancestor chain gains when element is
// attached below it: the widgets already counted inside element, plus one
// for element itself when it is a widget element that is not externally
// managed. Counters are maintained incrementally with this weight in
// O(depth) instead of being recomputed by full-tree walks.
func subtreeWidgetWeight(element *dom.Node) int {
	weight := counterValue(element)
	if w := Lookup(element); w != nil && !w.externallyManaged {
		weight++
	}
	return weight
}

// incrementWidgetCounter adds element's subtree weight to every node from
// parentElement up to the top of the document.
func incrementWidgetCounter(parentElement, element *dom.Node) {
	weight := subtreeWidgetWeight(element)
	if weight == 0 {
		return
	}
	for cur := parentElement; cur != nil; cur = cur.ParentOrShadowHost() {
		setCounterValue(cur, counterValue(cur)+weight)
	}
}

// decrementWidgetCounter subtracts element's subtree weight from every node
// from parentElement up to the top of the document.
func decrementWidgetCounter(parentElement, element *dom.Node) {
	weight := subtreeWidgetWeight(element)
	if weight == 0 {
		return
	}
	for cur := parentElement; cur != nil; cur = cur.ParentOrShadowHost() {
		next := counterValue(cur) - weight
		errors.Assert(next >= 0, "widget.decrementWidgetCounter", "widget counter underflow")
		setCounterValue(cur, next)
	}
}
