package widget

import "github.com/go-lattice/lattice/pkg/dom"

// SetDefaultFocusedElement designates the element Focus targets first.
// Fatal unless the element is the widget's own element or a descendant.
// Pass nil to clear.
func (w *Widget) SetDefaultFocusedElement(element *dom.Node) {
	w.assert(element == nil || w.element.Contains(element),
		"widget.SetDefaultFocusedElement", "default focused element must belong to the widget")
	w.defaultFocusedElement = element
}

// SetDefaultFocusedChild designates the child widget Focus delegates to
// when no default element is set. Pass nil to clear.
func (w *Widget) SetDefaultFocusedChild(child *Widget) {
	w.assert(child == nil || child.parentWidget == w,
		"widget.SetDefaultFocusedChild", "default focused child must be a child widget")
	w.defaultFocusedChild = child
}

// Focus moves document focus into the widget: the default focused element
// if set, else the default focused child, else the first visible child,
// else the first focusable descendant node. No-op while not showing.
func (w *Widget) Focus() {
	if !w.IsShowing() {
		return
	}

	if element := w.defaultFocusedElement; element != nil {
		if !element.HasFocus() {
			element.Focus()
		}
		return
	}

	if w.defaultFocusedChild != nil && w.defaultFocusedChild.visible {
		w.defaultFocusedChild.Focus()
		return
	}
	for _, child := range w.children {
		if child.visible {
			child.Focus()
			return
		}
	}

	for cur := w.contentElement.TraverseNext(w.element); cur != nil; cur = cur.TraverseNext(w.element) {
		if cur.IsFocusable() {
			cur.Focus()
			return
		}
	}
}

// HasFocus reports whether the document's deep active element lies inside
// the widget's element subtree.
func (w *Widget) HasFocus() bool {
	active := w.doc.DeepActiveElement()
	return active != nil && w.element.Contains(active)
}

// FocusRestorer moves focus into a widget and can later hand it back to
// whatever held focus before, but only if the widget still holds it. A
// restorer restores at most once.
type FocusRestorer struct {
	widget   *Widget
	previous *dom.Node
}

// NewFocusRestorer captures the current deep active element and focuses
// widget.
func NewFocusRestorer(widget *Widget) *FocusRestorer {
	restorer := &FocusRestorer{
		widget:   widget,
		previous: widget.doc.DeepActiveElement(),
	}
	widget.Focus()
	return restorer
}

// Restore returns focus to the previously active element if the widget
// still owns focus, then clears the restorer.
func (r *FocusRestorer) Restore() {
	if r.widget == nil {
		return
	}
	if r.widget.HasFocus() && r.previous != nil {
		r.previous.Focus()
	}
	r.widget = nil
	r.previous = nil
}
