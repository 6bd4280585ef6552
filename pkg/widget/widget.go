package widget

import (
	"slices"

	"github.com/google/uuid"

	"github.com/go-lattice/lattice/pkg/dom"
	"github.com/go-lattice/lattice/pkg/errors"
	"github.com/go-lattice/lattice/pkg/geometry"
)

const hiddenClassName = "hidden"

// baseStyles are adopted by every isolated widget's shadow root so the
// hidden class and box sizing behave identically inside and outside
// shadow trees.
const baseStyles = `.widget { position: relative; flex: auto; display: flex; } .hidden { display: none !important; }`

// Delegate is the set of lifecycle hooks a concrete widget may override.
// Widget provides no-op defaults for all of them; embedders call SetSelf so
// overridden hooks dispatch to the outermost type.
type Delegate interface {
	// WasShown fires after the widget became showing and its element is in
	// place under its parent element.
	WasShown()
	// WillHide fires while the widget is still showing, after its visible
	// children were notified.
	WillHide()
	// OnResize fires when the widget's size may have changed.
	OnResize()
	// OnLayout fires at the start of a layout pass, before children resize.
	OnLayout()
	// OnDetach fires after the widget's element left the document tree.
	OnDetach()
	// ChildWasDetached fires on a parent when one of its child widgets
	// detaches.
	ChildWasDetached(child *Widget)
	// CalculateConstraints computes the widget's intrinsic size constraints.
	// The result is memoized until InvalidateConstraints.
	CalculateConstraints() geometry.Constraints
	// ElementsToRestoreScrollPositionsFor lists the containers whose scroll
	// offsets are saved on willHide and restored on wasShown.
	ElementsToRestoreScrollPositionsFor() []*dom.Node
}

// Widget is a node of the logical widget tree. Its element anchors it in
// the document; its contentElement is where callers place content (the two
// differ only for isolated widgets, where contentElement lives inside a
// shadow root).
type Widget struct {
	id  uuid.UUID
	doc *dom.Document

	element        *dom.Node
	contentElement *dom.Node
	shadowRoot     *dom.Node

	self Delegate

	parentWidget *Widget
	children     []*Widget

	visible           bool
	showing           bool
	isRoot            bool
	externallyManaged bool
	hideOnDetach      bool

	defaultFocusedChild   *Widget
	defaultFocusedElement *dom.Node

	constraints       *geometry.Constraints
	cachedConstraints *geometry.Constraints

	invalidationsSuspended int
	invalidationsRequested bool
}

// New creates a widget whose content lives directly inside its root
// element.
func New(doc *dom.Document) *Widget {
	return newWidget(doc, false, false)
}

// NewIsolated creates a widget whose content lives inside a shadow root,
// isolating its styles from the surrounding document. With delegatesFocus,
// focusing the widget's element forwards focus to its first focusable
// descendant.
func NewIsolated(doc *dom.Document, delegatesFocus bool) *Widget {
	return newWidget(doc, true, delegatesFocus)
}

func newWidget(doc *dom.Document, isolated, delegatesFocus bool) *Widget {
	ensureGuard(doc)
	w := &Widget{
		id:      uuid.New(),
		doc:     doc,
		element: doc.CreateElement("div"),
	}
	w.self = w
	w.element.AddClass("widget")
	if isolated {
		w.shadowRoot = w.element.AttachShadow(delegatesFocus)
		w.shadowRoot.AdoptStyleSheet(baseStyles)
		w.contentElement = doc.CreateElement("div")
		w.contentElement.AddClass("widget")
		w.shadowRoot.Unguarded().AppendChild(w.contentElement)
	} else {
		w.contentElement = w.element
	}
	register(w.element, w)
	return w
}

// SetSelf registers the outermost concrete type so overridden Delegate
// hooks dispatch dynamically. Must be called from the embedder's
// constructor before the widget is shown.
func (w *Widget) SetSelf(self Delegate) {
	w.self = self
}

// ID returns the widget's unique identity, stable for its lifetime.
func (w *Widget) ID() string { return w.id.String() }

// Element returns the widget's root element.
func (w *Widget) Element() *dom.Node { return w.element }

// ContentElement returns the element callers place content into.
func (w *Widget) ContentElement() *dom.Node { return w.contentElement }

// Parent returns the parent widget, nil for roots and detached widgets.
func (w *Widget) Parent() *Widget { return w.parentWidget }

// Children returns a copy of the child widget list.
func (w *Widget) Children() []*Widget { return slices.Clone(w.children) }

// IsVisible reports whether the widget currently requests presentation.
func (w *Widget) IsVisible() bool { return w.visible }

// IsShowing reports whether the widget is actually presented, i.e. visible
// with an unbroken chain of showing ancestors.
func (w *Widget) IsShowing() bool { return w.showing }

// IsRoot reports whether the widget was marked as a tree root.
func (w *Widget) IsRoot() bool { return w.isRoot }

// MarkAsRoot designates the widget as the root of a widget tree. Roots
// attach directly to widget-free container elements. Fatal if the widget's
// element is already in a tree.
func (w *Widget) MarkAsRoot() {
	w.assert(w.element.Parent() == nil, "widget.MarkAsRoot", "attempt to mark attached widget as root")
	w.isRoot = true
}

// MarkAsExternallyManaged excludes the widget's element from ancestor
// counter bookkeeping; external code owns its placement. Must be called
// before the widget ever attaches. Fatal afterwards.
func (w *Widget) MarkAsExternallyManaged() {
	w.assert(w.parentWidget == nil && w.element.Parent() == nil,
		"widget.MarkAsExternallyManaged", "attempt to externally manage attached widget")
	w.externallyManaged = true
}

// SetHideOnDetach makes Detach hide the widget instead of removing its
// element from the document, preserving the element subtree (iframe-like
// content that must not reload).
func (w *Widget) SetHideOnDetach() {
	w.hideOnDetach = true
}

// RegisterRequiredCSS adopts a style sheet scoped to this widget: onto the
// shadow root for isolated widgets, onto the root element otherwise.
func (w *Widget) RegisterRequiredCSS(css string) {
	if w.shadowRoot != nil {
		w.shadowRoot.AdoptStyleSheet(css)
		return
	}
	w.element.AdoptStyleSheet(css)
}

// Show makes the widget visible under parentElement, optionally before an
// anchor sibling. For non-root widgets the logical parent is resolved by
// walking up from parentElement to the nearest registered widget.
func (w *Widget) Show(parentElement *dom.Node, insertBefore ...*dom.Node) {
	w.assert(parentElement != nil, "widget.Show", "attempt to attach widget with no parent element")
	var anchor *dom.Node
	if len(insertBefore) > 0 {
		anchor = insertBefore[0]
	}
	if !w.isRoot {
		ancestor := nearestWidgetAncestor(parentElement)
		w.assert(ancestor != nil, "widget.Show", "attempt to attach widget to orphan node")
		w.attach(ancestor)
	}
	w.showWidgetInternal(parentElement, anchor)
}

// ShowWidget re-shows a widget previously hidden with HideWidget, under the
// parent element it already occupies.
func (w *Widget) ShowWidget() {
	if w.visible {
		return
	}
	w.assert(w.element.Parent() != nil, "widget.ShowWidget",
		"attempt to show widget that is not hidden with HideWidget")
	w.showWidgetInternal(w.element.Parent(), nil)
}

// HideWidget hides the widget in place: the element stays in the document
// with the hidden class, widget relationships stay intact.
func (w *Widget) HideWidget() {
	if !w.visible {
		return
	}
	w.hideWidgetInternal(false)
}

// Detach removes the widget from its parent. The element leaves the
// document unless hide-on-detach is set; overrideHideOnDetach forces
// removal regardless.
func (w *Widget) Detach(overrideHideOnDetach bool) {
	if w.parentWidget == nil && !w.isRoot {
		return
	}

	removeFromDOM := overrideHideOnDetach || !w.shouldHideOnDetach()
	if w.visible {
		w.hideWidgetInternal(removeFromDOM)
	} else if removeFromDOM {
		if parentElement := w.element.Parent(); parentElement != nil {
			decrementWidgetCounter(parentElement, w.element)
			parentElement.Unguarded().RemoveChild(w.element)
			w.self.OnDetach()
		}
	}

	if w.parentWidget != nil {
		parent := w.parentWidget
		index := slices.Index(parent.children, w)
		w.assert(index >= 0, "widget.Detach", "attempt to remove non-child widget")
		parent.children = slices.Delete(parent.children, index, index+1)
		if parent.defaultFocusedChild == w {
			parent.defaultFocusedChild = nil
		}
		parent.self.ChildWasDetached(w)
		w.parentWidget = nil
	} else {
		w.assert(w.isRoot, "widget.Detach", "attempt to remove root widget from the document")
	}
}

// DetachChildWidgets detaches every child widget.
func (w *Widget) DetachChildWidgets() {
	for _, child := range w.Children() {
		child.Detach(false)
	}
}

// attach links w under parent in the logical tree, detaching from a
// previous parent first.
func (w *Widget) attach(parent *Widget) {
	if parent == w.parentWidget {
		return
	}
	if w.parentWidget != nil {
		w.Detach(false)
	}
	w.parentWidget = parent
	parent.children = append(parent.children, w)
	w.isRoot = false
}

func (w *Widget) showWidgetInternal(parentElement, insertBefore *dom.Node) {
	ancestor := nearestWidgetAncestor(parentElement)
	if w.isRoot {
		w.assert(ancestor == nil, "widget.Show", "attempt to show root widget under another widget")
	} else {
		w.assert(ancestor != nil && ancestor == w.parentWidget,
			"widget.Show", "attempt to show under node belonging to alien widget")
	}

	wasVisible := w.visible
	if wasVisible && w.element.Parent() == parentElement {
		return
	}

	w.visible = true

	if !wasVisible && w.parentIsShowing() {
		w.processWillShow()
	}

	w.element.RemoveClass(hiddenClassName)

	if w.element.Parent() != parentElement {
		if oldParent := w.element.Parent(); oldParent != nil {
			decrementWidgetCounter(oldParent, w.element)
		}
		incrementWidgetCounter(parentElement, w.element)
		if insertBefore != nil {
			parentElement.Unguarded().InsertBefore(w.element, insertBefore)
		} else {
			parentElement.Unguarded().AppendChild(w.element)
		}
	}

	if !wasVisible && w.parentIsShowing() {
		w.processWasShown()
	}

	if w.parentWidget != nil && w.hasNonZeroConstraints() {
		w.parentWidget.InvalidateConstraints()
	} else {
		w.processOnResize()
	}
}

func (w *Widget) hideWidgetInternal(removeFromDOM bool) {
	w.visible = false
	parentElement := w.element.Parent()

	if w.parentIsShowing() {
		w.processWillHide()
	}

	if removeFromDOM {
		if parentElement != nil {
			decrementWidgetCounter(parentElement, w.element)
			parentElement.Unguarded().RemoveChild(w.element)
		}
		w.self.OnDetach()
	} else {
		w.element.AddClass(hiddenClassName)
	}

	if w.parentIsShowing() {
		w.processWasHidden()
	}
	if w.parentWidget != nil && w.hasNonZeroConstraints() {
		w.parentWidget.InvalidateConstraints()
	}
}

// shouldHideOnDetach reports whether detaching must preserve the element in
// the document. True when this widget, or any descendant still parented in
// the document, asked for hide-on-detach.
func (w *Widget) shouldHideOnDetach() bool {
	if w.element.Parent() == nil {
		return false
	}
	if w.hideOnDetach {
		return true
	}
	for _, child := range w.children {
		if child.shouldHideOnDetach() {
			return true
		}
	}
	return false
}

// parentIsShowing gates notification passes: roots behave as if their
// container is always showing.
func (w *Widget) parentIsShowing() bool {
	if w.isRoot {
		return true
	}
	return w.parentWidget != nil && w.parentWidget.IsShowing()
}

func (w *Widget) assert(condition bool, op, message string) {
	if condition {
		return
	}
	errors.FatalStructural(&errors.StructuralError{
		Op:      op,
		Message: message,
		Widget:  w.id.String(),
	})
}

// Default Delegate implementations. Concrete widgets override the hooks
// they care about and route dispatch with SetSelf.

func (w *Widget) WasShown() {}

func (w *Widget) WillHide() {}

func (w *Widget) OnResize() {}

func (w *Widget) OnLayout() {}

func (w *Widget) OnDetach() {}

func (w *Widget) ChildWasDetached(child *Widget) {}

func (w *Widget) CalculateConstraints() geometry.Constraints {
	return geometry.Constraints{}
}

func (w *Widget) ElementsToRestoreScrollPositionsFor() []*dom.Node {
	return []*dom.Node{w.element}
}
