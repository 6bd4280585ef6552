package widget

import "github.com/go-lattice/lattice/pkg/geometry"

// Constraints returns the widget's effective size constraints: an explicit
// override when one was set, otherwise the memoized result of
// CalculateConstraints.
func (w *Widget) Constraints() geometry.Constraints {
	if w.constraints != nil {
		return *w.constraints
	}
	if w.cachedConstraints == nil {
		computed := w.self.CalculateConstraints()
		w.cachedConstraints = &computed
	}
	return *w.cachedConstraints
}

func (w *Widget) hasNonZeroConstraints() bool {
	return !w.Constraints().IsZero()
}

// SetMinimumSize overrides the widget's constraints with a minimum size.
func (w *Widget) SetMinimumSize(width, height float64) {
	w.setConstraints(geometry.NewConstraints(
		geometry.Size{Width: width, Height: height}, geometry.Size{}))
}

// SetMinimumAndPreferredSizes overrides the widget's constraints with both
// a minimum and a preferred size.
func (w *Widget) SetMinimumAndPreferredSizes(width, height, preferredWidth, preferredHeight float64) {
	w.setConstraints(geometry.NewConstraints(
		geometry.Size{Width: width, Height: height},
		geometry.Size{Width: preferredWidth, Height: preferredHeight}))
}

func (w *Widget) setConstraints(constraints geometry.Constraints) {
	w.constraints = &constraints
	w.InvalidateConstraints()
}

// SuspendInvalidations defers constraint invalidation until the matching
// ResumeInvalidations. Nestable; suspended invalidations coalesce into a
// single pass on the final resume.
func (w *Widget) SuspendInvalidations() {
	w.invalidationsSuspended++
}

// ResumeInvalidations undoes one SuspendInvalidations. Fatal when
// unbalanced.
func (w *Widget) ResumeInvalidations() {
	w.assert(w.invalidationsSuspended > 0, "widget.ResumeInvalidations", "unbalanced ResumeInvalidations")
	w.invalidationsSuspended--
	if w.invalidationsSuspended == 0 && w.invalidationsRequested {
		w.InvalidateConstraints()
	}
}

// InvalidateConstraints discards the memoized constraints and recomputes.
// A changed result bubbles to the parent widget; an unchanged one stops the
// bubble and runs a local layout pass instead.
func (w *Widget) InvalidateConstraints() {
	if w.invalidationsSuspended > 0 {
		w.invalidationsRequested = true
		return
	}
	w.invalidationsRequested = false

	cached := w.cachedConstraints
	w.cachedConstraints = nil
	actual := w.Constraints()

	if (cached == nil || actual != *cached) && w.parentWidget != nil {
		w.parentWidget.InvalidateConstraints()
	} else {
		w.DoLayout()
	}
}

// DoLayout runs a layout pass: the widget's own OnLayout hook followed by a
// resize pass over its visible children. No-op while not showing.
func (w *Widget) DoLayout() {
	if !w.IsShowing() {
		return
	}
	notifier.dispatch(w, w.self.OnLayout)
	w.DoResize()
}

// DoResize propagates a size change to visible children. The caller
// already knows its own size changed, so only descendants are notified.
func (w *Widget) DoResize() {
	if !w.IsShowing() {
		return
	}
	if !notifier.inNotification(w) {
		w.callOnVisibleChildren((*Widget).processOnResize)
	}
}
