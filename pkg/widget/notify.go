package widget

import "slices"

// notificationState records which widgets are currently inside a lifecycle
// hook. Passes consult it before recursing so a hook that re-enters the
// tree (shows, hides or resizes widgets from inside wasShown and friends)
// cannot trigger a second pass over the same subtree.
type notificationState struct {
	active map[*Widget]int
}

var notifier = &notificationState{active: map[*Widget]int{}}

// dispatch runs hook with w marked active, restoring the previous state
// even if the hook panics.
func (s *notificationState) dispatch(w *Widget, hook func()) {
	s.active[w]++
	defer func() {
		s.active[w]--
		if s.active[w] == 0 {
			delete(s.active, w)
		}
	}()
	hook()
}

// inNotification reports whether w or any of its widget ancestors is
// currently inside a hook dispatch.
func (s *notificationState) inNotification(w *Widget) bool {
	for cur := w; cur != nil; cur = cur.parentWidget {
		if s.active[cur] > 0 {
			return true
		}
	}
	return false
}

// callOnVisibleChildren applies pass to a snapshot of w's visible children.
// Children detached or reparented by an earlier iteration are skipped.
func (w *Widget) callOnVisibleChildren(pass func(*Widget)) {
	snapshot := slices.Clone(w.children)
	for _, child := range snapshot {
		if child.parentWidget == w && child.visible {
			pass(child)
		}
	}
}

// processWillShow and processWasHidden carry no hooks, only flag
// maintenance, so they never consult the re-entrancy state: the showing
// flag must end up correct even when a show or hide is triggered from
// inside another widget's hook.
func (w *Widget) processWillShow() {
	w.showing = true
	w.callOnVisibleChildren((*Widget).processWillShow)
}

func (w *Widget) processWasShown() {
	if notifier.inNotification(w) {
		return
	}
	w.restoreScrollPositions()
	notifier.dispatch(w, w.self.WasShown)
	w.callOnVisibleChildren((*Widget).processWasShown)
}

// processWillHide notifies children before the widget's own hook so they
// observe a still-showing ancestor chain. The showing flag clears even when
// hook dispatch is suppressed by re-entrancy.
func (w *Widget) processWillHide() {
	if !notifier.inNotification(w) {
		w.storeScrollPositions()
		w.callOnVisibleChildren((*Widget).processWillHide)
		notifier.dispatch(w, w.self.WillHide)
	}
	w.showing = false
}

func (w *Widget) processWasHidden() {
	w.callOnVisibleChildren((*Widget).processWasHidden)
	w.showing = false
}

func (w *Widget) processOnResize() {
	if notifier.inNotification(w) {
		return
	}
	if !w.IsShowing() {
		return
	}
	notifier.dispatch(w, w.self.OnResize)
	w.callOnVisibleChildren((*Widget).processOnResize)
}
