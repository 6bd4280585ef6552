package widget

import (
	"testing"

	"github.com/go-lattice/lattice/pkg/dom"
	"github.com/go-lattice/lattice/pkg/errors"
)

// probe is a widget that counts every lifecycle hook it receives.
type probe struct {
	*Widget
	wasShown      int
	willHide      int
	onResize      int
	onLayout      int
	onDetach      int
	childDetached int
}

func newProbe(doc *dom.Document) *probe {
	p := &probe{Widget: New(doc)}
	p.SetSelf(p)
	return p
}

func (p *probe) WasShown() { p.wasShown++ }
func (p *probe) WillHide() { p.willHide++ }
func (p *probe) OnResize() { p.onResize++ }
func (p *probe) OnLayout() { p.onLayout++ }
func (p *probe) OnDetach() { p.onDetach++ }

func (p *probe) ChildWasDetached(child *Widget) { p.childDetached++ }

func newShownRoot(doc *dom.Document) *probe {
	root := newProbe(doc)
	root.MarkAsRoot()
	root.Show(doc.Body())
	return root
}

func expectStructuralPanic(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected structural panic")
		}
		err, ok := r.(*errors.StructuralError)
		if !ok {
			t.Fatalf("expected *errors.StructuralError, got %T: %v", r, r)
		}
		if op != "" && err.Op != op {
			t.Errorf("op = %q, want %q", err.Op, op)
		}
	}()
	fn()
}

func expectGuardPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected guard violation panic")
		}
		if _, ok := r.(*errors.GuardViolationError); !ok {
			t.Fatalf("expected *errors.GuardViolationError, got %T: %v", r, r)
		}
	}()
	fn()
}

// checkCounters verifies the incremental widget counters against a brute
// force recount of the composed tree.
func checkCounters(t *testing.T, doc *dom.Document) {
	t.Helper()
	var verify func(node *dom.Node)
	verify = func(node *dom.Node) {
		if got, want := counterValue(node), expectedCounter(node); got != want {
			t.Errorf("counter on %s = %d, want %d", node, got, want)
		}
		if shadow := node.ShadowRoot(); shadow != nil {
			verify(shadow)
		}
		for _, child := range node.Children() {
			verify(child)
		}
	}
	verify(doc.Body())
}

func expectedCounter(node *dom.Node) int {
	total := 0
	var walk func(node *dom.Node)
	walk = func(node *dom.Node) {
		count := func(child *dom.Node) {
			if w := Lookup(child); w != nil && !w.externallyManaged {
				total++
			}
			walk(child)
		}
		if shadow := node.ShadowRoot(); shadow != nil {
			count(shadow)
		}
		for _, child := range node.Children() {
			count(child)
		}
	}
	walk(node)
	return total
}

func TestShowBuildsWidgetTree(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)

	if !root.IsVisible() || !root.IsShowing() || !root.IsRoot() {
		t.Error("root should be visible, showing and root")
	}
	if root.wasShown != 1 {
		t.Errorf("root wasShown = %d, want 1", root.wasShown)
	}

	child := newProbe(doc)
	child.Show(root.ContentElement())
	if child.Parent() != root.Widget {
		t.Error("child should resolve root as logical parent")
	}
	if len(root.Children()) != 1 {
		t.Error("root should list the child")
	}
	if !child.IsShowing() || child.wasShown != 1 {
		t.Error("child should be showing after show")
	}
	if child.Element().Parent() != root.ContentElement() {
		t.Error("child element should be under root content")
	}
	checkCounters(t, doc)
}

func TestShowIsIdempotent(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	child := newProbe(doc)

	child.Show(root.ContentElement())
	child.Show(root.ContentElement())
	child.Show(root.ContentElement())

	if child.wasShown != 1 {
		t.Errorf("wasShown = %d, want 1", child.wasShown)
	}
	if len(root.Children()) != 1 {
		t.Errorf("root children = %d, want 1", len(root.Children()))
	}
	checkCounters(t, doc)
}

func TestHideAndReShow(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	child := newProbe(doc)
	child.Show(root.ContentElement())

	child.HideWidget()
	if child.IsVisible() || child.IsShowing() {
		t.Error("hidden child should be neither visible nor showing")
	}
	if child.willHide != 1 || child.onDetach != 0 {
		t.Errorf("hooks after hide: willHide=%d onDetach=%d", child.willHide, child.onDetach)
	}
	if child.Element().Parent() != root.ContentElement() {
		t.Error("hidden element should stay in the document")
	}
	if !child.Element().HasClass("hidden") {
		t.Error("hidden class should be set")
	}
	if child.Parent() != root.Widget {
		t.Error("widget relationship should survive hiding")
	}
	checkCounters(t, doc)

	child.HideWidget() // no-op on an already hidden widget
	if child.willHide != 1 {
		t.Error("second hide should be a no-op")
	}

	child.ShowWidget()
	if !child.IsShowing() || child.wasShown != 2 {
		t.Error("re-shown child should be showing again")
	}
	if child.Element().HasClass("hidden") {
		t.Error("hidden class should be removed")
	}
	checkCounters(t, doc)
}

func TestHidingParentStopsChildrenShowing(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	panel := newProbe(doc)
	panel.Show(root.ContentElement())
	leaf := newProbe(doc)
	leaf.Show(panel.ContentElement())

	panel.HideWidget()
	if leaf.IsShowing() {
		t.Error("leaf should stop showing when its parent hides")
	}
	if !leaf.IsVisible() {
		t.Error("leaf should stay visible while its parent hides")
	}
	if leaf.willHide != 1 {
		t.Errorf("leaf willHide = %d, want 1", leaf.willHide)
	}

	panel.ShowWidget()
	if !leaf.IsShowing() || leaf.wasShown != 2 {
		t.Error("leaf should show again with its parent")
	}
}

func TestDetachRemovesElementAndRelationship(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	child := newProbe(doc)
	child.Show(root.ContentElement())

	child.Detach(false)
	if child.Element().Parent() != nil {
		t.Error("detached element should leave the document")
	}
	if child.Parent() != nil || len(root.Children()) != 0 {
		t.Error("widget relationship should be severed")
	}
	if child.onDetach != 1 {
		t.Errorf("onDetach = %d, want 1", child.onDetach)
	}
	if root.childDetached != 1 {
		t.Errorf("childWasDetached = %d, want 1", root.childDetached)
	}
	checkCounters(t, doc)

	// A detached widget can be shown again.
	child.Show(root.ContentElement())
	if !child.IsShowing() || child.Parent() != root.Widget {
		t.Error("detached widget should re-show cleanly")
	}
	checkCounters(t, doc)
}

func TestHideOnDetachKeepsElement(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	child := newProbe(doc)
	child.SetHideOnDetach()
	child.Show(root.ContentElement())

	child.Detach(false)
	if child.Element().Parent() != root.ContentElement() {
		t.Error("hide-on-detach should keep the element in the document")
	}
	if !child.Element().HasClass("hidden") {
		t.Error("hide-on-detach should hide the element")
	}
	if child.onDetach != 0 {
		t.Error("onDetach must not fire when the element stays put")
	}
	if child.Parent() != nil {
		t.Error("widget relationship should still be severed")
	}
	checkCounters(t, doc)
}

func TestDetachOverrideForcesRemoval(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	child := newProbe(doc)
	child.SetHideOnDetach()
	child.Show(root.ContentElement())

	child.Detach(true)
	if child.Element().Parent() != nil {
		t.Error("override should force the element out of the document")
	}
	if child.onDetach != 1 {
		t.Errorf("onDetach = %d, want 1", child.onDetach)
	}
	checkCounters(t, doc)
}

func TestDetachOverrideOnHiddenWidgetFiresOnDetach(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	child := newProbe(doc)
	child.SetHideOnDetach()
	child.Show(root.ContentElement())
	child.HideWidget()

	child.Detach(true)
	if child.Element().Parent() != nil {
		t.Error("override should remove the hidden element from the document")
	}
	if child.onDetach != 1 {
		t.Errorf("onDetach = %d, want 1", child.onDetach)
	}
	if child.Parent() != nil {
		t.Error("widget relationship should be severed")
	}
	checkCounters(t, doc)
}

func TestDetachChildWidgets(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	first := newProbe(doc)
	first.Show(root.ContentElement())
	second := newProbe(doc)
	second.Show(root.ContentElement())

	root.DetachChildWidgets()
	if len(root.Children()) != 0 {
		t.Error("all children should be detached")
	}
	if first.Parent() != nil || second.Parent() != nil {
		t.Error("children should lose their parent")
	}
	checkCounters(t, doc)
}

func TestCountersAcrossOperationSequence(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)

	panel := newProbe(doc)
	panel.Show(root.ContentElement())

	holder := doc.CreateElement("div")
	panel.ContentElement().AppendChild(holder)
	leaf := newProbe(doc)
	leaf.Show(holder)
	checkCounters(t, doc)

	if counterValue(doc.Body()) != 3 {
		t.Errorf("body counter = %d, want 3", counterValue(doc.Body()))
	}
	if counterValue(panel.Element()) != 1 {
		t.Errorf("panel counter = %d, want 1", counterValue(panel.Element()))
	}

	leaf.HideWidget()
	checkCounters(t, doc)
	leaf.ShowWidget()
	checkCounters(t, doc)

	// Reparent the leaf to a sibling container inside the same widget.
	holder2 := doc.CreateElement("div")
	panel.ContentElement().AppendChild(holder2)
	leaf.Show(holder2)
	if leaf.Element().Parent() != holder2 {
		t.Error("leaf should move to the new container")
	}
	checkCounters(t, doc)

	panel.Detach(false)
	if counterValue(doc.Body()) != 1 {
		t.Errorf("body counter = %d, want 1", counterValue(doc.Body()))
	}
	checkCounters(t, doc)

	panel.Show(root.ContentElement())
	checkCounters(t, doc)
}

func TestExternallyManagedWidgetIsNotCounted(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)

	em := newProbe(doc)
	em.MarkAsExternallyManaged()
	em.Show(root.ContentElement())
	if counterValue(root.Element()) != 0 {
		t.Errorf("externally managed widget counted: %d", counterValue(root.Element()))
	}
	checkCounters(t, doc)

	// Widgets nested under an externally managed one still count.
	nested := newProbe(doc)
	nested.Show(em.ContentElement())
	if counterValue(root.Element()) != 1 {
		t.Errorf("nested widget not counted: %d", counterValue(root.Element()))
	}
	checkCounters(t, doc)
}

func TestGuardRejectsRawWidgetMutations(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	panel := newProbe(doc)
	panel.Show(root.ContentElement())

	stray := New(doc)
	expectGuardPanic(t, func() {
		doc.Body().AppendChild(stray.Element())
	})
	expectGuardPanic(t, func() {
		root.ContentElement().InsertBefore(stray.Element(), panel.Element())
	})
	expectGuardPanic(t, func() {
		root.ContentElement().RemoveChild(panel.Element())
	})
	expectGuardPanic(t, func() {
		doc.Body().RemoveChildren()
	})

	// Re-appending under the current parent is a reorder, not a move.
	filler := doc.CreateElement("div")
	root.ContentElement().AppendChild(filler)
	root.ContentElement().AppendChild(panel.Element())
	children := root.ContentElement().Children()
	if children[len(children)-1] != panel.Element() {
		t.Error("reorder should move the widget element to the end")
	}
	checkCounters(t, doc)
}

func TestStructuralAsserts(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)

	expectStructuralPanic(t, "widget.Show", func() {
		newProbe(doc).Show(nil)
	})

	orphan := doc.CreateElement("div")
	expectStructuralPanic(t, "widget.Show", func() {
		newProbe(doc).Show(orphan)
	})

	expectStructuralPanic(t, "widget.Show", func() {
		extra := newProbe(doc)
		extra.MarkAsRoot()
		extra.Show(root.ContentElement())
	})

	expectStructuralPanic(t, "widget.ShowWidget", func() {
		newProbe(doc).ShowWidget()
	})

	expectStructuralPanic(t, "widget.MarkAsRoot", func() {
		attached := newProbe(doc)
		attached.Show(root.ContentElement())
		attached.MarkAsRoot()
	})

	expectStructuralPanic(t, "widget.MarkAsExternallyManaged", func() {
		attached := newProbe(doc)
		attached.Show(root.ContentElement())
		attached.MarkAsExternallyManaged()
	})
}

func TestIsolatedWidgetContent(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)

	isolated := NewIsolated(doc, false)
	isolated.Show(root.ContentElement())

	if isolated.ContentElement() == isolated.Element() {
		t.Error("isolated widget should have a distinct content element")
	}
	if isolated.Element().ShadowRoot() == nil {
		t.Error("isolated widget should host a shadow root")
	}
	if isolated.ContentElement().ParentOrShadowHost() != isolated.Element().ShadowRoot() {
		t.Error("content element should live in the shadow root")
	}
	if len(isolated.Element().ShadowRoot().AdoptedStyleSheets()) == 0 {
		t.Error("shadow root should adopt base styles")
	}

	// Widgets shown inside the shadow content resolve the isolated widget
	// as parent and are counted through the shadow boundary.
	inner := newProbe(doc)
	inner.Show(isolated.ContentElement())
	if inner.Parent() != isolated {
		t.Error("inner widget should resolve the isolated widget as parent")
	}
	checkCounters(t, doc)
}

func TestShowNotificationOrderParentFirst(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)

	var order []string
	parent := &orderedWidget{Widget: New(doc), name: "parent", order: &order}
	parent.SetSelf(parent)
	child := &orderedWidget{Widget: New(doc), name: "child", order: &order}
	child.SetSelf(child)

	child.Show(parent.ContentElement())
	parent.Show(root.ContentElement())

	want := []string{"parent:wasShown", "child:wasShown", "child:willHide", "parent:willHide"}
	parent.HideWidget()
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

type orderedWidget struct {
	*Widget
	name  string
	order *[]string
}

func (o *orderedWidget) WasShown() { *o.order = append(*o.order, o.name+":wasShown") }
func (o *orderedWidget) WillHide() { *o.order = append(*o.order, o.name+":willHide") }

func TestReentrantShowFromHookRunsSinglePass(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)

	reentrant := &reentrantWidget{probe: &probe{Widget: New(doc)}, doc: doc}
	reentrant.probe.SetSelf(reentrant)
	reentrant.Show(root.ContentElement())

	if reentrant.wasShown != 1 {
		t.Errorf("wasShown = %d, want 1", reentrant.wasShown)
	}
	if reentrant.late == nil || reentrant.late.wasShown != 1 {
		t.Error("widget shown from inside the hook should get exactly one pass")
	}
	if !reentrant.late.IsVisible() || !reentrant.late.IsShowing() {
		t.Error("widget shown from inside the hook should end up showing")
	}
	checkCounters(t, doc)
}

func TestHideFromHookClearsShowing(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)

	parent := &hidingParent{probe: &probe{Widget: New(doc)}}
	parent.probe.SetSelf(parent)
	child := newProbe(doc)
	parent.target = child

	child.Show(parent.ContentElement())
	parent.Show(root.ContentElement())

	if child.IsVisible() {
		t.Error("child should be hidden by the hook")
	}
	if child.IsShowing() {
		t.Error("hidden child must not report showing")
	}
	if !parent.IsShowing() {
		t.Error("parent should still be showing")
	}
	if !child.Element().HasClass("hidden") {
		t.Error("child element should carry the hidden class")
	}
	checkCounters(t, doc)
}

// hidingParent hides its target child from inside its own wasShown hook.
type hidingParent struct {
	*probe
	target *probe
}

func (h *hidingParent) WasShown() {
	h.probe.WasShown()
	if h.target != nil && h.target.IsVisible() {
		h.target.HideWidget()
	}
}

// reentrantWidget shows another widget from inside its own wasShown hook.
type reentrantWidget struct {
	*probe
	doc  *dom.Document
	late *probe
}

func (r *reentrantWidget) WasShown() {
	r.probe.WasShown()
	if r.late == nil {
		r.late = newProbe(r.doc)
		r.late.Show(r.ContentElement())
	}
}
