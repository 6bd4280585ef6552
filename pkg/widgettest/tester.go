// Package widgettest provides an in-memory harness for exercising widget
// trees in tests: a document with a shown root widget, fragment mounting
// from HTML markup, node finders, and a lifecycle recorder.
package widgettest

import (
	"testing"

	"github.com/go-lattice/lattice/pkg/dom"
	"github.com/go-lattice/lattice/pkg/widget"
)

// Tester owns a document with a root widget already shown on its body.
type Tester struct {
	t    *testing.T
	doc  *dom.Document
	root *widget.Widget
}

// NewTester creates a fresh document and shows a root widget on its body.
func NewTester(t *testing.T) *Tester {
	t.Helper()
	doc := dom.NewDocument()
	root := widget.New(doc)
	root.MarkAsRoot()
	root.Show(doc.Body())
	return &Tester{t: t, doc: doc, root: root}
}

// Document returns the harness document.
func (tt *Tester) Document() *dom.Document { return tt.doc }

// Root returns the shown root widget.
func (tt *Tester) Root() *widget.Widget { return tt.root }

// MountFragment parses markup and appends the resulting nodes to the root
// widget's content element. Fails the test on malformed markup.
func (tt *Tester) MountFragment(markup string) []*dom.Node {
	tt.t.Helper()
	nodes, err := dom.ParseFragment(tt.doc, markup)
	if err != nil {
		tt.t.Fatalf("widgettest: parse fragment: %v", err)
	}
	for _, node := range nodes {
		tt.root.ContentElement().AppendChild(node)
	}
	return nodes
}

// FindByClass returns the matches for class in the composed tree under the
// root widget's element, in traversal order.
func (tt *Tester) FindByClass(class string) Result {
	start := tt.root.Element()
	var nodes []*dom.Node
	if start.HasClass(class) {
		nodes = append(nodes, start)
	}
	for cur := start.TraverseNext(start); cur != nil; cur = cur.TraverseNext(start) {
		if cur.HasClass(class) {
			nodes = append(nodes, cur)
		}
	}
	return Result{t: tt.t, nodes: nodes, description: "class " + class}
}

// Result wraps finder matches with test-failing accessors.
type Result struct {
	t           *testing.T
	nodes       []*dom.Node
	description string
}

// First returns the first match, failing the test when there is none.
func (r Result) First() *dom.Node {
	r.t.Helper()
	if len(r.nodes) == 0 {
		r.t.Fatalf("widgettest: no matches for %s", r.description)
	}
	return r.nodes[0]
}

// All returns every match in traversal order.
func (r Result) All() []*dom.Node { return r.nodes }

// Count returns the number of matches.
func (r Result) Count() int { return len(r.nodes) }

// Exists reports whether anything matched.
func (r Result) Exists() bool { return len(r.nodes) > 0 }
