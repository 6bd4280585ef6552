package widget

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/go-lattice/lattice/pkg/dom"
)

func TestHierarchySnapshot(t *testing.T) {
	doc := dom.NewDocument()
	root := newShownRoot(doc)
	panel := newProbe(doc)
	panel.Show(root.ContentElement())
	hidden := newProbe(doc)
	hidden.Show(panel.ContentElement())
	hidden.HideWidget()
	hidden.SetMinimumSize(10, 20)

	snapshot := root.HierarchySnapshot()
	if snapshot.ID != root.ID() || !snapshot.Root || !snapshot.Showing {
		t.Errorf("root snapshot = %+v", snapshot)
	}
	if len(snapshot.Children) != 1 {
		t.Fatalf("root should have one child, got %d", len(snapshot.Children))
	}
	child := snapshot.Children[0]
	if len(child.Children) != 1 {
		t.Fatalf("panel should have one child, got %d", len(child.Children))
	}
	grandchild := child.Children[0]
	if grandchild.Visible || grandchild.Showing {
		t.Error("hidden widget should snapshot as not visible")
	}
	if grandchild.Constraints == nil || grandchild.Constraints.Minimum.Height != 20 {
		t.Errorf("constraints missing from snapshot: %+v", grandchild.Constraints)
	}

	encoded, err := yaml.Marshal(snapshot)
	if err != nil {
		t.Fatalf("snapshot should encode as YAML: %v", err)
	}
	if !strings.Contains(string(encoded), root.ID()) {
		t.Error("encoded snapshot should carry widget ids")
	}
}

func TestPrintWidgetHierarchy(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	doc := dom.NewDocument()
	root := newShownRoot(doc)
	panel := newProbe(doc)
	panel.Show(root.ContentElement())
	panel.HideWidget()

	root.PrintWidgetHierarchy()

	entries := logs.FilterMessage("widget hierarchy").All()
	if len(entries) != 1 {
		t.Fatalf("expected one hierarchy log entry, got %d", len(entries))
	}
	dump, _ := entries[0].ContextMap()["dump"].(string)
	if !strings.Contains(dump, "div.widget") {
		t.Errorf("dump should list widget elements:\n%s", dump)
	}
	if !strings.Contains(dump, "(hidden)") {
		t.Errorf("dump should flag hidden widgets:\n%s", dump)
	}
}
