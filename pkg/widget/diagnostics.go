package widget

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/go-lattice/lattice/pkg/config"
	"github.com/go-lattice/lattice/pkg/errors"
	"github.com/go-lattice/lattice/pkg/geometry"
)

var (
	loggerMu sync.Mutex
	logger   = zap.NewNop()

	debugOnce     sync.Once
	debugSettings config.Debug
)

// SetLogger installs the logger hierarchy dumps are written to. Nil
// restores the no-op default.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func getLogger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	return logger
}

func debugConfig() config.Debug {
	debugOnce.Do(func() {
		settings, err := config.FromEnv()
		if err != nil {
			settings = config.Debug{HierarchyFormat: "text"}
		}
		debugSettings = settings
	})
	return debugSettings
}

// HierarchyNode is a point-in-time description of a widget and its
// children, suitable for logs and bug reports.
type HierarchyNode struct {
	ID          string                `yaml:"id"`
	Element     string                `yaml:"element"`
	Visible     bool                  `yaml:"visible"`
	Showing     bool                  `yaml:"showing"`
	Root        bool                  `yaml:"root,omitempty"`
	Constraints *geometry.Constraints `yaml:"constraints,omitempty"`
	Children    []HierarchyNode       `yaml:"children,omitempty"`
}

// HierarchySnapshot captures the widget subtree rooted at w.
func (w *Widget) HierarchySnapshot() HierarchyNode {
	node := HierarchyNode{
		ID:      w.id.String(),
		Element: w.element.String(),
		Visible: w.visible,
		Showing: w.showing,
		Root:    w.isRoot,
	}
	if constraints := w.Constraints(); !constraints.IsZero() {
		node.Constraints = &constraints
	}
	for _, child := range w.children {
		node.Children = append(node.Children, child.HierarchySnapshot())
	}
	return node
}

// PrintWidgetHierarchy logs the widget subtree rooted at w, as indented
// text or as YAML depending on LATTICE_HIERARCHY_FORMAT. Diagnostics never
// take the tree down: panics inside the dump are reported and swallowed.
func (w *Widget) PrintWidgetHierarchy() {
	defer errors.Recover("widget.PrintWidgetHierarchy")

	if debugConfig().HierarchyFormat == "yaml" {
		encoded, err := yaml.Marshal(w.HierarchySnapshot())
		if err != nil {
			getLogger().Error("widget hierarchy encode failed", zap.Error(err))
			return
		}
		getLogger().Info("widget hierarchy", zap.String("dump", string(encoded)))
		return
	}

	var lines []string
	w.collectHierarchy("", &lines)
	getLogger().Info("widget hierarchy", zap.String("dump", strings.Join(lines, "\n")))
}

func (w *Widget) collectHierarchy(prefix string, lines *[]string) {
	line := prefix + "[" + w.element.String() + "]"
	if !w.visible {
		line += " (hidden)"
	}
	if len(w.children) > 0 {
		line += " {"
	}
	*lines = append(*lines, line)
	for _, child := range w.children {
		child.collectHierarchy(prefix+"    ", lines)
	}
	if len(w.children) > 0 {
		*lines = append(*lines, prefix+"}")
	}
}
