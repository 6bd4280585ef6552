package widget

import (
	"github.com/go-lattice/lattice/pkg/dom"
	"github.com/go-lattice/lattice/pkg/geometry"
)

// VBox stacks its children vertically: its constraints take the widest
// child's width and the sum of the children's heights.
type VBox struct {
	*Widget
}

// NewVBox creates a vertical box.
func NewVBox(doc *dom.Document) *VBox {
	box := &VBox{Widget: New(doc)}
	box.SetSelf(box)
	box.contentElement.AddClass("vbox")
	return box
}

// NewIsolatedVBox creates a vertical box with shadow-isolated content.
func NewIsolatedVBox(doc *dom.Document, delegatesFocus bool) *VBox {
	box := &VBox{Widget: NewIsolated(doc, delegatesFocus)}
	box.SetSelf(box)
	box.contentElement.AddClass("vbox")
	return box
}

func (box *VBox) CalculateConstraints() geometry.Constraints {
	var constraints geometry.Constraints
	box.callOnVisibleChildren(func(child *Widget) {
		childConstraints := child.Constraints()
		constraints = constraints.WidthToMax(childConstraints).AddHeight(childConstraints)
	})
	return constraints
}

// HBox lays its children out horizontally: its constraints take the sum of
// the children's widths and the tallest child's height.
type HBox struct {
	*Widget
}

// NewHBox creates a horizontal box.
func NewHBox(doc *dom.Document) *HBox {
	box := &HBox{Widget: New(doc)}
	box.SetSelf(box)
	box.contentElement.AddClass("hbox")
	return box
}

// NewIsolatedHBox creates a horizontal box with shadow-isolated content.
func NewIsolatedHBox(doc *dom.Document, delegatesFocus bool) *HBox {
	box := &HBox{Widget: NewIsolated(doc, delegatesFocus)}
	box.SetSelf(box)
	box.contentElement.AddClass("hbox")
	return box
}

func (box *HBox) CalculateConstraints() geometry.Constraints {
	var constraints geometry.Constraints
	box.callOnVisibleChildren(func(child *Widget) {
		childConstraints := child.Constraints()
		constraints = constraints.AddWidth(childConstraints).HeightToMax(childConstraints)
	})
	return constraints
}
