package widgettest

import (
	"github.com/go-lattice/lattice/pkg/dom"
	"github.com/go-lattice/lattice/pkg/widget"
)

// Recorder is a widget that counts the lifecycle notifications it receives.
type Recorder struct {
	*widget.Widget

	ShownCount  int
	HiddenCount int
	ResizeCount int
	LayoutCount int
	DetachCount int
}

// NewRecorder creates a recording widget on doc.
func NewRecorder(doc *dom.Document) *Recorder {
	r := &Recorder{Widget: widget.New(doc)}
	r.SetSelf(r)
	return r
}

func (r *Recorder) WasShown() { r.ShownCount++ }
func (r *Recorder) WillHide() { r.HiddenCount++ }
func (r *Recorder) OnResize() { r.ResizeCount++ }
func (r *Recorder) OnLayout() { r.LayoutCount++ }
func (r *Recorder) OnDetach() { r.DetachCount++ }
