package widget

import "github.com/go-lattice/lattice/pkg/dom"

// Scroll offsets survive hide/show cycles by riding along on the scrolled
// container itself, so a stored position disappears with its node.
const scrollPositionProp = "lattice.scrollPosition"

type scrollPosition struct {
	left, top float64
}

// storeScrollPositions saves the current scroll offsets of every container
// the widget wants restored on its next wasShown pass.
func (w *Widget) storeScrollPositions() {
	for _, element := range w.self.ElementsToRestoreScrollPositionsFor() {
		element.SetProp(scrollPositionProp, scrollPosition{
			left: element.ScrollLeft(),
			top:  element.ScrollTop(),
		})
	}
}

func (w *Widget) restoreScrollPositions() {
	for _, element := range w.self.ElementsToRestoreScrollPositionsFor() {
		restoreScrollPosition(element)
	}
}

func restoreScrollPosition(element *dom.Node) {
	value, ok := element.Prop(scrollPositionProp)
	if !ok {
		return
	}
	position := value.(scrollPosition)
	element.SetScrollLeft(position.left)
	element.SetScrollTop(position.top)
}
