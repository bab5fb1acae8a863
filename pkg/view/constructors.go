package view

import (
	"github.com/go-drift/domhost/pkg/component"
	"github.com/samber/lo"
)

// Constructor builds the view for h, registers it with r and returns it.
type Constructor func(r *Renderer, h component.Handle, parent View) View

// constructors maps every component kind to its view. Supporting a new kind
// means adding an entry here; Resolve does not change.
var constructors = [component.TypeCount]Constructor{
	component.TypeContainer:     newContainerView,
	component.TypeText:          newTextView,
	component.TypeImage:         newImageView,
	component.TypeScrollView:    newScrollView,
	component.TypeSequence:      newSequenceView,
	component.TypeGridSequence:  newGridSequenceView,
	component.TypePager:         newPagerView,
	component.TypeFrame:         newFrameView,
	component.TypeEditText:      newEditTextView,
	component.TypeTouchWrapper:  newTouchWrapperView,
	component.TypeVideo:         newVideoView,
	component.TypeVectorGraphic: newVectorGraphicView,
}

func constructorFor(t component.Type) Constructor {
	if !t.Valid() {
		return nil
	}
	return constructors[t]
}

// SupportedTypes lists the kinds with a registered constructor.
func SupportedTypes() []component.Type {
	return lo.Filter(component.Types(), func(t component.Type, _ int) bool {
		return constructorFor(t) != nil
	})
}
