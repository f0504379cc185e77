package component

import "image/color"

// Tint is the render color of an entity.
type Tint struct {
	Color color.RGBA
}

var TintComponent = NewComponent[Tint]()
