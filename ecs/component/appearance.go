package component

import "image/color"

// Appearance is the flat colour the debug renderer uses for an entity.
type Appearance struct {
	Color  color.RGBA
	Accent color.RGBA
}

var AppearanceComponent = NewComponent[Appearance]()
