package component

// Draw order: lower layers first, ties broken by entity id.
const (
	LayerTiles = 0
	LayerBody  = 10
)

type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
