package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerBackground = 0
	LayerCards      = 100
	LayerHearts     = 500
	LayerOverlay    = 1000
)

var RenderLayerComponent = NewComponent[RenderLayer]()
