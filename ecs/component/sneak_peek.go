package component

// SneakPeek is the modal image carousel.
type SneakPeek struct {
	Images []string
	Index  int
	Active bool
}

var SneakPeekComponent = NewComponent[SneakPeek]()
