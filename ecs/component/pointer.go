package component

// Pointer stores this tick's mouse/touch state.
type Pointer struct {
	X        float64
	Y        float64
	Moved    bool
	Pressed  bool
	Released bool
	Down     bool
}

var PointerComponent = NewComponent[Pointer]()
