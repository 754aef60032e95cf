package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/papercards/ecs/system"
)

// Pointer merges the left mouse button and the first touch into one
// pointer. Presses for which Blocked returns true are swallowed, so clicks on
// the toolbar or an open modal never pick up a card.
type Pointer struct {
	Blocked func(x, y float64) bool

	touch    ebiten.TouchID
	touching bool
	x, y     float64
	touchIDs []ebiten.TouchID
}

func NewPointer(blocked func(x, y float64) bool) *Pointer {
	return &Pointer{Blocked: blocked}
}

func (p *Pointer) Pointer() system.PointerState {
	var st system.PointerState

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if !p.touching && len(p.touchIDs) > 0 {
		p.touch = p.touchIDs[0]
		p.touching = true
		st.Pressed = true
	}
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			p.touching = false
			st.Released = true
		} else {
			tx, ty := ebiten.TouchPosition(p.touch)
			p.x, p.y = float64(tx), float64(ty)
			st.Down = true
		}
		st.X, st.Y = p.x, p.y
		return p.filter(st)
	}

	cx, cy := ebiten.CursorPosition()
	p.x, p.y = float64(cx), float64(cy)
	st.X, st.Y = p.x, p.y
	st.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	st.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	st.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return p.filter(st)
}

func (p *Pointer) filter(st system.PointerState) system.PointerState {
	if st.Pressed && p.Blocked != nil && p.Blocked(st.X, st.Y) {
		st.Pressed = false
	}
	return st
}
