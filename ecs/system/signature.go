package system

import (
	"time"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

const (
	DefaultSignatureHold     = 1000 * time.Millisecond
	DefaultSignatureInterval = 90 * time.Millisecond
)

// SignatureSystem reveals the signature after a press-and-hold on its card
// and types it out one rune at a time.
type SignatureSystem struct {
	clock common.Clock
	hits  *ecs.HitWorld
}

func NewSignatureSystem(clock common.Clock, hits *ecs.HitWorld) *SignatureSystem {
	return &SignatureSystem{clock: clock, hits: hits}
}

func (s *SignatureSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()

	var pointer *component.Pointer
	if ent, ok := ecs.First(w, component.PointerComponent.Kind()); ok {
		pointer, _ = ecs.Get(w, ent, component.PointerComponent.Kind())
	}

	ecs.ForEach(w, component.SignatureComponent.Kind(), func(e ecs.Entity, sig *component.Signature) {
		if sig.Hold <= 0 {
			sig.Hold = DefaultSignatureHold
		}
		if sig.TypeInterval <= 0 {
			sig.TypeInterval = DefaultSignatureInterval
		}

		if !sig.Revealed && pointer != nil {
			if pointer.Pressed && s.hits != nil {
				if top, ok := s.hits.Topmost(pointer.X, pointer.Y); ok && top == e {
					sig.Holding = true
					sig.HoldStart = now
				}
			}
			if pointer.Released || !pointer.Down {
				sig.Holding = false
			}
		}

		if sig.Holding && !sig.Revealed && now.Sub(sig.HoldStart) >= sig.Hold {
			sig.Holding = false
			sig.Revealed = true
			sig.HintVisible = false
			sig.Typed = 0
			sig.NextType = now.Add(sig.TypeInterval)
		}

		if !sig.Revealed {
			return
		}
		total := len([]rune(sig.Message))
		for sig.Typed < total && !now.Before(sig.NextType) {
			sig.Typed++
			sig.NextType = sig.NextType.Add(sig.TypeInterval)
		}
	})
}

// CardLabels returns the signature text and the press-and-hold hint a card
// shows. Cards forced visible for capture never show the hint.
func CardLabels(w *ecs.World, e ecs.Entity, card *component.Card) (signature, hint string) {
	sig, ok := ecs.Get(w, e, component.SignatureComponent.Kind())
	if !ok {
		return "", ""
	}
	if sig.Revealed {
		return sig.Text(), ""
	}
	if sig.HintVisible && (card == nil || !card.ForceVisible) {
		return "", sig.Hint
	}
	return "", ""
}
