package entity

import (
	"fmt"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
	"github.com/milk9111/papercards/ecs/system"
	"github.com/milk9111/papercards/prefabs"
)

// BuildDeck creates the session, every card in document order and the
// sneak peek carousel.
func BuildDeck(w *ecs.World, deck *prefabs.DeckSpec, rng common.Rand) ([]ecs.Entity, error) {
	if w == nil || deck == nil {
		return nil, fmt.Errorf("deck: world or deck is nil")
	}
	system.SessionOf(w)
	system.OverlayOf(w)

	cards := make([]ecs.Entity, 0, len(deck.Cards))
	for i := range deck.Cards {
		ent, err := NewCard(w, deck, i, rng)
		if err != nil {
			return nil, fmt.Errorf("deck: %w", err)
		}
		cards = append(cards, ent)
	}

	if len(deck.SneakPeek.Images) > 0 {
		if _, err := NewSneakPeek(w, deck.SneakPeek.Images); err != nil {
			return nil, fmt.Errorf("deck: %w", err)
		}
	}
	return cards, nil
}

func NewSneakPeek(w *ecs.World, images []string) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	sp := &component.SneakPeek{Images: append([]string(nil), images...)}
	if err := ecs.Add(w, ent, component.SneakPeekComponent.Kind(), sp); err != nil {
		return 0, fmt.Errorf("sneak peek: add component: %w", err)
	}
	return ent, nil
}

// ApplyMessages copies card messages from a reloaded deck onto the cards
// already on the table, matched by id. Poses are left alone.
func ApplyMessages(w *ecs.World, deck *prefabs.DeckSpec) int {
	if w == nil || deck == nil {
		return 0
	}
	byID := make(map[string]string, len(deck.Cards))
	for _, c := range deck.Cards {
		byID[c.ID] = c.Message
	}
	updated := 0
	ecs.ForEach(w, component.CardComponent.Kind(), func(_ ecs.Entity, card *component.Card) {
		msg, ok := byID[card.ID]
		if !ok || msg == card.Message {
			return
		}
		card.Message = msg
		updated++
	})
	if deck.Signature.Message != "" {
		ecs.ForEach(w, component.SignatureComponent.Kind(), func(_ ecs.Entity, sig *component.Signature) {
			if sig.Message != deck.Signature.Message {
				sig.Message = deck.Signature.Message
				updated++
			}
		})
	}
	return updated
}
