package entity

import (
	"fmt"

	"github.com/milk9111/papercards/cardstore"
	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
	"github.com/milk9111/papercards/prefabs"
)

const (
	defaultCardWidth     = 320
	defaultCardHeight    = 210
	defaultRotationRange = 15
)

// NewCard builds the card at document position index. Its rotation is drawn
// once here and reused for every drag pose.
func NewCard(w *ecs.World, deck *prefabs.DeckSpec, index int, rng common.Rand) (ecs.Entity, error) {
	if w == nil || deck == nil {
		return 0, fmt.Errorf("card: world or deck is nil")
	}
	if index < 0 || index >= len(deck.Cards) {
		return 0, fmt.Errorf("card: index %d out of range", index)
	}
	spec := deck.Cards[index]

	width := firstPositive(spec.Width, deck.Card.Width, defaultCardWidth)
	height := firstPositive(spec.Height, deck.Card.Height, defaultCardHeight)
	rotRange := firstPositive(deck.Card.RotationRange, defaultRotationRange)
	x := spec.X
	if x == 0 {
		x = common.BaseWidth / 2
	}
	y := spec.Y
	if y == 0 {
		y = common.BaseHeight / 2
	}

	card := &component.Card{
		ID:         spec.ID,
		Index:      index,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Rotation:   common.Between(rng, -rotRange, rotRange),
		Message:    spec.Message,
		Background: deck.PaperBackground(index),
	}
	t := &component.Transform{ScaleX: component.RestingScale, ScaleY: component.RestingScale, Rotation: card.Rotation}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.CardComponent.Kind(), card); err != nil {
		return 0, fmt.Errorf("card %s: add card: %w", spec.ID, err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), t); err != nil {
		return 0, fmt.Errorf("card %s: add transform: %w", spec.ID, err)
	}
	if err := ecs.Add(w, ent, component.CardPoseComponent.Kind(), &component.CardPose{Current: *t, Target: *t}); err != nil {
		return 0, fmt.Errorf("card %s: add pose: %w", spec.ID, err)
	}
	if err := ecs.Add(w, ent, component.DragComponent.Kind(), &component.Drag{}); err != nil {
		return 0, fmt.Errorf("card %s: add drag: %w", spec.ID, err)
	}
	if err := ecs.Add(w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerCards}); err != nil {
		return 0, fmt.Errorf("card %s: add render layer: %w", spec.ID, err)
	}
	if err := ecs.Add(w, ent, component.PersistentComponent.Kind(), &component.Persistent{Key: cardstore.Key(spec.ID)}); err != nil {
		return 0, fmt.Errorf("card %s: add persistent: %w", spec.ID, err)
	}

	if deck.Signature.Card == spec.ID {
		sig := &component.Signature{
			Message:      deck.Signature.Message,
			Hint:         deck.Signature.Hint,
			Hold:         deck.Signature.Hold(),
			TypeInterval: deck.Signature.TypeInterval(),
			HintVisible:  true,
		}
		if err := ecs.Add(w, ent, component.SignatureComponent.Kind(), sig); err != nil {
			return 0, fmt.Errorf("card %s: add signature: %w", spec.ID, err)
		}
	}
	return ent, nil
}

func firstPositive(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
