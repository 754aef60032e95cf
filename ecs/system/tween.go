package system

import (
	"time"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

const cardTweenDuration = 800 * time.Millisecond

// CardTweenSystem eases each card's displayed pose toward its Transform.
type CardTweenSystem struct {
	clock common.Clock
	curve common.CubicBezier
}

func NewCardTweenSystem(clock common.Clock) *CardTweenSystem {
	return &CardTweenSystem{clock: clock, curve: common.EaseOutExpoish}
}

func (s *CardTweenSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()
	ecs.ForEach3(w, component.CardComponent.Kind(), component.TransformComponent.Kind(), component.CardPoseComponent.Kind(), func(_ ecs.Entity, card *component.Card, t *component.Transform, pose *component.CardPose) {
		if !card.TransitionsEnabled || card.TransitionsSuspended {
			pose.Current = *t
			pose.Target = *t
			pose.Active = false
			return
		}
		if pose.Target != *t {
			pose.From = pose.Current
			pose.Target = *t
			pose.Start = now
			pose.Active = true
		}
		if !pose.Active {
			return
		}
		p := float64(now.Sub(pose.Start)) / float64(cardTweenDuration)
		if p >= 1 {
			pose.Current = pose.Target
			pose.Active = false
			return
		}
		k := s.curve.Ease(p)
		pose.Current = component.Transform{
			X:        common.Lerp(pose.From.X, pose.Target.X, k),
			Y:        common.Lerp(pose.From.Y, pose.Target.Y, k),
			ScaleX:   common.Lerp(pose.From.Scale(), pose.Target.Scale(), k),
			ScaleY:   common.Lerp(pose.From.Scale(), pose.Target.Scale(), k),
			Rotation: common.Lerp(pose.From.Rotation, pose.Target.Rotation, k),
		}
	})
}
