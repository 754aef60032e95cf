package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
	"github.com/milk9111/papercards/ecs/system"
	"github.com/milk9111/papercards/export"
)

const heartSize = 22.0

var (
	overlayTint = color.NRGBA{R: 0x2b, G: 0x0f, B: 0x1e, A: 0xff}
	barTrack    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	barFill     = color.NRGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}
)

type faceKey struct {
	message   string
	signature string
	hint      string
	bg        string
	w, h      float64
}

type paintedFace struct {
	key faceKey
	img *ebiten.Image
}

// Renderer draws the table: background, cards by stacking order, hearts,
// the sneak peek modal and the export overlay.
type Renderer struct {
	clock      common.Clock
	painter    *CardPainter
	images     *ImageCache
	background string
	faces      map[ecs.Entity]*paintedFace
}

func NewRenderer(clock common.Clock, painter *CardPainter, images *ImageCache, background string) *Renderer {
	return &Renderer{
		clock:      clock,
		painter:    painter,
		images:     images,
		background: background,
		faces:      make(map[ecs.Entity]*paintedFace),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	if r == nil || screen == nil || w == nil {
		return
	}
	r.drawBackground(screen)
	r.drawCards(screen, w)
	r.drawHearts(screen, w)
	r.drawSneakPeek(screen, w)
	r.drawOverlay(screen, w)
}

func (r *Renderer) drawBackground(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0xfc, G: 0xe4, B: 0xec, A: 0xff})
	bg := r.images.Lookup(r.background)
	if bg == nil {
		return
	}
	sb, b := screen.Bounds(), bg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sb.Dx())/float64(b.Dx()), float64(sb.Dy())/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(bg, op)
}

type drawnCard struct {
	e    ecs.Entity
	card *component.Card
	pose component.Transform
}

func (r *Renderer) drawCards(screen *ebiten.Image, w *ecs.World) {
	var cards []drawnCard
	alive := make(map[ecs.Entity]bool)
	ecs.ForEach2(w, component.CardComponent.Kind(), component.CardPoseComponent.Kind(), func(e ecs.Entity, card *component.Card, pose *component.CardPose) {
		cards = append(cards, drawnCard{e: e, card: card, pose: pose.Current})
		alive[e] = true
	})
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].card.Z != cards[j].card.Z {
			return cards[i].card.Z < cards[j].card.Z
		}
		return cards[i].card.Index < cards[j].card.Index
	})
	for e, f := range r.faces {
		if !alive[e] {
			f.img.Deallocate()
			delete(r.faces, e)
		}
	}

	for _, dc := range cards {
		face := r.face(w, dc.e, dc.card)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-dc.card.Width/2, -dc.card.Height/2)
		op.GeoM.Scale(dc.pose.Scale(), dc.pose.Scale())
		op.GeoM.Rotate(common.DegToRad(dc.pose.Rotation))
		op.GeoM.Translate(dc.card.X+dc.pose.X, dc.card.Y+dc.pose.Y)
		op.Filter = ebiten.FilterLinear

		shadow := *op
		shadow.GeoM.Translate(4, 6)
		shadow.ColorScale.Scale(0, 0, 0, 0.18)
		screen.DrawImage(face, &shadow)
		screen.DrawImage(face, op)
	}
}

// face returns the cached painted face, repainting when its content changed.
func (r *Renderer) face(w *ecs.World, e ecs.Entity, card *component.Card) *ebiten.Image {
	key := faceKey{message: card.Message, bg: card.Background, w: card.Width, h: card.Height}
	key.signature, key.hint = system.CardLabels(w, e, card)
	if f, ok := r.faces[e]; ok && f.key == key {
		return f.img
	}
	img := r.painter.Paint(export.Card{
		ID:         card.ID,
		Width:      card.Width,
		Height:     card.Height,
		Message:    card.Message,
		Background: card.Background,
		Signature:  key.signature,
	}, key.hint, 1, true)
	if old, ok := r.faces[e]; ok {
		old.img.Deallocate()
	}
	r.faces[e] = &paintedFace{key: key, img: img}
	return img
}

func (r *Renderer) drawHearts(screen *ebiten.Image, w *ecs.World) {
	now := r.clock.Now()
	ecs.ForEach(w, component.HeartComponent.Kind(), func(_ ecs.Entity, h *component.Heart) {
		dx, dy, alpha, scale := h.Pose(now)
		DrawHeart(screen, h.X+dx, h.Y+dy, heartSize*scale, GlyphColor(h.Glyph), alpha)
	})
}

func (r *Renderer) drawSneakPeek(screen *ebiten.Image, w *ecs.World) {
	ent, ok := ecs.First(w, component.SneakPeekComponent.Kind())
	if !ok {
		return
	}
	sp, _ := ecs.Get(w, ent, component.SneakPeekComponent.Kind())
	if sp == nil || !sp.Active || len(sp.Images) == 0 {
		return
	}
	sb := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(sb.Dx()), float32(sb.Dy()), withAlpha(overlayTint, 0xd0), false)

	img := r.images.Lookup(sp.Images[sp.Index])
	if img != nil {
		b := img.Bounds()
		fit := min(float64(sb.Dx())*0.7/float64(b.Dx()), float64(sb.Dy())*0.7/float64(b.Dy()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(fit, fit)
		op.GeoM.Translate(float64(sb.Dx())/2, float64(sb.Dy())/2)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
	r.drawText(screen, fmt.Sprintf("%d / %d", sp.Index+1, len(sp.Images)), float64(sb.Dx())/2, float64(sb.Dy())*0.9, 16, color.White, 1)
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, w *ecs.World) {
	ent, ok := ecs.First(w, component.ProgressOverlayComponent.Kind())
	if !ok {
		return
	}
	o, _ := ecs.Get(w, ent, component.ProgressOverlayComponent.Kind())
	if o == nil || !o.Visible || o.Opacity <= 0 {
		return
	}
	a := o.Opacity
	sb := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(sb.Dx()), float32(sb.Dy()), withAlpha(overlayTint, uint8(0xd8*a)), false)

	const barHeight = 12
	x, y, width := float32(o.BarX), float32(o.BarY-barHeight/2), float32(o.BarWidth)
	vector.FillRect(screen, x, y, width, barHeight, withAlpha(barTrack, uint8(0x40*a)), true)
	vector.FillRect(screen, x, y, width*float32(o.FillPercent)/100, barHeight, withAlpha(barFill, uint8(0xff*a)), true)

	mx, my := o.MarkerPosition()
	DrawHeart(screen, mx, my, heartSize*1.2, GlyphColor(o.MarkerGlyph), a)

	center := o.BarX + o.BarWidth/2
	r.drawText(screen, o.PercentText, center, o.BarY-48, 20, color.White, a)
	r.drawStatus(screen, *o, center, o.BarY+28, a)
}

// drawStatus draws the status line with its trailing glyph as a heart shape.
func (r *Renderer) drawStatus(screen *ebiten.Image, o component.ProgressOverlay, cx, y, alpha float64) {
	const size = 16.0
	msg, glyph := o.StatusParts()
	if glyph == "" {
		r.drawText(screen, msg, cx, y, size, color.White, alpha)
		return
	}
	face := r.painter.Face(size)
	width := text.Advance(msg, face)
	gap := size * 0.5
	left := cx - (width+gap+size)/2
	r.drawText(screen, msg, left+width/2, y, size, color.White, alpha)
	DrawHeart(screen, left+width+gap+size/2, y+size*0.6, size, GlyphColor(glyph), alpha)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, cx, y, size float64, clr color.Color, alpha float64) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, r.painter.Face(size), op)
}
