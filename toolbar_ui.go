package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/papercards/ecs/system"
)

const toolbarHeight = 56

// toolbarUI holds the always-visible buttons and the carousel controls,
// which are attached only while the sneak peek is open.
type toolbarUI struct {
	ui       *ebitenui.UI
	root     *widget.Container
	carousel *widget.Container
	shown    bool
}

func newToolbarUI(g *Game) *toolbarUI {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xd9, G: 0x4f, B: 0x86, A: 0xff})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0xb0, G: 0x35, B: 0x68, A: 0xff})
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnImg, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 34)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	bar.AddChild(button("Download cards", func() {
		system.RequestExport(g.world)
	}))
	bar.AddChild(button("Sneak peek", func() {
		system.OpenSneakPeek(g.world)
	}))

	carousel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionEnd}),
		),
	)
	carousel.AddChild(button("< Prev", func() { system.StepSneakPeek(g.world, -1) }))
	carousel.AddChild(button("Close", func() { system.CloseSneakPeek(g.world) }))
	carousel.AddChild(button("Next >", func() { system.StepSneakPeek(g.world, 1) }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	return &toolbarUI{ui: &ebitenui.UI{Container: root}, root: root, carousel: carousel}
}

// sync attaches the carousel controls while the sneak peek is open.
func (t *toolbarUI) sync(sneakOpen bool) {
	if sneakOpen == t.shown {
		return
	}
	if sneakOpen {
		t.root.AddChild(t.carousel)
	} else {
		t.root.RemoveChild(t.carousel)
	}
	t.shown = sneakOpen
}
