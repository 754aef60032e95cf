package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/papercards/assets/sound"
	"github.com/milk9111/papercards/cardstore"
	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
	"github.com/milk9111/papercards/ecs/entity"
	"github.com/milk9111/papercards/ecs/render"
	"github.com/milk9111/papercards/ecs/system"
	"github.com/milk9111/papercards/export"
	"github.com/milk9111/papercards/prefabs"
)

type gameOptions struct {
	deck   string
	debug  bool
	resume bool
	dbPath string
	outDir string
	logger *slog.Logger
}

type Game struct {
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	clock     *common.FrameClock
	renderer  *render.Renderer
	toolbar   *toolbarUI
	watcher   *prefabs.Watcher
	store     *cardstore.Store

	deckName string
	debug    bool
	logger   *slog.Logger
	lastPath string
}

func NewGame(opts gameOptions) (*Game, error) {
	logger := opts.logger
	if logger == nil {
		logger = slog.Default()
	}

	deck, err := prefabs.LoadDeckSpec(opts.deck)
	if err != nil {
		return nil, fmt.Errorf("game: load deck: %w", err)
	}

	clock := common.NewFrameClock(time.Now(), ebiten.DefaultTPS)
	rng := common.NewRand(uint64(time.Now().UnixNano()))
	world := ecs.NewWorld()

	if _, err := entity.BuildDeck(world, deck, rng); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	loader := sound.NewLoader()
	_, err = entity.NewMusicPlayer(world, deck.Playlist, func(file string) (component.AudioTrack, error) {
		p, err := loader.LoadPlayer(file)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		logger.Warn("music disabled", "error", err)
	}

	images := render.NewImageCache()
	painter, err := render.NewCardPainter(images, render.CardStyle{
		Ink:   deck.Card.Ink.Or(nil),
		Paper: deck.Card.Paper.Or(nil),
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	system.SessionOf(world).FontsReady = true

	g := &Game{
		world:    world,
		clock:    clock,
		renderer: render.NewRenderer(clock, painter, images, deck.Background),
		deckName: opts.deck,
		debug:    opts.debug,
		logger:   logger,
	}

	if opts.resume {
		store, err := cardstore.Open(opts.dbPath)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		g.store = store
		restored := system.RestoreCards(world, store, logger)
		logger.Info("restored cards", "count", restored, "db", opts.dbPath)
	}

	hits := ecs.NewHitWorld()
	hearts := system.NewHeartEmitter(clock, rng)
	pointer := render.NewPointer(g.pointerBlocked)

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(pointer),
		system.NewDragSystem(clock, rng, hearts, hits, logger),
		system.NewSignatureSystem(clock, hits),
		system.NewMusicSystem(clock, logger),
		system.NewCardTweenSystem(clock),
		system.NewExportSystem(clock, hearts, system.ExportOptions{
			Rasterizer:  render.NewRasterizer(painter),
			Saver:       export.NewFileSaver(opts.outDir),
			FileName:    deck.Export.FileName,
			Scale:       deck.Export.Scale,
			SettleDelay: deck.Export.Settle(),
			Logger:      logger,
		}),
		system.NewOverlaySystem(clock),
		system.NewTTLSystem(clock),
	)
	if g.store != nil {
		g.scheduler.Add(system.NewPersistenceSystem(g.store, logger))
	}
	g.scheduler.Add(system.NewEventLogSystem(logger, g.onEvent))

	if info, err := os.Stat("prefabs"); err == nil && info.IsDir() {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			logger.Warn("deck hot reload disabled", "error", err)
		} else {
			g.watcher = watcher
		}
	}

	g.toolbar = newToolbarUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.clock.Tick()

	g.toolbar.ui.Update()
	g.handleKeys()
	g.scheduler.Update(g.world)

	sp := system.SneakPeekOf(g.world)
	g.toolbar.sync(sp != nil && sp.Active)

	g.reloadDeck()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	g.toolbar.ui.Draw(screen)

	if g.debug {
		msg := fmt.Sprintf("Frames: %d    FPS: %.2f    Entities: %d", g.frames, ebiten.ActualFPS(), len(ecs.Entities(g.world)))
		if g.lastPath != "" {
			msg += "\nSaved: " + g.lastPath
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the watcher and the card store.
func (g *Game) Close() error {
	if g == nil {
		return nil
	}
	if err := g.watcher.Close(); err != nil {
		g.logger.Warn("close watcher", "error", err)
	}
	if g.store != nil {
		return g.store.Close()
	}
	return nil
}

func (g *Game) handleKeys() {
	sp := system.SneakPeekOf(g.world)
	if sp == nil || !sp.Active {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		system.StepSneakPeek(g.world, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		system.StepSneakPeek(g.world, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		system.CloseSneakPeek(g.world)
	}
}

// pointerBlocked keeps presses on the toolbar, the open carousel and the
// export overlay away from the cards.
func (g *Game) pointerBlocked(x, y float64) bool {
	if y < toolbarHeight {
		return true
	}
	if sp := system.SneakPeekOf(g.world); sp != nil && sp.Active {
		return true
	}
	if o := system.OverlayOf(g.world); o != nil && o.Visible {
		return true
	}
	return false
}

func (g *Game) onEvent(evt ecs.Event) {
	if evt.Type != ecs.EventExportDone {
		return
	}
	if path, ok := evt.Data.(string); ok {
		g.lastPath = path
	}
}

// reloadDeck applies message edits from the deck file without touching card
// poses.
func (g *Game) reloadDeck() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Drain()
	if err != nil {
		g.logger.Warn("deck watcher", "error", err)
	}
	if len(changed) == 0 {
		return
	}
	deck, err := prefabs.LoadDeckSpec(g.deckName)
	if err != nil {
		g.logger.Warn("reload deck", "error", err)
		return
	}
	n := entity.ApplyMessages(g.world, deck)
	g.logger.Info("deck reloaded", "files", changed, "updated", n)
}
