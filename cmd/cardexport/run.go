package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/milk9111/papercards/assets"
	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
	"github.com/milk9111/papercards/ecs/entity"
	"github.com/milk9111/papercards/ecs/system"
	"github.com/milk9111/papercards/export"
	"github.com/milk9111/papercards/export/ggraster"
	"github.com/milk9111/papercards/prefabs"
)

// An export finishes in a few hundred ticks; this bounds a stuck run.
const maxExportTicks = 60 * 60

type exportResult struct {
	path  string
	cards int
}

// runExport drives the same export system the game uses, on a frame clock
// with no window.
func runExport(cfg exportConfig, logger *slog.Logger, progress func(done, total, percent int)) (exportResult, error) {
	deck, err := prefabs.LoadDeckSpec(cfg.deck)
	if err != nil {
		return exportResult{}, err
	}

	clock := common.NewFrameClock(time.Now(), 60)
	rng := common.NewRand(cfg.seed)
	world := ecs.NewWorld()

	cards, err := entity.BuildDeck(world, deck, rng)
	if err != nil {
		return exportResult{}, err
	}
	if cfg.reveal {
		revealSignatures(world)
	}
	system.SessionOf(world).FontsReady = true

	raster, err := ggraster.New(ggraster.Options{
		Images: assets.DecodeImage,
		Ink:    deck.Card.Ink.Or(nil),
		Paper:  deck.Card.Paper.Or(nil),
		Logger: logger,
	})
	if err != nil {
		return exportResult{}, err
	}

	name := cfg.name
	if name == "" {
		name = deck.Export.FileName
	}
	scale := cfg.scale
	if scale <= 0 {
		scale = deck.Export.Scale
	}

	var (
		savedPath string
		runErr    error
	)
	scheduler := ecs.NewScheduler(
		system.NewExportSystem(clock, system.NewHeartEmitter(clock, rng), system.ExportOptions{
			Rasterizer:  raster,
			Saver:       export.NewFileSaver(cfg.out),
			FileName:    name,
			Scale:       scale,
			SettleDelay: deck.Export.Settle(),
			Logger:      logger,
		}),
		system.NewOverlaySystem(clock),
		system.NewTTLSystem(clock),
		system.NewEventLogSystem(logger, func(evt ecs.Event) {
			switch evt.Type {
			case ecs.EventExportDone:
				savedPath, _ = evt.Data.(string)
			case ecs.EventExportFailed:
				runErr, _ = evt.Data.(error)
			}
		}),
	)

	system.RequestExport(world)
	job := system.ExportJobOf(world)
	lastIndex := 0
	for tick := 0; tick < maxExportTicks; tick++ {
		clock.Tick()
		scheduler.Update(world)

		if job.Phase == component.ExportCapturing || job.Phase == component.ExportBursting {
			if job.Index > lastIndex && progress != nil {
				lastIndex = job.Index
				progress(job.Index, job.Total, job.Percent)
			}
		}
		if job.Runs > 0 && job.Phase == component.ExportIdle {
			break
		}
	}

	switch {
	case runErr != nil:
		return exportResult{}, fmt.Errorf("export: %w", runErr)
	case job.Err != nil:
		return exportResult{}, fmt.Errorf("export: %w", job.Err)
	case savedPath == "":
		return exportResult{}, errors.New("export: run did not finish")
	}
	return exportResult{path: savedPath, cards: len(cards)}, nil
}

func revealSignatures(w *ecs.World) {
	ecs.ForEach(w, component.SignatureComponent.Kind(), func(_ ecs.Entity, sig *component.Signature) {
		sig.Revealed = true
		sig.HintVisible = false
		sig.Typed = len([]rune(sig.Message))
	})
}
