package system

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
	"github.com/milk9111/papercards/export"
)

const (
	DefaultArchiveName = "with-love.zip"
	defaultExportScale = 2.0
	defaultSettleDelay = 300 * time.Millisecond
	exportBurstHearts  = 8

	statusPreparing = "Preparing the cards… 🤍"
	statusCapturing = "Preparing card %d of %d 🤍"
	statusDone      = "Made with love 💞"
	statusFailed    = "Could not export the cards 💔"
)

var errNoSaver = errors.New("export: no saver configured")

// ExportOptions configures the export system. Zero values fall back to the
// defaults.
type ExportOptions struct {
	Rasterizer  export.Rasterizer
	Saver       export.Saver
	FileName    string
	Scale       float64
	SettleDelay time.Duration
	Logger      *slog.Logger
}

// ExportSystem captures every card into a zip archive, one card per tick,
// while driving the progress overlay.
type ExportSystem struct {
	clock  common.Clock
	hearts *HeartEmitter
	opts   ExportOptions
	logger *slog.Logger
}

func NewExportSystem(clock common.Clock, hearts *HeartEmitter, opts ExportOptions) *ExportSystem {
	if opts.FileName == "" {
		opts.FileName = DefaultArchiveName
	}
	if opts.Scale <= 0 {
		opts.Scale = defaultExportScale
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = defaultSettleDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportSystem{clock: clock, hearts: hearts, opts: opts, logger: logger}
}

// RequestExport asks the export system to start a run. Requests that arrive
// while a run is in progress are dropped.
func RequestExport(w *ecs.World) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.ExportRequestComponent.Kind(), &component.ExportRequest{})
}

// ExportJobOf returns the job singleton, creating an idle one on first use.
func ExportJobOf(w *ecs.World) *component.ExportJob {
	if w == nil {
		return nil
	}
	if ent, ok := ecs.First(w, component.ExportJobComponent.Kind()); ok {
		if job, ok := ecs.Get(w, ent, component.ExportJobComponent.Kind()); ok {
			return job
		}
	}
	job := &component.ExportJob{}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.ExportJobComponent.Kind(), job)
	return job
}

// MarkerGlyph picks the marker glyph for a progress percentage.
func MarkerGlyph(percent int) string {
	switch {
	case percent < 40:
		return "💗"
	case percent < 80:
		return "❤️"
	default:
		return "💘"
	}
}

func (s *ExportSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	job := ExportJobOf(w)
	now := s.clock.Now()

	requested := false
	ecs.ForEach(w, component.ExportRequestComponent.Kind(), func(ent ecs.Entity, _ *component.ExportRequest) {
		requested = true
		ecs.DestroyEntity(w, ent)
	})
	if requested {
		if job.Phase != component.ExportIdle {
			s.logger.Debug("export already running, request dropped", "job_id", job.ID, "phase", job.Phase.String())
		} else {
			s.start(w, job)
			return
		}
	}

	switch job.Phase {
	case component.ExportPreparing:
		s.prepare(w, job, now)
	case component.ExportCapturing:
		s.capture(w, job)
	case component.ExportBursting:
		s.burst(w, job)
	case component.ExportPackaging:
		s.pack(w, job, now)
	case component.ExportRestoring:
		restoreCards(w)
		StartOverlayFade(OverlayOf(w), now)
		job.Phase = component.ExportIdle
	}
}

func (s *ExportSystem) start(w *ecs.World, job *component.ExportJob) {
	job.ID = uuid.NewString()
	job.Phase = component.ExportPreparing
	job.Runs++
	job.Index = 0
	job.Percent = 0
	job.Entries = nil
	job.Err = nil
	job.SavedPath = ""
	job.FontsWaited = false
	job.SettleUntil = time.Time{}

	cards := CardsInOrder(w)
	job.Cards = make([]uint64, 0, len(cards))
	for _, e := range cards {
		job.Cards = append(job.Cards, uint64(e))
	}
	job.Total = len(job.Cards)

	o := OverlayOf(w)
	o.Visible = true
	o.Opacity = 1
	o.Fading = false
	o.Failed = false
	setProgress(o, 0)
	o.StatusText = statusPreparing

	for _, e := range cards {
		card, ok := ecs.Get(w, e, component.CardComponent.Kind())
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		saved := *t
		card.Saved = &saved
		*t = component.Identity()
		card.TransitionsSuspended = true
		card.ForceVisible = true
	}
	s.logger.Info("export started", "job_id", job.ID, "cards", job.Total)
}

func (s *ExportSystem) prepare(w *ecs.World, job *component.ExportJob, now time.Time) {
	if !job.FontsWaited {
		if !SessionOf(w).FontsReady {
			return
		}
		job.FontsWaited = true
		job.SettleUntil = now.Add(s.opts.SettleDelay)
		return
	}
	if now.Before(job.SettleUntil) {
		return
	}
	job.Phase = component.ExportCapturing
}

func (s *ExportSystem) capture(w *ecs.World, job *component.ExportJob) {
	o := OverlayOf(w)
	if job.Index >= job.Total {
		job.Percent = export.Percent(job.Total, job.Total)
		setProgress(o, job.Percent)
		job.Phase = component.ExportBursting
		return
	}
	if s.opts.Rasterizer == nil {
		s.fail(w, job, errors.New("export: no rasterizer configured"))
		return
	}

	e := ecs.Entity(job.Cards[job.Index])
	card, ok := ecs.Get(w, e, component.CardComponent.Kind())
	if !ok {
		s.fail(w, job, fmt.Errorf("export: card %d no longer exists", job.Index+1))
		return
	}
	img, err := s.opts.Rasterizer.Rasterize(exportCard(w, e, card), export.Options{
		Scale:                 s.opts.Scale,
		AllowCrossOrigin:      true,
		TransparentBackground: true,
	})
	if err != nil {
		s.fail(w, job, fmt.Errorf("export: rasterize %s: %w", card.ID, err))
		return
	}
	data, err := export.EncodePNG(img)
	if err != nil {
		s.fail(w, job, fmt.Errorf("export: %s: %w", card.ID, err))
		return
	}
	job.Entries = append(job.Entries, component.ArchiveEntry{Name: export.EntryName(job.Index), Data: data})
	job.Index++
	job.Percent = export.Percent(job.Index, job.Total)
	setProgress(o, job.Percent)
	o.StatusText = fmt.Sprintf(statusCapturing, job.Index, job.Total)
	s.logger.Debug("card captured", "job_id", job.ID, "card", card.ID, "percent", job.Percent)
}

func (s *ExportSystem) burst(w *ecs.World, job *component.ExportJob) {
	o := OverlayOf(w)
	o.StatusText = statusDone
	if s.hearts != nil {
		x, y := o.MarkerPosition()
		if err := s.hearts.Burst(w, x, y, exportBurstHearts); err != nil {
			s.logger.Warn("export: heart burst", "job_id", job.ID, "error", err)
		}
	}
	job.Phase = component.ExportPackaging
}

func (s *ExportSystem) pack(w *ecs.World, job *component.ExportJob, now time.Time) {
	archive := export.NewArchive(now)
	for _, entry := range job.Entries {
		if err := archive.Add(entry.Name, entry.Data); err != nil {
			s.fail(w, job, err)
			return
		}
	}
	data, err := archive.Finalize()
	if err != nil {
		s.fail(w, job, err)
		return
	}
	if s.opts.Saver == nil {
		s.fail(w, job, errNoSaver)
		return
	}
	path, err := s.opts.Saver.Save(s.opts.FileName, data)
	if err != nil {
		s.fail(w, job, err)
		return
	}
	job.SavedPath = path
	job.Entries = nil
	job.Phase = component.ExportRestoring
	w.Events().Push(ecs.Event{Type: ecs.EventExportDone, Data: path})
	s.logger.Info("export saved", "job_id", job.ID, "path", path, "bytes", humanize.Bytes(uint64(len(data))))
}

func (s *ExportSystem) fail(w *ecs.World, job *component.ExportJob, err error) {
	job.Err = err
	job.Entries = nil
	job.Phase = component.ExportIdle
	s.logger.Error("export failed", "job_id", job.ID, "error", err)

	o := OverlayOf(w)
	o.Failed = true
	o.StatusText = statusFailed
	restoreCards(w)
	StartOverlayFade(o, s.clock.Now())
	w.Events().Push(ecs.Event{Type: ecs.EventExportFailed, Data: err})
}

// restoreCards puts back every snapshotted pose and lifts the export-only
// overrides.
func restoreCards(w *ecs.World) {
	ecs.ForEach2(w, component.CardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, card *component.Card, t *component.Transform) {
		if card.Saved != nil {
			*t = *card.Saved
			card.Saved = nil
		}
		card.TransitionsSuspended = false
		card.ForceVisible = false
	})
}

func setProgress(o *component.ProgressOverlay, percent int) {
	o.FillPercent = percent
	o.PercentText = fmt.Sprintf("%d%%", percent)
	o.MarkerPercent = percent
	o.MarkerGlyph = MarkerGlyph(percent)
}

func exportCard(w *ecs.World, e ecs.Entity, card *component.Card) export.Card {
	out := export.Card{
		ID:         card.ID,
		Index:      card.Index,
		Width:      card.Width,
		Height:     card.Height,
		Message:    card.Message,
		Background: card.Background,
	}
	out.Signature, _ = CardLabels(w, e, card)
	return out
}
