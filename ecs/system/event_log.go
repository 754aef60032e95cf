package system

import (
	"log/slog"

	"github.com/milk9111/papercards/ecs"
)

// EventLogSystem drains the event queue at the end of a tick, logging each
// event and handing it to OnEvent when set. Run it last.
type EventLogSystem struct {
	logger  *slog.Logger
	OnEvent func(ecs.Event)
}

func NewEventLogSystem(logger *slog.Logger, onEvent func(ecs.Event)) *EventLogSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogSystem{logger: logger, OnEvent: onEvent}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventExportFailed:
			s.logger.Warn("event", "type", evt.Type, "error", evt.Data)
		default:
			s.logger.Debug("event", "type", evt.Type, "data", evt.Data)
		}
		if s.OnEvent != nil {
			s.OnEvent(evt)
		}
	}
}
