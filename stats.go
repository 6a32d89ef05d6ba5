package glyphic

import (
	"log/slog"
	"time"
)

// FrameStats counts tick outcomes. It is diagnostic only; nothing in the
// frame loop depends on it. Skipped ticks acquire nothing and are not
// counted.
type FrameStats struct {
	Presented uint64
	Dropped   uint64
	Lost      uint64
	Fatal     uint64

	// LastTick is the CPU time spent in the most recent acquiring tick.
	LastTick time.Duration
}

func (s *FrameStats) record(o Outcome, d time.Duration) {
	s.LastTick = d
	switch o {
	case OutcomePresented:
		s.Presented++
	case OutcomeDropped:
		s.Dropped++
	case OutcomeLost:
		s.Lost++
	case OutcomeFatal:
		s.Fatal++
	}
}

// LogValue implements slog.LogValuer.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("presented", s.Presented),
		slog.Uint64("dropped", s.Dropped),
		slog.Uint64("lost", s.Lost),
		slog.Uint64("fatal", s.Fatal),
		slog.Duration("last_tick", s.LastTick),
	)
}
