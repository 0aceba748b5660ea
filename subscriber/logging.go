package subscriber

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tilecollapse/gridwfc/grid"
)

// LoggingSubscriber writes one structured log line per event, tagged
// with a run id generated once per attached generation so concurrent or
// sequential runs stay distinguishable in aggregated logs.
type LoggingSubscriber struct {
	logger zerolog.Logger
	runID  string
}

// NewLoggingSubscriber wraps logger; a fresh run id is minted on every
// OnGenerationStart.
func NewLoggingSubscriber(logger zerolog.Logger) *LoggingSubscriber {
	return &LoggingSubscriber{logger: logger}
}

func (l *LoggingSubscriber) OnGenerationStart(size grid.Size) {
	l.runID = uuid.NewString()
	l.logger.Info().
		Str("run_id", l.runID).
		Int("width", size.Width).
		Int("height", size.Height).
		Msg("generation start")
}

func (l *LoggingSubscriber) OnCollapse(p grid.Position, tileTypeID uint64, iteration int) {
	l.logger.Debug().
		Str("run_id", l.runID).
		Str("position", p.String()).
		Uint64("tile_type_id", tileTypeID).
		Int("iteration", iteration).
		Msg("collapse")
}

func (l *LoggingSubscriber) OnGenerationEnd(success bool, kind string) {
	l.logger.Info().
		Str("run_id", l.runID).
		Bool("success", success).
		Str("failure_kind", kind).
		Msg("generation end")
}
