package debug

import (
	"log/slog"
	"time"

	"github.com/soocke/boxlabeler-go/domain/render"
)

// StartRenderStatsLogger periodically logs render cache effectiveness and
// paint count. Both sources must be safe to call from another goroutine.
func StartRenderStatsLogger(interval time.Duration, logger *slog.Logger, stats func() render.Stats, paints func() uint64) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		var last render.Stats
		for range t.C {
			s := stats()
			if s == last {
				continue
			}
			last = s
			attrs := []any{
				slog.Uint64("hits", s.Hits),
				slog.Uint64("misses", s.Misses),
				slog.Float64("hit_ratio", HitRatio(s)),
			}
			if paints != nil {
				attrs = append(attrs, slog.Uint64("paints", paints()))
			}
			logger.Info("render-cache", attrs...)
		}
	}()
}

// HitRatio returns hits over all renders, or 0 before the first render.
func HitRatio(s render.Stats) float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
