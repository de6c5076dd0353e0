package debug

import (
	"testing"

	"github.com/soocke/boxlabeler-go/domain/render"
)

func TestHitRatio(t *testing.T) {
	if HitRatio(render.Stats{}) != 0 {
		t.Fatalf("empty stats should be 0")
	}
	if got := HitRatio(render.Stats{Hits: 3, Misses: 1}); got != 0.75 {
		t.Fatalf("got %v, want 0.75", got)
	}
}
