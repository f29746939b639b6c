package plot

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog/log"
	rulemath "github.com/sixsense/rule-learn/internal/math"
	"github.com/sixsense/rule-learn/internal/storage"
)

// Renderer renders the training log as console line charts,
// one for the accuracy series and one for the mean loss series.
type Renderer struct {
	out    io.Writer
	height int
}

// NewRenderer creates a new renderer on the given writer.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		height: 10,
	}
}

// Report renders the (accuracy, mean loss) points indexed by epoch
// and logs the linear trend of the accuracy series.
func (r *Renderer) Report(points [][]float64) error {
	if len(points) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	epochs := make([]float64, len(points))
	acc := make([]float64, len(points))
	loss := make([]float64, len(points))
	for i, p := range points {
		epochs[i] = float64(i)
		acc[i] = p[0]
		loss[i] = p[1]
	}

	fmt.Fprintln(r.out, asciigraph.Plot(acc,
		asciigraph.Height(r.height),
		asciigraph.Caption("accuracy per epoch")))
	fmt.Fprintln(r.out, asciigraph.Plot(loss,
		asciigraph.Height(r.height),
		asciigraph.Caption("mean loss per epoch")))

	trend, err := rulemath.Fit(epochs, acc, 1)
	if err != nil {
		return fmt.Errorf("could not fit accuracy trend: %w", err)
	}
	log.Info().Float64("slope", trend[1]).Float64("offset", trend[0]).Msg("accuracy trend")
	return nil
}

// Export stores the raw training log points under the given key,
// so an external plotting sidecar can pick them up.
func Export(store storage.Persistence, k storage.Key, points [][]float64) error {
	err := store.Store(k, points)
	if err != nil {
		return fmt.Errorf("could not export training log '%s': %w", k.Path(), err)
	}
	return nil
}
