package predict

import (
	"fmt"
	"io"
	"math"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/sixsense/rule-learn/internal/metrics"
	"github.com/sixsense/rule-learn/internal/model"
	"github.com/sixsense/rule-learn/internal/storage"
	"github.com/sixsense/rule-learn/internal/train"
)

// Predictor classifies externally supplied vectors with persisted model parameters.
type Predictor struct {
	store storage.Persistence
	dim   int
	out   io.Writer
}

// New creates a new predictor reading snapshots from the given storage.
func New(store storage.Persistence, dim int, out io.Writer) *Predictor {
	return &Predictor{
		store: store,
		dim:   dim,
		out:   out,
	}
}

// Predict loads the model persisted under the given key and classifies
// each of the given vectors, printing the input, the rounded class and
// the raw probability. It fails if the key holds no compatible snapshot.
func (p *Predictor) Predict(k storage.Key, input []xmath.Vector) error {
	m, err := model.Load(p.store, k, p.dim)
	if err != nil {
		return fmt.Errorf("could not load model: %w", err)
	}

	for _, vec := range input {
		prob := m.Predict(vec)
		fmt.Fprintf(p.out, "input: %v, class: %d, probability: %f\n", vec, int(math.Round(prob)), prob)
		metrics.Observer.IncrementEvents("predict", train.Model)
	}
	return nil
}
