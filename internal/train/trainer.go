package train

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sixsense/rule-learn/internal/buffer"
	"github.com/sixsense/rule-learn/internal/metrics"
	"github.com/sixsense/rule-learn/internal/model"
	"github.com/sixsense/rule-learn/internal/optim"
	"github.com/sixsense/rule-learn/internal/sample"
	"github.com/sixsense/rule-learn/internal/storage"
)

// State is the phase the trainer is in.
type State int

const (
	Initialized State = iota
	EpochRunning
	EpochEvaluated
	Done
)

// Reporter consumes the training log at the end of a run.
// Each point is an (accuracy, mean loss) pair indexed by epoch.
type Reporter interface {
	Report(points [][]float64) error
}

// Trainer owns the model, the optimizer and the training log for one run.
// It trains on a single fixed dataset reused identically across all epochs.
// That matches the learning task this reproduces, it is not resampled per epoch.
type Trainer struct {
	config   Config
	model    *model.Linear
	optim    optim.Optimizer
	store    storage.Persistence
	reporter Reporter
	gen      *sample.Generator

	log        *buffer.MultiBuffer
	runID      string
	state      State
	iterations int
}

// New creates a new trainer for the given collaborators.
func New(config Config, m *model.Linear, o optim.Optimizer, store storage.Persistence, reporter Reporter, gen *sample.Generator) *Trainer {
	return &Trainer{
		config:   config,
		model:    m,
		optim:    o,
		store:    store,
		reporter: reporter,
		gen:      gen,
		log:      buffer.NewMultiBuffer(config.Epochs),
		runID:    uuid.New().String(),
		state:    Initialized,
	}
}

// State returns the current trainer state.
func (t *Trainer) State() State {
	return t.state
}

// Log returns the (accuracy, mean loss) points collected so far.
func (t *Trainer) Log() [][]float64 {
	return t.log.Get()
}

// Run drives the full training loop and persists the model parameters at the end.
// Numeric instability is not guarded, a NaN loss propagates into the log.
func (t *Trainer) Run() error {
	log.Info().
		Str("run", t.runID).
		Int("epochs", t.config.Epochs).
		Int("batch-size", t.config.BatchSize).
		Int("samples", t.config.TrainSamples).
		Float64("learning-rate", t.config.LearningRate).
		Msg("starting training run")

	train := sample.New(t.gen, t.config.TrainSamples)
	evaluator := NewEvaluator(t.config.EvalSamples, t.gen)

	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		t.state = EpochRunning
		losses := buffer.NewStats()
		for _, batch := range train.Batches(t.config.BatchSize) {
			loss := t.model.Loss(batch.X, batch.Y)
			grad := t.model.Gradients(batch.X, batch.Y)
			t.optim.Step(t.model.Params(), grad)
			t.iterations++
			losses.Push(loss)
			metrics.Observer.IncrementEvents("batch", Model)
		}
		accuracy := evaluator.Evaluate(t.model)
		t.log.Push(accuracy, losses.Avg())
		t.state = EpochEvaluated
		log.Info().
			Int("epoch", epoch).
			Float64("loss", losses.Avg()).
			Float64("accuracy", accuracy).
			Msg("epoch done")
		metrics.Observer.IncrementEvents("epoch", Model)
	}
	t.state = Done

	err := t.model.Save(t.store, ModelKey(), t.runID, t.iterations)
	if err != nil {
		return fmt.Errorf("could not persist model: %w", err)
	}

	if t.reporter != nil {
		err = t.reporter.Report(t.log.Get())
		if err != nil {
			return fmt.Errorf("could not report training log: %w", err)
		}
	}

	summary, err := evaluator.Summary(t.model)
	if err != nil {
		return fmt.Errorf("could not summarise evaluation: %w", err)
	}
	fmt.Println(summary)

	log.Info().Str("run", t.runID).Int("iterations", t.iterations).Msg("training run done")
	return nil
}
