package train

import (
	"bytes"
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
	"github.com/sixsense/rule-learn/internal/metrics"
	"github.com/sixsense/rule-learn/internal/model"
	"github.com/sixsense/rule-learn/internal/sample"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
)

// Threshold is the probability above which a prediction counts as positive.
const Threshold = 0.5

// Evaluator scores a model on a freshly sampled holdout set.
type Evaluator struct {
	samples int
	gen     *sample.Generator
}

// NewEvaluator creates a new evaluator drawing holdout sets of the given size.
func NewEvaluator(samples int, gen *sample.Generator) *Evaluator {
	return &Evaluator{
		samples: samples,
		gen:     gen,
	}
}

// Evaluate scores the model on a fresh holdout set and returns the fraction
// of correctly classified samples. No gradients are involved in this path.
func (e *Evaluator) Evaluate(m *model.Linear) float64 {
	ds := sample.New(e.gen, e.samples)
	pred := m.PredictBatch(ds.X)

	correct, wrong := 0, 0
	for i, p := range pred {
		if (p >= Threshold) == (ds.Y[i] == 1) {
			correct++
		} else {
			wrong++
		}
	}

	positives := ds.Positives()
	accuracy := float64(correct) / float64(correct+wrong)
	log.Info().
		Int("positive", positives).
		Int("negative", ds.Len()-positives).
		Int("correct", correct).
		Int("wrong", wrong).
		Float64("accuracy", accuracy).
		Msg("evaluation")
	metrics.Observer.IncrementEvents("evaluate", Model)
	return accuracy
}

// Summary scores the model on a fresh holdout set and returns the
// precision/recall summary of its confusion matrix.
func (e *Evaluator) Summary(m *model.Linear) (string, error) {
	ds := sample.New(e.gen, e.samples)
	pred := m.PredictBatch(ds.X)

	classified := xmath.Vec(len(pred))
	for i, p := range pred {
		if p >= Threshold {
			classified[i] = 1
		}
	}

	ref, err := instances(ds.X, ds.Y)
	if err != nil {
		return "", fmt.Errorf("could not build reference instances: %w", err)
	}
	got, err := instances(ds.X, classified)
	if err != nil {
		return "", fmt.Errorf("could not build prediction instances: %w", err)
	}

	confusionMat, err := evaluation.GetConfusionMatrix(ref, got)
	if err != nil {
		return "", fmt.Errorf("could not get confusion matrix: %w", err)
	}
	return evaluation.GetSummary(confusionMat), nil
}

// instances converts the features and labels into golearn instances,
// with the class attribute in the last column.
func instances(x xmath.Matrix, y xmath.Vector) (base.FixedDataGrid, error) {
	buf := new(bytes.Buffer)
	for i, row := range x {
		for _, v := range row {
			fmt.Fprintf(buf, "%f,", v)
		}
		label := "neg"
		if y[i] == 1 {
			label = "pos"
		}
		fmt.Fprintln(buf, label)
	}
	return base.ParseCSVToInstancesFromReader(bytes.NewReader(buf.Bytes()), false)
}
