package main

import (
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/sixsense/rule-learn/internal/metrics"
	"github.com/sixsense/rule-learn/internal/model"
	"github.com/sixsense/rule-learn/internal/optim"
	"github.com/sixsense/rule-learn/internal/plot"
	"github.com/sixsense/rule-learn/internal/predict"
	"github.com/sixsense/rule-learn/internal/sample"
	json_storage "github.com/sixsense/rule-learn/internal/storage/file/json"
	"github.com/sixsense/rule-learn/internal/train"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	cfg := train.LoadConfig("trainer")
	if cfg.MetricsPort > 0 {
		metrics.Serve(cfg.MetricsPort)
	}

	gen := sample.NewGenerator(cfg.InputSize, time.Now().UnixNano())
	store := json_storage.NewJsonBlob("models", train.Model)

	trainer := train.New(cfg,
		model.NewLinear(cfg.InputSize),
		optim.NewAdam(cfg.LearningRate),
		store,
		plot.NewRenderer(os.Stdout),
		gen)
	if err := trainer.Run(); err != nil {
		log.Fatalf("error running training: %s", err.Error())
	}

	logStore := json_storage.NewJsonBlob("logs", train.Model)
	if err := plot.Export(logStore, train.LogKey(), trainer.Log()); err != nil {
		log.Fatalf("error exporting training log: %s", err.Error())
	}

	// classify the demonstration vectors with the freshly persisted weights
	predictor := predict.New(store, cfg.InputSize, os.Stdout)
	if err := predictor.Predict(train.ModelKey(), predict.Demo()); err != nil {
		log.Fatalf("error running prediction: %s", err.Error())
	}
}
