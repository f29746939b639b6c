package main

import (
	"log"
	"os"

	"github.com/rs/zerolog"
	"github.com/sixsense/rule-learn/internal/predict"
	"github.com/sixsense/rule-learn/internal/storage"
	json_storage "github.com/sixsense/rule-learn/internal/storage/file/json"
	"github.com/sixsense/rule-learn/internal/train"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	// an optional positional argument overrides the storage root
	if len(os.Args) > 1 {
		storage.DefaultDir = os.Args[1]
	}

	cfg := train.LoadConfig("trainer")
	store := json_storage.NewJsonBlob("models", train.Model)

	predictor := predict.New(store, cfg.InputSize, os.Stdout)
	if err := predictor.Predict(train.ModelKey(), predict.Demo()); err != nil {
		log.Fatalf("error running prediction: %s", err.Error())
	}
}
