package train

import (
	"github.com/rs/zerolog/log"
	"github.com/sixsense/rule-learn/infra/config"
	"github.com/sixsense/rule-learn/internal/storage"
)

// Model is the identifier of the linear model within storage and metrics.
const Model = "linear"

// Config is the trainer configuration.
type Config struct {
	Epochs       int     `json:"epochs"`
	BatchSize    int     `json:"batch_size"`
	TrainSamples int     `json:"train_samples"`
	EvalSamples  int     `json:"eval_samples"`
	LearningRate float64 `json:"learning_rate"`
	InputSize    int     `json:"input_size"`
	MetricsPort  int     `json:"metrics_port"`
}

// NewConfig creates the default trainer configuration.
func NewConfig() Config {
	return Config{
		Epochs:       50,
		BatchSize:    20,
		TrainSamples: 6000,
		EvalSamples:  200,
		LearningRate: 0.001,
		InputSize:    6,
	}
}

// LoadConfig loads the trainer configuration for the given key,
// falling back to the compiled defaults if no config file is present.
func LoadConfig(key string) Config {
	cfg := NewConfig()
	if err := config.Load(key, &cfg); err != nil {
		log.Warn().Err(err).Str("config", key).Msg("using default trainer config")
	}
	return cfg
}

// ModelKey is the storage key the trained model parameters are persisted under.
func ModelKey() storage.Key {
	return storage.Key{
		Name:  Model,
		Label: "weights",
	}
}

// LogKey is the storage key the training log is exported under.
func LogKey() storage.Key {
	return storage.Key{
		Name:  Model,
		Label: "log",
	}
}
