package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/rs/zerolog/log"
)

// Path is the root of the config files.
// It is a variable to be able to adjust for the tests.
var Path = "infra/config"

// Load loads the config for the given key into the given struct.
func Load(key string, v interface{}) error {
	b, err := ioutil.ReadFile(fmt.Sprintf("%s/%s.json", Path, key))
	if err != nil {
		return fmt.Errorf("could not load config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("config", key).Msg("loaded config")

	return nil
}

// MustLoad loads the config for the given key and panics on failure.
func MustLoad(key string, v interface{}) {
	if err := Load(key, v); err != nil {
		panic(err.Error())
	}
}
