package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DefaultDir is where the commands look for their config files.
const DefaultDir = "infra/config"

// Load reads the JSON config for the given key from the directory.
func Load(dir, key string, v interface{}) error {
	path := filepath.Join(dir, fmt.Sprintf("%s.json", key))
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config for %s: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}
	log.Info().Str("key", key).Str("dir", dir).Msg("loaded config")
	return nil
}

// MustLoad loads the config for the given key and panics on failure.
func MustLoad(dir, key string, v interface{}) {
	if err := Load(dir, key, v); err != nil {
		panic(err.Error())
	}
}
