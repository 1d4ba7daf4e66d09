package config

import (
	"encoding/json"
	"os"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/logging"
)

// Generation holds the model generation parameters.
type Generation struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	TopK        int     `json:"top_k"`
	TopP        float64 `json:"top_p"`
}

// DefaultGeneration returns the built-in generation defaults.
func DefaultGeneration() Generation {
	return Generation{
		Temperature: 1.0,
		MaxTokens:   200,
		TopK:        40,
		TopP:        0.9,
	}
}

// LoadGeneration reads the optional generation config file. Keys present in
// the file override defaults; absent keys keep their defaults and unknown
// keys are ignored. An absent or corrupt file yields pure defaults with no
// user-facing message; the reason lands in the debug log.
func LoadGeneration(path string) Generation {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Config("no generation config at %s, using defaults", path)
		} else {
			logging.ConfigWarn("generation config unreadable, using defaults: %v", err)
		}
		return DefaultGeneration()
	}

	gen := DefaultGeneration()
	if err := json.Unmarshal(data, &gen); err != nil {
		logging.ConfigWarn("generation config corrupt, using defaults: %v", err)
		return DefaultGeneration()
	}
	logging.Config("generation config loaded from %s: temperature=%.2f max_tokens=%d top_k=%d top_p=%.2f",
		path, gen.Temperature, gen.MaxTokens, gen.TopK, gen.TopP)
	return gen
}
