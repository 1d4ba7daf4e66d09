// Package config loads the environment credentials and the optional model
// generation settings for Compa AI.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/logging"
)

// Env holds the required environment inputs.
type Env struct {
	APIKey    string
	ModelName string
}

// LoadEnv reads a .env file if one is present, then requires API_KEY and
// MODEL_NAME. A missing .env file is not an error; the variables may come
// from the process environment directly.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil {
		logging.Config("no .env file loaded: %v", err)
	}

	env := Env{
		APIKey:    os.Getenv("API_KEY"),
		ModelName: os.Getenv("MODEL_NAME"),
	}
	if env.APIKey == "" || env.ModelName == "" {
		return Env{}, fmt.Errorf("API_KEY and MODEL_NAME must be set in .env file or environment variables")
	}
	logging.Config("environment loaded, model %s", env.ModelName)
	return env, nil
}
