package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/config"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/gemini"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/history"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/logging"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/persona"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/session"
	"github.com/StaccahStaccah/CLI-AI-Chatbot/internal/ui"
)

// Data files live in the directory compa is launched from.
const (
	historyFile  = "history.json"
	contextsFile = "contexts.json"
	configFile   = "config.json"
)

var console = ui.NewConsole(os.Stdin, os.Stdout)

// rootCmd launches the interactive chat. There are no subcommands; compa is
// the chat.
var rootCmd = &cobra.Command{
	Use:   "compa",
	Short: "Compa AI - a Gemini-powered chat companion for your terminal",
	Long: `Compa AI is a terminal chatbot backed by Google Gemini.

It remembers your conversation between runs, lets you resume or discard the
previous session, and can open a fresh chat as one of the personas defined
in contexts.json. Type '!exit' at the prompt to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func runChat(cmd *cobra.Command) error {
	ctx := cmd.Context()

	console.Clear()
	console.Banner()

	// .env is loaded here, so COMPA_DEBUG set there is visible before the
	// debug logs are initialized.
	env, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := logging.Initialize(".", uuid.NewString()); err != nil {
		console.Warnf("Warning: failed to initialize logging: %v", err)
	}
	defer logging.Close()
	logging.Boot("compa starting, model %s", env.ModelName)

	gen := config.LoadGeneration(configFile)

	client, err := gemini.NewClient(ctx, env.APIKey, env.ModelName, gen)
	if err != nil {
		return err
	}

	store := history.NewStore(historyFile, console)
	personas := persona.NewStore(contextsFile)

	boot := &session.Bootstrap{
		Console:  console,
		History:  store,
		Personas: personas,
	}
	workingLog, err := boot.Run()
	if err != nil {
		return err
	}

	chat, err := client.StartChat(ctx, workingLog)
	if err != nil {
		return err
	}

	loop := &session.Loop{
		Console: console,
		History: store,
		Model:   chat,
	}
	return loop.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		console.Warnf("Error: %v", err)
		os.Exit(1)
	}
}
