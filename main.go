package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"codeway/config"
	"codeway/internal/analysis"
	"codeway/internal/llm"
	"codeway/logging"
)

var (
	flagModel     string
	flagMaxTokens int
	flagProvider  string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "codeway CODE_FILE...",
	Short: "Analyzes code files using the Code Way framework via a text-generation API",
	Long: `codeway reads one or more code files, combines them with the Code Way
framework description (prompts/codeway.md next to the executable), sends a
single request to the configured text-generation API, and prints the analysis.

The Anthropic provider requires the API key in the ` + config.APIKeyEnvVar + `
environment variable.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagModel, "model", "", "model to use (default from configuration)")
	rootCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "maximum number of tokens for the analysis response")
	rootCmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider: anthropic or ollama")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print the full prompts before sending")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagMaxTokens > 0 {
		cfg.MaxTokens = flagMaxTokens
	}
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	cfg.Verbose = flagVerbose

	logging.Init(cfg.Logging)

	// The credential check comes before any file work: the run is pointless
	// without it.
	apiKey := os.Getenv(config.APIKeyEnvVar)
	if cfg.Provider == llm.ProviderAnthropic && apiKey == "" {
		logrus.Errorf("Environment variable '%s' not set.", config.APIKeyEnvVar)
		logrus.Error("Please set the environment variable with your Anthropic API key.")
		return fmt.Errorf("missing API credential")
	}

	client, err := llm.NewClient(llm.Config{
		Provider:   cfg.Provider,
		APIKey:     apiKey,
		BaseURL:    cfg.BaseURL,
		OllamaHost: cfg.OllamaHost,
		Model:      cfg.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	engine := analysis.NewEngine(cfg, client)
	text, err := engine.Run(cmd.Context(), args)
	if err != nil {
		// Call failures were already reported with status detail and hints
		// by the engine; everything else is logged here.
		if !llm.IsCallError(err) {
			logrus.Errorf("%v", err)
		}
		return fmt.Errorf("failed to get analysis")
	}

	fmt.Println("\n--- Code Way Analysis Response ---")
	fmt.Println(text)
	fmt.Println("----------------------------------")
	return nil
}

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
