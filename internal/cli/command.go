package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/silentspeaker/signbridge/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "signbridge [text]",
		Short: "Text to sign-language video translator",
		Long: `signbridge translates English text into sign-language videos by
stitching per-word clips from a local dataset. Words without a clip are
finger-spelled letter by letter; numbers are signed digit by digit.

Examples:
  signbridge "hello world"             # Translate a sentence via CLI
  signbridge --serve                   # Run the HTTP translation service
  signbridge --batch sentences.txt     # Translate multiple sentences from file
  signbridge --transcribe speech.mp3   # Transcribe audio, then translate it`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.signbridge.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.AssetsDir, "assets", "a", flags.AssetsDir, "Directory containing sign clips")
	cmd.Flags().StringVar(&flags.VocabFile, "vocab", flags.VocabFile, "Vocabulary file (one supported word or phrase per line)")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory for composed videos")
	cmd.Flags().StringVar(&flags.HistoryDB, "history-db", "", "SQLite database for translation history (empty disables history)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate sentences from file (one per line)")
	cmd.Flags().StringVar(&flags.TranscribeFile, "transcribe", "", "Transcribe an audio file with OpenAI and translate the result")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move previously composed videos into an archive directory")
	cmd.Flags().BoolVar(&flags.NoPause, "no-pause", false, "Do not insert pause clips between words")
	cmd.Flags().BoolVar(&flags.SkipCompose, "skip-compose", false, "Resolve clips without running ffmpeg")
	cmd.Flags().DurationVar(&flags.ComposeTimeout, "compose-timeout", flags.ComposeTimeout, "Timeout for a single ffmpeg composition")

	// Server flags
	cmd.Flags().BoolVar(&flags.Serve, "serve", false, "Run the HTTP translation service")
	cmd.Flags().StringVar(&flags.ListenAddr, "listen", flags.ListenAddr, "Listen address for the HTTP service")
	cmd.Flags().StringSliceVar(&flags.CORSOrigins, "cors-origin", flags.CORSOrigins, "Allowed CORS origins")
	cmd.Flags().IntVar(&flags.MaxCompositions, "max-compositions", flags.MaxCompositions, "Maximum concurrent ffmpeg compositions")

	// Batch flags
	cmd.Flags().IntVar(&flags.MaxConcurrent, "max-concurrent", flags.MaxConcurrent, "Maximum concurrent batch translations")
	cmd.Flags().IntVar(&flags.RateLimitPerMin, "rate-limit", flags.RateLimitPerMin, "Batch translations per minute (0 disables limiting)")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI transcription model: whisper-1, gpt-4o-transcribe, gpt-4o-mini-transcribe")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("assets.directory", cmd.Flags().Lookup("assets"))
	viper.BindPFlag("assets.vocabulary", cmd.Flags().Lookup("vocab"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.history_db", cmd.Flags().Lookup("history-db"))
	viper.BindPFlag("server.listen", cmd.Flags().Lookup("listen"))
	viper.BindPFlag("server.cors_origins", cmd.Flags().Lookup("cors-origin"))
	viper.BindPFlag("compose.timeout", cmd.Flags().Lookup("compose-timeout"))
	viper.BindPFlag("compose.max_concurrent", cmd.Flags().Lookup("max-compositions"))
	viper.BindPFlag("batch.max_concurrent", cmd.Flags().Lookup("max-concurrent"))
	viper.BindPFlag("batch.rate_limit", cmd.Flags().Lookup("rate-limit"))
	viper.BindPFlag("transcribe.openai_model", cmd.Flags().Lookup("openai-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".signbridge" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".signbridge")
	}

	// Environment variables
	viper.SetEnvPrefix("SIGNBRIDGE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("transcribe.openai_key")
}
