package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	AssetsDir      string
	VocabFile      string
	OutputDir      string
	HistoryDB      string
	BatchFile      string
	TranscribeFile string
	ListModels     bool
	Archive        bool

	// Translation flags
	NoPause     bool
	SkipCompose bool

	// Composition flags
	ComposeTimeout  time.Duration
	MaxCompositions int

	// Server flags
	Serve       bool
	ListenAddr  string
	CORSOrigins []string

	// Batch flags
	MaxConcurrent   int
	RateLimitPerMin int

	// OpenAI flags
	OpenAIModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AssetsDir:       "dataset",
		VocabFile:       "supported_words.txt",
		OutputDir:       "outputs",
		ListenAddr:      ":8000",
		CORSOrigins:     []string{"*"},
		ComposeTimeout:  2 * time.Minute,
		MaxCompositions: 4,
		MaxConcurrent:   3,
		RateLimitPerMin: 60,
		OpenAIModel:     "whisper-1",
	}
}
