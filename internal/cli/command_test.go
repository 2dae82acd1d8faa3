package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "signbridge [text]" {
		t.Errorf("Expected Use to be 'signbridge [text]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "sign-language") {
		t.Errorf("Expected Short description to mention sign-language")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"assets", true},
		{"vocab", true},
		{"output", true},
		{"history-db", true},
		{"batch", true},
		{"transcribe", true},
		{"list-models", true},
		{"archive", true},
		{"no-pause", true},
		{"skip-compose", true},
		{"compose-timeout", true},
		{"serve", true},
		{"listen", true},
		{"cors-origin", true},
		{"max-compositions", true},
		{"max-concurrent", true},
		{"rate-limit", true},
		{"openai-model", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	assetsFlag := cmd.Flags().Lookup("assets")
	if assetsFlag == nil {
		t.Fatal("assets flag not found")
	}
	if assetsFlag.DefValue != "dataset" {
		t.Errorf("Expected default assets dir to be dataset, got %s", assetsFlag.DefValue)
	}

	listenFlag := cmd.Flags().Lookup("listen")
	if listenFlag == nil {
		t.Fatal("listen flag not found")
	}
	if listenFlag.DefValue != ":8000" {
		t.Errorf("Expected default listen address to be :8000, got %s", listenFlag.DefValue)
	}

	timeoutFlag := cmd.Flags().Lookup("compose-timeout")
	if timeoutFlag == nil {
		t.Fatal("compose-timeout flag not found")
	}
	if timeoutFlag.DefValue != "2m0s" {
		t.Errorf("Expected default compose timeout to be 2m0s, got %s", timeoutFlag.DefValue)
	}
}

func TestFlagParsing(t *testing.T) {
	// Reset global viper state after the test; CreateRootCommand binds
	// flags into the shared viper instance, which would otherwise leak
	// into later tests.
	defer viper.Reset()

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	cmd.SetArgs([]string{
		"--assets", "/opt/clips",
		"--listen", ":9000",
		"--serve",
		"--cors-origin", "http://localhost:3000",
		"--max-compositions", "2",
		"hello world",
	})
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return nil }

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if flags.AssetsDir != "/opt/clips" {
		t.Errorf("AssetsDir = %s", flags.AssetsDir)
	}
	if flags.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %s", flags.ListenAddr)
	}
	if !flags.Serve {
		t.Error("Expected Serve to be true")
	}
	if len(flags.CORSOrigins) != 1 || flags.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v", flags.CORSOrigins)
	}
	if flags.MaxCompositions != 2 {
		t.Errorf("MaxCompositions = %d", flags.MaxCompositions)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "test-config.yaml")
	content := `assets:
  directory: /srv/clips
server:
  listen: ":8080"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	InitConfig(cfgPath)

	if got := viper.GetString("assets.directory"); got != "/srv/clips" {
		t.Errorf("assets.directory = %s, want /srv/clips", got)
	}
	if got := viper.GetString("server.listen"); got != ":8080" {
		t.Errorf("server.listen = %s, want :8080", got)
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "env-key")
		if got := GetOpenAIKey(); got != "env-key" {
			t.Errorf("GetOpenAIKey() = %s, want env-key", got)
		}
	})

	t.Run("from config", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		viper.Set("transcribe.openai_key", "config-key")
		defer viper.Set("transcribe.openai_key", "")
		if got := GetOpenAIKey(); got != "config-key" {
			t.Errorf("GetOpenAIKey() = %s, want config-key", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		viper.Set("transcribe.openai_key", "")
		if got := GetOpenAIKey(); got != "" {
			t.Errorf("GetOpenAIKey() = %s, want empty", got)
		}
	})
}
