package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/silentspeaker/signbridge/internal/archive"
	"github.com/silentspeaker/signbridge/internal/cli"
	"github.com/silentspeaker/signbridge/internal/processor"
	"github.com/silentspeaker/signbridge/internal/transcribe"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		if err := archive.ArchiveOutputs(flags.OutputDir); err != nil {
			return fmt.Errorf("failed to archive outputs: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := transcribe.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	if flags.BatchFile == "" && flags.TranscribeFile == "" && !flags.Serve && len(args) == 0 {
		return cmd.Help()
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	// The service and long batch runs stop cleanly on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case flags.Serve:
		return proc.RunServer(ctx)
	case flags.BatchFile != "":
		return proc.ProcessBatch(ctx)
	case flags.TranscribeFile != "":
		return proc.TranscribeAndTranslate(ctx)
	default:
		return proc.TranslateText(ctx, args[0])
	}
}
