package cli

import (
	"github.com/spf13/cobra"

	"github.com/devbydaniel/meetnotes/config"
	"github.com/devbydaniel/meetnotes/internal/app"
	"github.com/devbydaniel/meetnotes/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meetnotes",
		Short: "Record meetings with live transcription and AI summaries",
		Long:  "A note-taking tool that records a meeting, transcribes it live in 10-second increments using Mistral Voxtral, and generates a summary with action items using Claude Haiku.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewRecordCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewShowCmd(deps))
	rootCmd.AddCommand(NewTitleCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
