package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/meetnotes/internal/audio"
	"github.com/devbydaniel/meetnotes/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if err := audio.CheckFFmpeg(); err != nil {
				f.SetupCheck("ffmpeg", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("ffmpeg", true, "installed")
			}

			if deps.Config.MistralAPIKey != "" {
				f.SetupCheck("Mistral API key", true, "configured")
			} else {
				f.SetupCheck("Mistral API key", false, "not set. Set MEETNOTES_MISTRAL_API_KEY or add to config")
				ok = false
			}

			if deps.Config.AnthropicKey != "" {
				f.SetupCheck("Anthropic API key", true, "configured")
			} else {
				f.SetupCheck("Anthropic API key", false, "not set. Set MEETNOTES_ANTHROPIC_API_KEY or add to config")
				ok = false
			}

			f.SetupCheck("Notes directory", true, deps.Config.NotesDir)

			if ok {
				f.Success("\nAll prerequisites met. Ready to record!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
