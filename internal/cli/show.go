package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
	"github.com/devbydaniel/meetnotes/internal/output"
)

func NewShowCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a session's title, summary and transcript",
		Long:  "Show one recorded session. If no summary exists yet, one is generated from the transcript and persisted first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stderr)
			id := meeting.SessionID(args[0])

			needsSummary := false
			if summary, err := deps.App.Store.ReadSummary(id); err == nil && summary == "" {
				needsSummary = true
			}
			if needsSummary {
				formatter.Summarizing()
			}

			view, err := deps.App.View.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			title := view.Title
			if title == "" {
				title = id.Label()
			}
			fmt.Fprintf(os.Stdout, "# %s\n\n", title)
			if view.Summary != "" {
				fmt.Fprintf(os.Stdout, "%s\n\n", view.Summary)
			}
			fmt.Fprintf(os.Stdout, "## Transcript\n\n%s\n", view.Transcript)
			return nil
		},
	}

	return cmd
}
