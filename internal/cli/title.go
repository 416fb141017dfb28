package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
	"github.com/devbydaniel/meetnotes/internal/output"
)

func NewTitleCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "title <session-id> <title>",
		Short: "Set a session's title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)
			id := meeting.SessionID(args[0])
			title := strings.Join(args[1:], " ")

			if err := deps.App.View.SetTitle(id, title); err != nil {
				return err
			}

			formatter.Success("Title saved: " + id.Label() + " - " + title)
			return nil
		},
	}

	return cmd
}
