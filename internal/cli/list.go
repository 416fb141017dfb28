package cli

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/devbydaniel/meetnotes/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			entries, err := deps.App.Catalog.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				formatter.Info("No sessions found")
				return nil
			}

			formatter.SessionListHeader()
			for _, e := range entries {
				formatter.SessionListItem(
					string(e.ID),
					e.Label,
					humanize.Time(e.RecordedAt),
					humanize.Bytes(uint64(e.AudioBytes)),
					e.HasSummary,
				)
			}
			return nil
		},
	}

	return cmd
}
