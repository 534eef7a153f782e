package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStandingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings <league-id>",
		Short: "Show league standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Standings

			path := fmt.Sprintf("/api/v1/leagues/%s/standings", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
