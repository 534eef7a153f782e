package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	var season string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Force a refresh of the cached player catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RefreshResult

			if err := client.Post("/api/v1/players/refresh", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)

			if season != "" {
				var ownership RefreshResult
				path := fmt.Sprintf("/api/v1/ownership/refresh?season=%s", season)
				if err := client.Post(path, &ownership); err != nil {
					return err
				}
				out.Print(ownership)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&season, "season", "", "Also refresh ownership statistics for this season")

	return cmd
}
