package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, backend, err := opts.open(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = backend.Close() }()

			st, err := svc.Catalog.Statistics(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			header(w, "%d schemes (%d state, %d central)", st.Total, st.State, st.Central)
			for _, c := range st.Categories {
				fmt.Fprintf(w, "%5d  %s\n", c.Count, c.Name)
			}
			return nil
		},
	}
}
