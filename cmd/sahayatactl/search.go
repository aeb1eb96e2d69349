package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/sahayata/internal/domain/search/query"
)

func newSearchCmd(opts *options) *cobra.Command {
	var (
		lang  string
		limit int
		reply bool
	)
	cmd := &cobra.Command{
		Use:   "search <message>",
		Short: "Rank schemes for a free-text message",
		Example: `  sahayatactl search "farmer loan"
  sahayatactl search --lang te "రైతు" --reply`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, backend, err := opts.open(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = backend.Close() }()

			message := strings.Join(args, " ")
			w := cmd.OutOrStdout()

			if reply {
				r, err := svc.Chat.Answer(ctx, message, lang)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, r.Message)
				return nil
			}

			q, err := query.New(message, lang, limit)
			if err != nil {
				return err
			}
			matches, err := svc.Search.Search(ctx, &q)
			if err != nil {
				return err
			}
			header(w, "%d scheme(s) for %q [%s]", len(matches), message, q.Language())
			for i := range matches {
				m := &matches[i]
				row(w, m.ID(), m.Text().Name, m.Score(), m.Description())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "language code (en, te, hi)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum matches (default 10)")
	cmd.Flags().BoolVar(&reply, "reply", false, "print the chat reply instead of the ranked list")
	return cmd
}
