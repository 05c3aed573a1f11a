package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"toyrobot/internal/config"
	"toyrobot/internal/store"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.requireStore()
			if err != nil {
				return err
			}
			recs, err := s.List(cmd.Context(), limit)
			if err != nil {
				return sysError{err}
			}
			if a.cfg.Output == config.OutputJSON {
				if recs == nil {
					recs = []store.Record{}
				}
				return writeJSON(cmd.OutOrStdout(), recs)
			}

			var sb strings.Builder
			w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tPOSITION\tOUTCOME")
			for _, rec := range recs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.ID, rec.CreatedAt.Format(time.RFC3339), rec.State, outcome(rec))
			}
			w.Flush()
			fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list (0 for all)")
	return cmd
}

func outcome(rec store.Record) string {
	switch {
	case rec.Failure != nil:
		return fmt.Sprintf("failed at line %d", rec.Failure.Line)
	case rec.Report != "":
		return rec.Report
	case !rec.Placed:
		return "not placed"
	}
	return "ok"
}
