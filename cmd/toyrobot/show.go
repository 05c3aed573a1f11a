package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"toyrobot/internal/config"
	"toyrobot/internal/store"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a recorded run (default: the latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.requireStore()
			if err != nil {
				return err
			}
			var rec store.Record
			if len(args) == 1 {
				rec, err = s.Get(cmd.Context(), args[0])
			} else {
				rec, err = s.Latest(cmd.Context())
			}
			if errors.Is(err, store.ErrNotFound) {
				return err
			}
			if err != nil {
				return sysError{err}
			}

			if a.cfg.Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			printRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func printRecord(w io.Writer, rec store.Record) {
	fmt.Fprintf(w, "id:        %s\n", rec.ID)
	fmt.Fprintf(w, "created:   %s\n", rec.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "position:  %s\n", rec.State)
	fmt.Fprintf(w, "placed:    %t\n", rec.Placed)
	if rec.Report != "" {
		fmt.Fprintf(w, "report:    %s\n", rec.Report)
	}
	if rec.Failure != nil {
		fmt.Fprintf(w, "error:     %s\n", rec.Failure)
		fmt.Fprintf(w, "  before:  %s\n", rec.Failure.Before)
		fmt.Fprintf(w, "  at:      %s\n", rec.Failure.AtError)
	}
	fmt.Fprintln(w, "input:")
	for _, line := range strings.Split(strings.TrimSpace(rec.Input), "\n") {
		fmt.Fprintf(w, "  %s\n", strings.TrimSpace(line))
	}
}
