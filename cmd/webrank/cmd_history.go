// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var errNoHistory = errors.New("history: no database configured (use --history-db or history_db)")

func historyCmd(o *globalOpts) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			store, err := o.openHistory()
			if err != nil {
				return err
			}
			if store == nil {
				return errNoHistory
			}
			defer closeHistory(store, &err)

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range runs {
				ranks := make([]string, len(r.Ranks))
				for i, v := range r.Ranks {
					ranks[i] = fmt.Sprintf("%.4f", v)
				}
				_, err = fmt.Fprintf(out, "%s %s %-21s pages=%d iterations=%d elapsed=%s file=%s ranks=[%s]\n",
					r.CreatedAt.Format(time.RFC3339), r.ID, r.Method, r.Dimension, r.Iterations,
					r.Elapsed, r.WebFile, strings.Join(ranks, " "))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of runs (0 = all)")

	return cmd
}
