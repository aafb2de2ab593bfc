// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/webrank/pagerank"
	"github.com/katalvlaran/webrank/report"
)

func rankCmd(o *globalOpts) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the pages of the web file once",
		Long:  "Compute PageRank with one method: 1|initial, 2|power or 3|eigen.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			m, err := pagerank.ParseMethod(method)
			if err != nil {
				return err
			}
			e, err := o.engine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err = report.Method(out, m); err != nil {
				return err
			}
			res, err := e.Compute(m)
			if err != nil {
				return err
			}
			if err = report.Ranks(out, res.Ranks); err != nil {
				return err
			}

			store, err := o.openHistory()
			if err != nil || store == nil {
				return err
			}
			defer closeHistory(store, &err)
			run, err := store.Record(cmd.Context(), o.cfg.WebFile, res)
			if err != nil {
				return err
			}
			log.Info().Str("id", run.ID).Str("method", m.String()).Msg("run recorded")

			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "1", "ranking method: 1|initial, 2|power, 3|eigen")

	return cmd
}
