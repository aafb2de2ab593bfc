// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/webrank/internal/session"
	"github.com/katalvlaran/webrank/report"
)

// runInteractive echoes the connectivity matrix and runs the method loop on
// the command's input and output streams.
func runInteractive(cmd *cobra.Command, o *globalOpts) error {
	e, err := o.engine()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err = report.Banner(out, "Retrieve Connectivity Matrix..."); err != nil {
		return err
	}
	if err = report.Matrix(out, e.Matrix()); err != nil {
		return err
	}

	opts := []session.Option{session.WithLogger(log.Logger)}
	store, err := o.openHistory()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, session.WithRecorder(store.Recorder(o.cfg.WebFile)))
	}

	return session.New(e, cmd.InOrStdin(), out, opts...).Run(cmd.Context())
}
