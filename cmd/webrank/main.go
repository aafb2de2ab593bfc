// SPDX-License-Identifier: MIT

// Command webrank ranks the pages of a small webgraph and multiplies
// connectivity matrices.
//
//	webrank                      interactive method loop on web.txt (needs a TTY)
//	webrank rank --method power  one-shot ranking
//	webrank multiply             product of two matrices (demo pair by default)
//	webrank history              recorded runs
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
