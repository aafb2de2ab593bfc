// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/webrank/matrix"
	"github.com/katalvlaran/webrank/report"
	"github.com/katalvlaran/webrank/webfile"
)

// demoSize is the order of the built-in demo matrices.
const demoSize = 3

var errOneOperand = errors.New("multiply: --a and --b must be given together")

// demoOperands returns A[r][c] = 3r+c+1 and B[r][c] = 3(3−r)−c.
func demoOperands() (*matrix.Dense, *matrix.Dense, error) {
	a, err := matrix.NewDense(demoSize, demoSize)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.NewDense(demoSize, demoSize)
	if err != nil {
		return nil, nil, err
	}
	for r := 0; r < demoSize; r++ {
		for c := 0; c < demoSize; c++ {
			if err = a.Set(r, c, float64(demoSize*r+c+1)); err != nil {
				return nil, nil, err
			}
			if err = b.Set(r, c, float64(demoSize*(demoSize-r)-c)); err != nil {
				return nil, nil, err
			}
		}
	}

	return a, b, nil
}

func multiplyCmd(_ *globalOpts) *cobra.Command {
	var pathA, pathB string
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply two matrices and print operands and product",
		Long: `Multiply two matrices stored in the web file format. Without --a and --b
the two 3x3 demo matrices [[1 2 3] [4 5 6] [7 8 9]] and [[9 8 7] [6 5 4] [3 2 1]]
are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var a, b *matrix.Dense
			var err error
			switch {
			case pathA == "" && pathB == "":
				a, b, err = demoOperands()
			case pathA == "" || pathB == "":
				return errOneOperand
			default:
				if a, err = webfile.Parse(pathA); err != nil {
					return err
				}
				b, err = webfile.Parse(pathB)
			}
			if err != nil {
				return err
			}

			c, err := matrix.Mul(a, b)
			if err != nil {
				return err
			}

			return report.Product(cmd.OutOrStdout(), a, b, c)
		},
	}
	cmd.Flags().StringVar(&pathA, "a", "", "first operand file")
	cmd.Flags().StringVar(&pathB, "b", "", "second operand file")

	return cmd
}
