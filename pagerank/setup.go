// SPDX-License-Identifier: MIT

package pagerank

import "github.com/katalvlaran/webrank/matrix"

// Setup computes the quantities every method starts from.
// Implementation:
//   - Stage 1: column sums of M.
//   - Stage 2: split column indices into linked (sum ≠ 0) and dangling.
//   - Stage 3: D = diag(1/colSums[j]) on linked columns, 0 elsewhere.
//   - Stage 4: S = M·D, then every dangling column of S becomes 1/n.
//
// Without dangling pages S equals M·D exactly and is column-stochastic.
// Complexity: O(n³) for the product.
func (e *Engine) Setup() (Setup, error) {
	colSums, err := matrix.ColSums(e.m)
	if err != nil {
		return Setup{}, pagerankErrorf(opSetup, err)
	}

	inv := make([]float64, e.n)
	var numLinks, dangling []int
	for j, s := range colSums {
		if s != 0 {
			numLinks = append(numLinks, j)
			inv[j] = 1 / s
		} else {
			dangling = append(dangling, j)
		}
	}

	d, err := matrix.Diagonal(inv)
	if err != nil {
		return Setup{}, pagerankErrorf(opSetup, err)
	}
	s, err := matrix.Mul(e.m, d)
	if err != nil {
		return Setup{}, pagerankErrorf(opSetup, err)
	}
	uniform := 1 / float64(e.n)
	for _, j := range dangling {
		if err = s.SetCol(j, uniform); err != nil {
			return Setup{}, pagerankErrorf(opSetup, err)
		}
	}

	return Setup{
		ColSums:  colSums,
		NumLinks: numLinks,
		Dangling: dangling,
		D:        d,
		S:        s,
	}, nil
}
