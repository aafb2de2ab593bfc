// SPDX-License-Identifier: MIT
package pagerank_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/webrank/matrix"
	"github.com/katalvlaran/webrank/pagerank"
)

var sinkRV pagerank.RankVector

// randomWeb returns an n-page 0/1 web where every page links to page (j+1)%n,
// so no column is dangling.
func randomWeb(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i == (j+1)%n || (i != j && rng.Intn(4) == 0) {
				if err = m.Set(i, j, 1); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	return m
}

func BenchmarkRank(b *testing.B) {
	methods := []pagerank.Method{pagerank.InitialApproximation, pagerank.PowerMethod, pagerank.PrincipalEigenvector}
	for _, n := range []int{8, 32, 64} {
		e, err := pagerank.NewEngine(randomWeb(b, n, 42))
		if err != nil {
			b.Fatal(err)
		}
		for _, m := range methods {
			b.Run(fmt.Sprintf("%s/n=%d", m, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					// errors (e.g. a complex leading eigenvalue) are part of the workload
					rv, _ := e.Rank(m)
					sinkRV = rv
				}
			})
		}
	}
}
