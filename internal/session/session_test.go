// SPDX-License-Identifier: MIT
package session_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/webrank/internal/session"
	"github.com/katalvlaran/webrank/matrix"
	"github.com/katalvlaran/webrank/pagerank"
)

// fakeRanker returns canned results and counts calls per method.
type fakeRanker struct {
	calls map[pagerank.Method]int
	err   error
}

func (f *fakeRanker) Compute(m pagerank.Method) (pagerank.Result, error) {
	if f.calls == nil {
		f.calls = map[pagerank.Method]int{}
	}
	f.calls[m]++
	if f.err != nil {
		return pagerank.Result{}, f.err
	}

	return pagerank.Result{Ranks: pagerank.RankVector{0.5, 0.5}, Method: m}, nil
}

type memRecorder struct {
	got []pagerank.Result
	err error
}

func (r *memRecorder) Record(_ context.Context, res pagerank.Result) error {
	r.got = append(r.got, res)

	return r.err
}

func TestRun_Transcript(t *testing.T) {
	r := &fakeRanker{}
	rec := &memRecorder{}
	var out strings.Builder

	s := session.New(r, strings.NewReader("1\n2\n 3 \n1\n0\n9\n"), &out, session.WithRecorder(rec))
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, map[pagerank.Method]int{
		pagerank.InitialApproximation: 2,
		pagerank.PowerMethod:          1,
		pagerank.PrincipalEigenvector: 1,
	}, r.calls)
	require.Len(t, rec.got, 4)
	assert.Equal(t, pagerank.PrincipalEigenvector, rec.got[2].Method)

	text := out.String()
	assert.Equal(t, 5, strings.Count(text, session.Prompt))
	assert.Equal(t, 4, strings.Count(text, "PAGE: 2 RANK: 0.5000"))
	assert.Contains(t, text, "Power Method Calculation...")
}

// TestRun_EOF ends cleanly without an explicit 0.
func TestRun_EOF(t *testing.T) {
	var out strings.Builder
	require.NoError(t, session.New(&fakeRanker{}, strings.NewReader("2\n"), &out).Run(context.Background()))
	assert.Equal(t, 2, strings.Count(out.String(), session.Prompt))
}

func TestRun_InvalidChoice(t *testing.T) {
	for _, in := range []string{"4\n", "-1\n", "abc\n", "\n", "1.5\n"} {
		r := &fakeRanker{}
		err := session.New(r, strings.NewReader(in), &strings.Builder{}).Run(context.Background())
		require.ErrorIs(t, err, pagerank.ErrInvalidMethod, "input %q", in)
		assert.Empty(t, r.calls)
	}
}

func TestRun_RankerError(t *testing.T) {
	var out strings.Builder
	r := &fakeRanker{err: pagerank.ErrSingularSystem}
	err := session.New(r, strings.NewReader("1\n0\n"), &out).Run(context.Background())
	require.ErrorIs(t, err, pagerank.ErrSingularSystem)
	assert.NotContains(t, out.String(), "PAGE:")
}

func TestRun_RecorderError(t *testing.T) {
	boom := errors.New("disk full")
	err := session.New(&fakeRanker{}, strings.NewReader("1\n"), &strings.Builder{},
		session.WithRecorder(&memRecorder{err: boom})).Run(context.Background())
	require.ErrorIs(t, err, boom)
}

// TestRun_Engine drives a real engine end to end.
func TestRun_Engine(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {0, 0}})
	require.NoError(t, err)
	e, err := pagerank.NewEngine(m)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, session.New(e, strings.NewReader("1\n0\n"), &out).Run(context.Background()))
	assert.Contains(t, out.String(), "PAGE: 1 RANK: 0.6491\nPAGE: 2 RANK: 0.3509\n")
}
