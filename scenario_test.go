// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vari_test

import (
	"testing"

	"code.hybscloud.com/vari"

	"github.com/stretchr/testify/require"
)

// End-to-end dispatch scenarios covering both protocols together.

func TestScenarioClosedValueAlternative(t *testing.T) {
	// Two-alternative closed sum holding 42 at index 0, clauses
	// {0: x+1, 1: 0}.
	u := vari.First2[int, string](42)
	got, err := vari.Visit1(vari.Handler1[int]{
		func(v any) int { return v.(int) + 1 },
		func(v any) int { return 0 },
	}, &u)
	require.NoError(t, err)
	require.Equal(t, 43, got)
}

func TestScenarioClosedErrorAlternative(t *testing.T) {
	// Success/error container in the error alternative holding "oops",
	// clauses {0: len, 1: -1}.
	e := vari.Second2[string, string]("oops")
	got, err := vari.Visit1(vari.Handler1[int]{
		func(v any) int { return len(v.(string)) },
		func(v any) int { return -1 },
	}, &e)
	require.NoError(t, err)
	require.Equal(t, -1, got)
}

func TestScenarioOpenFirstCandidateMiss(t *testing.T) {
	// Candidates [double, int] probing an int 7: double is consulted
	// first and misses, int matches and extracts 7.
	consulted := []string{}
	var reg vari.Registry[vari.Box]
	reg.Register("double", func(b vari.Box) (any, bool) {
		consulted = append(consulted, "double")
		v, ok := b.Get().(float64)
		return v, ok
	})
	reg.Register("int", func(b vari.Box) (any, bool) {
		consulted = append(consulted, "int")
		v, ok := b.Get().(int)
		return v, ok
	})

	res := reg.Test(vari.BoxOf(7))
	require.Equal(t, vari.TestMatched, res.Kind)
	require.Equal(t, "int", res.Tag)
	require.Equal(t, 7, res.Value)
	require.Equal(t, []string{"double", "int"}, consulted)
}

func TestScenarioOpenWildcardFallthrough(t *testing.T) {
	// A value with no registered candidate lands in the wildcard clause.
	var reg vari.Registry[vari.Box]
	reg.Register("int", vari.Holds[int]())
	reg.Register("double", vari.Holds[float64]())

	got, err := vari.VisitOpen(vari.OpenHandler[vari.Box, int]{
		Clauses: map[string]func(v any) int{
			"int":    func(v any) int { return 1 },
			"double": func(v any) int { return 2 },
		},
		Default: func(v vari.Box) int { return -1 },
	}, &reg, vari.BoxOf([]byte("unregistered")))
	require.NoError(t, err)
	require.Equal(t, -1, got)
}

func TestScenarioOpenEmptyDistinctFailure(t *testing.T) {
	// An open sum holding nothing fails distinctly from "has a value but
	// nothing matched", even though both are in the same error class.
	var reg vari.Registry[vari.Box]
	reg.Register("int", vari.Holds[int]())
	h := vari.OpenHandler[vari.Box, int]{
		Clauses: map[string]func(v any) int{
			"int": func(v any) int { return 1 },
		},
	}

	_, emptyErr := vari.VisitOpen(h, &reg, vari.EmptyBox())
	require.ErrorIs(t, emptyErr, vari.ErrEmptyOpenSum)
	require.ErrorIs(t, emptyErr, vari.ErrNoMatchingAlternative)

	_, unmatchedErr := vari.VisitOpen(h, &reg, vari.BoxOf(1.5))
	require.ErrorIs(t, unmatchedErr, vari.ErrNoMatchingAlternative)
	require.NotErrorIs(t, unmatchedErr, vari.ErrEmptyOpenSum)
}

func TestScenarioBinaryTernaryFullCoverage(t *testing.T) {
	// Binary x ternary handler covering all six combinations, each pair
	// constructed and individually verified.
	builder := vari.NewTable[string](2, 3)
	labels := [2][3]string{
		{"a0", "a1", "a2"},
		{"b0", "b1", "b2"},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			builder.Clause([]int{i, j}, func(args []any) string { return labels[i][j] })
		}
	}
	table, err := builder.Build()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			got, err := table.Visit(
				vari.AsClosed(fakeSum{count: 2, idx: i}),
				vari.AsClosed(fakeSum{count: 3, idx: j}),
			)
			require.NoError(t, err)
			require.Equal(t, labels[i][j], got)
		}
	}
}

func TestScenarioInterruptedMutation(t *testing.T) {
	// A union consumed by Take behaves like a value whose mutation was
	// interrupted: every subsequent visit fails, whatever the handler.
	u := vari.Second2[int, string]("moved away")
	_ = u.Take()

	h := vari.Handler1[int]{
		func(v any) int { return 1 },
		func(v any) int { return 2 },
	}
	_, err := vari.Visit1(h, &u)
	require.ErrorIs(t, err, vari.ErrValuelessAccess)

	table, err := vari.NewTable[int](2).
		Otherwise(func(args []any) int { return 0 }).
		Build()
	require.NoError(t, err)
	_, err = table.Visit(vari.AsClosed(&u))
	require.ErrorIs(t, err, vari.ErrValuelessAccess)
}
