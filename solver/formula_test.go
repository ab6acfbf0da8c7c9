package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormulaVariables(t *testing.T) {
	f := ParseSlice([][]int{{5, -3}, {3, 1}, {-5}})
	require.Equal(t, []Var{IntToVar(1), IntToVar(3), IntToVar(5)}, f.Variables())
	require.Equal(t, 3, f.NumVariables())
	require.Equal(t, IntToVar(5), f.MaxVar())
}

func TestFormulaLearnAppends(t *testing.T) {
	f := ParseSlice([][]int{{1, 2}})
	first := f.Clause(0)
	learned := NewLearnedClause([]Lit{IntToLit(-1)})
	f.Learn(learned)
	require.Equal(t, 2, f.NumClauses())
	require.Equal(t, 1, f.NumLearned())
	require.Same(t, first, f.Clause(0))
	require.Same(t, learned, f.Clause(1))
	// Learning introduces no new variables.
	require.Equal(t, 2, f.NumVariables())
}

func TestFormulaCNF(t *testing.T) {
	f := ParseSlice([][]int{{1, -2}, {2, 3}})
	expected := "p cnf 3 2\n1 -2 0\n2 3 0\n"
	require.Equal(t, expected, f.CNF())
}

func TestEmptyFormula(t *testing.T) {
	f := ParseSlice(nil)
	require.Equal(t, 0, f.NumVariables())
	require.Equal(t, 0, f.NumClauses())
	require.Equal(t, Var(-1), f.MaxVar())
}
