package simplify_test

import (
	"testing"

	"github.com/hmf-lang/hmfc/internal/simplify"
	"github.com/hmf-lang/hmfc/internal/types"
)

func TestEtaContractsRedundantTypeAbstraction(t *testing.T) {
	// /\a. (f [a]) contracts to f when a is not free in f.
	term := types.FETAbs{
		Var:  "a",
		Body: types.FETApp{Term: types.FVar{Name: "f"}, Arg: types.TVar{Name: "a"}},
	}
	got := simplify.Simplify(term)
	if got.String() != "f" {
		t.Fatalf("Simplify() = %s, want f", got)
	}
}

func TestEtaDoesNotContractWhenVariableEscapes(t *testing.T) {
	// /\a. ((\x:List a. x) [a]) must not contract: a occurs free in the
	// wrapped term's annotation, not just the trailing application.
	inner := types.FLam{Param: "x", Ann: types.List(types.TVar{Name: "a"}), Body: types.FVar{Name: "x"}}
	term := types.FETAbs{Var: "a", Body: types.FETApp{Term: inner, Arg: types.TVar{Name: "a"}}}
	got := simplify.Simplify(term)
	if _, ok := got.(types.FETAbs); !ok {
		t.Fatalf("Simplify() = %#v, want the FETAbs preserved", got)
	}
}

func TestBetaReducesTypeApplicationOfTypeAbstraction(t *testing.T) {
	// (/\a. \x:a. x) [Int] reduces to \x:Int. x.
	abs := types.FETAbs{
		Var:  "a",
		Body: types.FLam{Param: "x", Ann: types.TVar{Name: "a"}, Body: types.FVar{Name: "x"}},
	}
	term := types.FETApp{Term: abs, Arg: types.Int()}
	got := simplify.Simplify(term).(types.FLam)
	if got.Ann.String() != "Int" {
		t.Fatalf("Simplify() param type = %s, want Int", got.Ann)
	}
	if got.Body.(types.FVar).Name != "x" {
		t.Fatalf("Simplify() body = %#v", got.Body)
	}
}

func TestSimplifyRecursesStructurallyThroughCongruence(t *testing.T) {
	abs := types.FETAbs{
		Var:  "a",
		Body: types.FLam{Param: "x", Ann: types.TVar{Name: "a"}, Body: types.FVar{Name: "x"}},
	}
	term := types.FIf{
		Cond: types.FBool{Value: true},
		Then: types.FETApp{Term: abs, Arg: types.Int()},
		Else: types.FETApp{Term: abs, Arg: types.Int()},
	}
	got := simplify.Simplify(term).(types.FIf)
	thenLam, ok := got.Then.(types.FLam)
	if !ok || thenLam.Ann.String() != "Int" {
		t.Fatalf("Simplify() did not reduce under FIf: %#v", got.Then)
	}
}

func TestSimplifyIsIdempotent(t *testing.T) {
	term := types.FETApp{
		Term: types.FETAbs{Var: "a", Body: types.FLam{Param: "x", Ann: types.TVar{Name: "a"}, Body: types.FVar{Name: "x"}}},
		Arg:  types.Bool(),
	}
	once := simplify.Simplify(term)
	twice := simplify.Simplify(once)
	if once.String() != twice.String() {
		t.Fatalf("Simplify() not idempotent: %s vs %s", once, twice)
	}
}
