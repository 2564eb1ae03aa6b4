package types_test

import (
	"testing"

	"github.com/hmf-lang/hmfc/internal/types"
)

func TestArrowString(t *testing.T) {
	ty := types.Arrow(types.Int(), types.Bool())
	if got, want := ty.String(), "Int -> Bool"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestArrowStringParenthesizesArrowDomain(t *testing.T) {
	ty := types.Arrow(types.Arrow(types.Int(), types.Int()), types.Bool())
	if got, want := ty.String(), "(Int -> Int) -> Bool"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestIsArrow(t *testing.T) {
	dom, cod, ok := types.IsArrow(types.Arrow(types.Int(), types.Bool()))
	if !ok {
		t.Fatal("IsArrow() = false for an Arrow constructor")
	}
	if dom.String() != "Int" || cod.String() != "Bool" {
		t.Fatalf("IsArrow() = %v, %v", dom, cod)
	}
	if _, _, ok := types.IsArrow(types.Int()); ok {
		t.Fatal("IsArrow() = true for a non-Arrow constructor")
	}
}

func TestSkolemNames(t *testing.T) {
	sk := types.NewSkolem(7)
	con, ok := sk.(types.TCon)
	if !ok || len(con.Args) != 0 {
		t.Fatalf("NewSkolem() = %#v, want a nullary TCon", sk)
	}
	if !types.IsSkolemName(con.Name) {
		t.Fatalf("IsSkolemName(%q) = false", con.Name)
	}
	if types.IsSkolemName("List") {
		t.Fatal("IsSkolemName(\"List\") = true")
	}
}

func TestFreeTypeVarsExcludesBoundName(t *testing.T) {
	ty := types.TForAll{Name: "A", Body: types.Arrow(types.TVar{Name: "A"}, types.TVar{Name: "b"})}
	free := types.FreeTypeVars(ty)
	if free.Contains("A") {
		t.Fatal("FreeTypeVars() includes a quantifier-bound name")
	}
	if !free.Contains("b") {
		t.Fatal("FreeTypeVars() omits a genuinely free variable")
	}
}

func TestConNamesDescendsIntoQuantifiers(t *testing.T) {
	sk := types.NewSkolem(1).(types.TCon)
	ty := types.TForAll{Name: "A", Body: types.List(sk)}
	names := types.ConNames(ty)
	if !names.Contains(sk.Name) || !names.Contains(types.ConList) {
		t.Fatalf("ConNames() = %v, missing expected constructors", names)
	}
}

func TestPeelAndWrapForAllRoundTrip(t *testing.T) {
	original := types.WrapForAll([]string{"A", "B"}, types.Arrow(types.TVar{Name: "A"}, types.TVar{Name: "B"}))
	names, body := types.PeelForAll(original)
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Fatalf("PeelForAll() names = %v", names)
	}
	rewrapped := types.WrapForAll(names, body)
	if rewrapped.String() != original.String() {
		t.Fatalf("round trip mismatch: %s vs %s", rewrapped, original)
	}
}

func TestTVarSetOperations(t *testing.T) {
	a := types.NewTVarSet("x", "y")
	b := types.NewTVarSet("y", "z")
	if u := a.Union(b); !u.Contains("x") || !u.Contains("y") || !u.Contains("z") {
		t.Fatalf("Union() = %v", u)
	}
	if d := a.Difference(b); !d.Contains("x") || d.Contains("y") {
		t.Fatalf("Difference() = %v", d)
	}
}
