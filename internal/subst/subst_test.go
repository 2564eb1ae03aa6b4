package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmf-lang/hmfc/internal/diagnostics"
	"github.com/hmf-lang/hmfc/internal/subst"
	"github.com/hmf-lang/hmfc/internal/types"
)

func TestSingletonPanicsOnOccursCheckFailure(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Singleton() did not panic on a self-referential binding")
		}
		if _, ok := r.(*diagnostics.StandardError); !ok {
			t.Fatalf("panic value = %#v, want *diagnostics.StandardError", r)
		}
	}()
	subst.Singleton("a", types.List(types.TVar{Name: "a"}))
}

func TestApplyTypeSubstitutesFreeVariable(t *testing.T) {
	s := subst.Singleton("a", types.Int())
	got := subst.ApplyType(s, types.Arrow(types.TVar{Name: "a"}, types.Bool()))
	assert.Equal(t, "Int -> Bool", got.String())
}

func TestApplyTypeLeavesBoundVariableAlone(t *testing.T) {
	s := subst.Singleton("a", types.Int())
	ty := types.TForAll{Name: "a", Body: types.TVar{Name: "a"}}
	got := subst.ApplyType(s, ty)
	assert.Equal(t, ty.String(), got.String())
}

func TestComposeMatchesSequentialApplication(t *testing.T) {
	s1 := subst.Singleton("a", types.TVar{Name: "b"})
	s2 := subst.Singleton("b", types.Int())
	composed := subst.Compose(s1, s2)

	direct := subst.ApplyType(s2, subst.ApplyType(s1, types.TVar{Name: "a"}))
	viaComposed := subst.ApplyType(composed, types.TVar{Name: "a"})
	assert.Equal(t, direct.String(), viaComposed.String())
}

func TestComposeSecondSubstitutionWinsOnOverlap(t *testing.T) {
	s1 := subst.Singleton("a", types.Int())
	s2 := subst.Singleton("a", types.Bool())
	composed := subst.Compose(s1, s2)
	assert.Equal(t, types.Bool().String(), composed["a"].String())
}

func TestRemoveKeys(t *testing.T) {
	s := subst.Subst{"a": types.Int(), "b": types.Bool()}
	out := subst.RemoveKeys([]string{"a"}, s)
	if _, ok := out["a"]; ok {
		t.Fatal("RemoveKeys() left a removed key in place")
	}
	if _, ok := out["b"]; !ok {
		t.Fatal("RemoveKeys() dropped a key it should have kept")
	}
}

func TestApplyFTermAppliesThroughAnnotationsOnly(t *testing.T) {
	s := subst.Singleton("a", types.Int())
	term := types.FLam{Param: "x", Ann: types.TVar{Name: "a"}, Body: types.FVar{Name: "x"}}
	got := subst.ApplyFTerm(s, term).(types.FLam)
	assert.Equal(t, types.Int().String(), got.Ann.String())
	assert.Equal(t, "x", got.Body.(types.FVar).Name)
}

func TestReplaceConSwapsNullaryConstructorForVariable(t *testing.T) {
	sk := types.NewSkolem(3).(types.TCon)
	ty := types.Arrow(sk, types.List(sk))
	got := subst.ReplaceCon(sk.Name, "A", ty)
	assert.Equal(t, "A -> List A", got.String())
}
