// Package simplify implements the post-elaboration, type-preserving
// rewrite over explicit terms that prunes the η-like redundancies the
// inference algorithm introduces: type abstractions that merely
// rewrap an application of the same term, and type applications fed
// directly into the abstraction they instantiate.
package simplify

import (
	"github.com/hmf-lang/hmfc/internal/subst"
	"github.com/hmf-lang/hmfc/internal/types"
)

// Simplify rewrites e to a normal form under eta-contraction and
// beta-reduction on type abstractions, recursing structurally
// (congruence) on every other constructor. Each rewrite re-simplifies
// its result; there is no global fixed-point loop over the whole
// term.
func Simplify(e types.FTerm) types.FTerm {
	switch t := e.(type) {
	case types.FVar:
		return t
	case types.FLam:
		return types.FLam{Param: t.Param, Ann: t.Ann, Body: Simplify(t.Body)}
	case types.FApp:
		return types.FApp{Fun: Simplify(t.Fun), Arg: Simplify(t.Arg)}
	case types.FLet:
		return types.FLet{Name: t.Name, Value: Simplify(t.Value), Body: Simplify(t.Body)}
	case types.FBool:
		return t
	case types.FIf:
		return types.FIf{Cond: Simplify(t.Cond), Then: Simplify(t.Then), Else: Simplify(t.Else)}
	case types.FInt:
		return t
	case types.FArith:
		return types.FArith{Op: t.Op, Left: Simplify(t.Left), Right: Simplify(t.Right)}
	case types.FList:
		elems := make([]types.FTerm, len(t.Elems))
		for i, el := range t.Elems {
			elems[i] = Simplify(el)
		}
		return types.FList{Elems: elems}
	case types.FConcat:
		return types.FConcat{Left: Simplify(t.Left), Right: Simplify(t.Right)}
	case types.FETAbs:
		body := Simplify(t.Body)
		if app, ok := body.(types.FETApp); ok {
			if tv, ok := app.Arg.(types.TVar); ok && tv.Name == t.Var {
				if !types.FreeTypeVarsF(app.Term).Contains(t.Var) {
					return app.Term
				}
			}
		}
		return types.FETAbs{Var: t.Var, Body: body}
	case types.FETApp:
		term := Simplify(t.Term)
		if abs, ok := term.(types.FETAbs); ok {
			reduced := subst.ApplyFTerm(subst.Singleton(abs.Var, t.Arg), abs.Body)
			return Simplify(reduced)
		}
		return types.FETApp{Term: term, Arg: t.Arg}
	default:
		return e
	}
}
