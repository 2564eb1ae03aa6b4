// Package subst implements the idempotent type-substitution algebra:
// construction, composition, domain restriction, and capture-free
// application to types and explicit terms.
package subst

import (
	"github.com/hmf-lang/hmfc/internal/diagnostics"
	"github.com/hmf-lang/hmfc/internal/types"
)

// Subst is a finite mapping from type-variable names to types,
// maintained in idempotent form: no key occurs free in any value.
type Subst map[string]types.Type

// Empty returns the identity substitution.
func Empty() Subst { return Subst{} }

// Singleton builds the one-binding substitution a ↦ t. It panics with
// a *diagnostics.StandardError if a occurs free in t: constructing
// such a binding would make the substitution non-idempotent, which is
// a fatal internal invariant violation rather than a recoverable
// inference failure.
func Singleton(a string, t types.Type) Subst {
	if types.FreeTypeVars(t).Contains(a) {
		panic(diagnostics.NonIdempotentSubstitution(a, t))
	}
	return Subst{a: t}
}

// Compose computes the diagrammatic composition "s2 after s1": the
// substitution whose domain is dom(s1) ∪ dom(s2) and whose action on a
// variable a is s2(s1(a)). s2's bindings win on overlap.
func Compose(s1, s2 Subst) Subst {
	out := make(Subst, len(s1)+len(s2))
	for k, v := range s1 {
		out[k] = ApplyType(s2, v)
	}
	for k, v := range s2 {
		out[k] = v
	}
	return out
}

// RemoveKeys restricts s to the complement of keys.
func RemoveKeys(keys []string, s Subst) Subst {
	drop := types.NewTVarSet(keys...)
	out := make(Subst, len(s))
	for k, v := range s {
		if !drop.Contains(k) {
			out[k] = v
		}
	}
	return out
}

// ApplyType applies s to a type. Under a TForAll, a binding whose key
// is the quantifier's own bound name is dropped, so bound occurrences
// are never replaced. Every TForAll binder the engine builds is minted
// once by its global fresh-name counter and never reused, so a
// replacement never mentions a binder it passes under; no renaming
// machinery is needed to stay capture-free.
func ApplyType(s Subst, t types.Type) types.Type {
	if len(s) == 0 {
		return t
	}
	switch tt := t.(type) {
	case types.TVar:
		if repl, ok := s[tt.Name]; ok {
			return repl
		}
		return tt
	case types.TCon:
		if len(tt.Args) == 0 {
			return tt
		}
		args := make([]types.Type, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = ApplyType(s, a)
		}
		return types.TCon{Name: tt.Name, Args: args}
	case types.TForAll:
		if _, shadowed := s[tt.Name]; shadowed {
			s = RemoveKeys([]string{tt.Name}, s)
		}
		return types.TForAll{Name: tt.Name, Body: ApplyType(s, tt.Body)}
	default:
		return t
	}
}

// ApplyFTerm applies s to every type embedded in an explicit term.
func ApplyFTerm(s Subst, e types.FTerm) types.FTerm {
	if len(s) == 0 {
		return e
	}
	switch t := e.(type) {
	case types.FVar:
		return t
	case types.FLam:
		return types.FLam{Param: t.Param, Ann: ApplyType(s, t.Ann), Body: ApplyFTerm(s, t.Body)}
	case types.FApp:
		return types.FApp{Fun: ApplyFTerm(s, t.Fun), Arg: ApplyFTerm(s, t.Arg)}
	case types.FLet:
		return types.FLet{Name: t.Name, Value: ApplyFTerm(s, t.Value), Body: ApplyFTerm(s, t.Body)}
	case types.FBool:
		return t
	case types.FIf:
		return types.FIf{Cond: ApplyFTerm(s, t.Cond), Then: ApplyFTerm(s, t.Then), Else: ApplyFTerm(s, t.Else)}
	case types.FInt:
		return t
	case types.FArith:
		return types.FArith{Op: t.Op, Left: ApplyFTerm(s, t.Left), Right: ApplyFTerm(s, t.Right)}
	case types.FList:
		out := make([]types.FTerm, len(t.Elems))
		for i, el := range t.Elems {
			out[i] = ApplyFTerm(s, el)
		}
		return types.FList{Elems: out}
	case types.FConcat:
		return types.FConcat{Left: ApplyFTerm(s, t.Left), Right: ApplyFTerm(s, t.Right)}
	case types.FETAbs:
		return types.FETAbs{Var: t.Var, Body: ApplyFTerm(s, t.Body)}
	case types.FETApp:
		return types.FETApp{Term: ApplyFTerm(s, t.Term), Arg: ApplyType(s, t.Arg)}
	default:
		return e
	}
}

// ReplaceCon substitutes every occurrence of the nullary constructor
// named old with the type variable newVar, inside a type. This is the
// rename-by-constructor-name operation subsumption uses to turn a
// Skolem back into a bound type-abstraction variable during
// elaboration (step 7 of 4.3); it is a different substitution shape
// than ApplyType because it keys on a constructor name, not a
// type-variable name.
func ReplaceCon(old, newVar string, t types.Type) types.Type {
	switch tt := t.(type) {
	case types.TVar:
		return tt
	case types.TCon:
		if tt.Name == old && len(tt.Args) == 0 {
			return types.TVar{Name: newVar}
		}
		if len(tt.Args) == 0 {
			return tt
		}
		args := make([]types.Type, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = ReplaceCon(old, newVar, a)
		}
		return types.TCon{Name: tt.Name, Args: args}
	case types.TForAll:
		return types.TForAll{Name: tt.Name, Body: ReplaceCon(old, newVar, tt.Body)}
	default:
		return t
	}
}

// ReplaceConInFTerm applies ReplaceCon to every type embedded in an
// explicit term.
func ReplaceConInFTerm(old, newVar string, e types.FTerm) types.FTerm {
	switch t := e.(type) {
	case types.FVar:
		return t
	case types.FLam:
		return types.FLam{Param: t.Param, Ann: ReplaceCon(old, newVar, t.Ann), Body: ReplaceConInFTerm(old, newVar, t.Body)}
	case types.FApp:
		return types.FApp{Fun: ReplaceConInFTerm(old, newVar, t.Fun), Arg: ReplaceConInFTerm(old, newVar, t.Arg)}
	case types.FLet:
		return types.FLet{Name: t.Name, Value: ReplaceConInFTerm(old, newVar, t.Value), Body: ReplaceConInFTerm(old, newVar, t.Body)}
	case types.FBool:
		return t
	case types.FIf:
		return types.FIf{Cond: ReplaceConInFTerm(old, newVar, t.Cond), Then: ReplaceConInFTerm(old, newVar, t.Then), Else: ReplaceConInFTerm(old, newVar, t.Else)}
	case types.FInt:
		return t
	case types.FArith:
		return types.FArith{Op: t.Op, Left: ReplaceConInFTerm(old, newVar, t.Left), Right: ReplaceConInFTerm(old, newVar, t.Right)}
	case types.FList:
		out := make([]types.FTerm, len(t.Elems))
		for i, el := range t.Elems {
			out[i] = ReplaceConInFTerm(old, newVar, el)
		}
		return types.FList{Elems: out}
	case types.FConcat:
		return types.FConcat{Left: ReplaceConInFTerm(old, newVar, t.Left), Right: ReplaceConInFTerm(old, newVar, t.Right)}
	case types.FETAbs:
		return types.FETAbs{Var: t.Var, Body: ReplaceConInFTerm(old, newVar, t.Body)}
	case types.FETApp:
		return types.FETApp{Term: ReplaceConInFTerm(old, newVar, t.Term), Arg: ReplaceCon(old, newVar, t.Arg)}
	default:
		return e
	}
}
