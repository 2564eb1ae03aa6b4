package infer

import (
	"github.com/hmf-lang/hmfc/internal/subst"
	"github.com/hmf-lang/hmfc/internal/types"
)

// Open strips outer quantifiers from t, replacing each with a fresh
// unification variable and recording the corresponding type
// application on term. Returns the elaborated term and the
// quantifier-free type (4.4).
func (e *Engine) Open(term types.FTerm, t types.Type) (types.FTerm, types.Type) {
	names, body := types.PeelForAll(t)
	if len(names) == 0 {
		return term, t
	}
	elaborated := term
	s := subst.Empty()
	for _, n := range names {
		fv := e.FreshTVar()
		s = subst.Compose(s, subst.Singleton(n, fv))
		elaborated = types.FETApp{Term: elaborated, Arg: fv}
	}
	return elaborated, subst.ApplyType(s, body)
}

// Generalize closes term and t over type variables that are free in
// neither the current context nor already visited, in the order they
// first occur in term then t (4.4). Every generalized variable is
// removed from the in-scope unification-variable set, since it is no
// longer a meta to be solved — it is now bound.
func (e *Engine) Generalize(term types.FTerm, t types.Type) (types.FTerm, types.Type) {
	ctxFree := e.contextFreeVars()

	seen := types.NewTVarSet()
	var order []string
	collect := func(name string) {
		if seen.Contains(name) || ctxFree.Contains(name) {
			return
		}
		seen.Add(name)
		order = append(order, name)
	}
	for _, n := range orderedFreeVarsF(term) {
		collect(n)
	}
	for _, n := range orderedFreeVars(t) {
		collect(n)
	}

	if len(order) == 0 {
		return term, t
	}

	elaborated := term
	resultTy := t
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		elaborated = types.FETAbs{Var: n, Body: elaborated}
		resultTy = types.TForAll{Name: n, Body: resultTy}
	}
	for _, n := range order {
		delete(e.uvars, n)
	}
	return elaborated, resultTy
}

// orderedFreeVars walks t and returns its free type-variable names in
// first-occurrence order, excluding variables bound by an enclosing
// TForAll. Since every bound name is minted once by the engine's
// global fresh-name counter and never reused, a bound name can simply
// be excluded outright rather than tracked as a shadow within a local
// scope.
func orderedFreeVars(t types.Type) []string {
	var out []string
	seen := types.NewTVarSet()
	bound := types.NewTVarSet()
	var walk func(types.Type)
	walk = func(t types.Type) {
		switch tt := t.(type) {
		case types.TVar:
			if !bound.Contains(tt.Name) && !seen.Contains(tt.Name) {
				seen.Add(tt.Name)
				out = append(out, tt.Name)
			}
		case types.TCon:
			for _, a := range tt.Args {
				walk(a)
			}
		case types.TForAll:
			bound.Add(tt.Name)
			walk(tt.Body)
		}
	}
	walk(t)
	return out
}

// orderedFreeVarsF is the FTerm analogue of orderedFreeVars, walking
// embedded types in term order and excluding variables bound by an
// enclosing FETAbs.
func orderedFreeVarsF(term types.FTerm) []string {
	var out []string
	seen := types.NewTVarSet()
	bound := types.NewTVarSet()
	var collectType func(types.Type)
	collectType = func(t types.Type) {
		for _, n := range orderedFreeVars(t) {
			if !bound.Contains(n) && !seen.Contains(n) {
				seen.Add(n)
				out = append(out, n)
			}
		}
	}
	var walk func(types.FTerm)
	walk = func(e types.FTerm) {
		switch t := e.(type) {
		case types.FVar:
		case types.FLam:
			collectType(t.Ann)
			walk(t.Body)
		case types.FApp:
			walk(t.Fun)
			walk(t.Arg)
		case types.FLet:
			walk(t.Value)
			walk(t.Body)
		case types.FBool:
		case types.FIf:
			walk(t.Cond)
			walk(t.Then)
			walk(t.Else)
		case types.FInt:
		case types.FArith:
			walk(t.Left)
			walk(t.Right)
		case types.FList:
			for _, el := range t.Elems {
				walk(el)
			}
		case types.FConcat:
			walk(t.Left)
			walk(t.Right)
		case types.FETAbs:
			bound.Add(t.Var)
			walk(t.Body)
		case types.FETApp:
			walk(t.Term)
			collectType(t.Arg)
		}
	}
	walk(term)
	return out
}
