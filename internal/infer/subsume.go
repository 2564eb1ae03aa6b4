package infer

import (
	"github.com/hmf-lang/hmfc/internal/diagnostics"
	"github.com/hmf-lang/hmfc/internal/subst"
	"github.com/hmf-lang/hmfc/internal/types"
)

// Subsume checks whether term, of type t1, can be used where t2 is
// expected, producing an elaborated term that inserts the necessary
// type abstractions and applications, and the externally-visible
// residual substitution (4.3).
func (e *Engine) Subsume(term types.FTerm, t1, t2 types.Type) (types.FTerm, subst.Subst, error) {
	names1, u1 := types.PeelForAll(t1)
	names2, u2 := types.PeelForAll(t2)

	fresh := make([]types.TVar, len(names1))
	instSubst1 := subst.Empty()
	for i, n := range names1 {
		fv := e.FreshTVar()
		fresh[i] = fv
		instSubst1 = subst.Compose(instSubst1, subst.Singleton(n, fv))
	}
	instU1 := subst.ApplyType(instSubst1, u1)

	skolems := make([]types.TCon, len(names2))
	instSubst2 := subst.Empty()
	for i, n := range names2 {
		sk := e.freshSkolem()
		skolems[i] = sk
		instSubst2 = subst.Compose(instSubst2, subst.Singleton(n, sk))
	}
	instU2 := subst.ApplyType(instSubst2, u2)

	theta1, err := e.unify(instU1, instU2)
	if err != nil {
		return nil, nil, err
	}
	e.applyToContext(theta1)

	freshNames := make([]string, len(fresh))
	for i, v := range fresh {
		freshNames[i] = v.Name
	}
	theta2 := subst.RemoveKeys(freshNames, theta1)

	for _, sk := range skolems {
		for _, v := range theta2 {
			if types.ConNames(v).Contains(sk.Name) {
				return nil, nil, diagnostics.SkolemEscape(sk.Name)
			}
		}
	}

	elaborated := term
	for _, fv := range fresh {
		elaborated = types.FETApp{Term: elaborated, Arg: fv}
	}
	elaborated = subst.ApplyFTerm(theta1, elaborated)

	for i := len(skolems) - 1; i >= 0; i-- {
		sk := skolems[i]
		boundVar := e.freshBoundName()
		elaborated = subst.ReplaceConInFTerm(sk.Name, boundVar, elaborated)
		elaborated = types.FETAbs{Var: boundVar, Body: elaborated}
	}

	return elaborated, theta2, nil
}
