package infer

import (
	"github.com/hmf-lang/hmfc/internal/diagnostics"
	"github.com/hmf-lang/hmfc/internal/simplify"
	"github.com/hmf-lang/hmfc/internal/types"
)

// TypeCheck is the engine's single external operation: it runs a
// fresh inference over term, simplifies the result, and returns the
// elaborated term paired with its closed type. Category-4 internal
// invariant violations, which surface as panics from deep inside
// subst.Singleton, are recovered here and converted into an ordinary
// error rather than crashing the caller.
func TypeCheck(term types.ITerm) (elaborated types.FTerm, ty types.Type, err error) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*diagnostics.StandardError); ok {
				elaborated, ty, err = nil, nil, se
				return
			}
			panic(r)
		}
	}()

	e := New()
	rawTerm, rawTy, _, inferErr := e.Infer(term)
	if inferErr != nil {
		return nil, nil, inferErr
	}
	return simplify.Simplify(rawTerm), rawTy, nil
}
