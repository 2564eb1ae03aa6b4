package infer

import (
	"github.com/hmf-lang/hmfc/internal/diagnostics"
	"github.com/hmf-lang/hmfc/internal/subst"
	"github.com/hmf-lang/hmfc/internal/types"
)

// Infer produces an elaborated term, its type, and the substitution
// applied to the context while inferring it (4.5).
func (e *Engine) Infer(term types.ITerm) (types.FTerm, types.Type, subst.Subst, error) {
	switch t := term.(type) {
	case types.IVar:
		return e.inferVar(t)
	case types.ILam:
		return e.inferLam(t)
	case types.IApp:
		return e.inferApp(t)
	case types.ILet:
		return e.inferLet(t)
	case types.IAnnot:
		return e.inferAnnot(t)
	case types.IBool:
		return types.FBool{Value: t.Value}, types.Bool(), subst.Empty(), nil
	case types.IIf:
		return e.inferIf(t)
	case types.IInt:
		return types.FInt{Value: t.Value}, types.Int(), subst.Empty(), nil
	case types.IArith:
		return e.inferArith(t)
	case types.IList:
		return e.inferList(t)
	case types.IConcat:
		return e.inferConcat(t)
	default:
		return nil, nil, nil, diagnostics.MalformedArrow(types.Int())
	}
}

// Check is infer followed by subsume against the expected type.
func (e *Engine) Check(term types.ITerm, expected types.Type) (types.FTerm, types.Type, subst.Subst, error) {
	elaborated, ty, s1, err := e.Infer(term)
	if err != nil {
		return nil, nil, nil, err
	}
	expectedHere := subst.ApplyType(s1, expected)
	elaborated2, s2, err := e.Subsume(elaborated, ty, expectedHere)
	if err != nil {
		return nil, nil, nil, err
	}
	full := subst.Compose(s1, s2)
	finalTy := subst.ApplyType(s2, expectedHere)
	return elaborated2, finalTy, full, nil
}

func (e *Engine) inferVar(t types.IVar) (types.FTerm, types.Type, subst.Subst, error) {
	ty, ok := e.ctx[t.Name]
	if !ok {
		return nil, nil, nil, diagnostics.UndefinedVariable(t.Name)
	}
	return types.FVar{Name: t.Name}, ty, subst.Empty(), nil
}

func (e *Engine) inferLam(t types.ILam) (types.FTerm, types.Type, subst.Subst, error) {
	var paramType types.Type
	if t.Ann != nil {
		paramType = e.Sanitize(t.Ann)
	} else {
		paramType = e.FreshTVar()
	}
	if err := e.bind(t.Param, paramType); err != nil {
		return nil, nil, nil, err
	}
	bodyElab, bodyTy, s, err := e.Infer(t.Body)
	if err != nil {
		e.unbind(t.Param)
		return nil, nil, nil, err
	}
	// The parameter's type may have been solved by unification while
	// inferring the body; read it back before the binder leaves scope.
	resolvedParam := e.ctx[t.Param]
	e.unbind(t.Param)

	if t.Ann == nil {
		if _, isForall := resolvedParam.(types.TForAll); isForall {
			return nil, nil, nil, diagnostics.PolymorphicArgument(t.Param, resolvedParam)
		}
	}

	openedBody, openedTy := e.Open(bodyElab, bodyTy)

	lam := types.FLam{Param: t.Param, Ann: resolvedParam, Body: openedBody}
	lamTy := types.Arrow(resolvedParam, openedTy)
	genTerm, genTy := e.Generalize(lam, lamTy)
	return genTerm, genTy, s, nil
}

func (e *Engine) inferApp(t types.IApp) (types.FTerm, types.Type, subst.Subst, error) {
	a1 := e.FreshTVar()
	a2 := e.FreshTVar()
	funElab, funTy, s1, err := e.Check(t.Fun, types.Arrow(a1, a2))
	if err != nil {
		return nil, nil, nil, err
	}
	dom, cod, ok := types.IsArrow(funTy)
	if !ok {
		return nil, nil, nil, diagnostics.MalformedArrow(funTy)
	}
	argElab, _, s2, err := e.Check(t.Arg, dom)
	if err != nil {
		return nil, nil, nil, err
	}
	full := subst.Compose(s1, s2)
	finalCod := subst.ApplyType(s2, cod)
	app := types.FApp{Fun: subst.ApplyFTerm(s2, funElab), Arg: argElab}
	genTerm, genTy := e.Generalize(app, finalCod)
	return genTerm, genTy, full, nil
}

func (e *Engine) inferLet(t types.ILet) (types.FTerm, types.Type, subst.Subst, error) {
	valElab, valTy, s1, err := e.Infer(t.Value)
	if err != nil {
		return nil, nil, nil, err
	}
	genVal, genTy := e.Generalize(valElab, valTy)
	if err := e.bind(t.Name, genTy); err != nil {
		return nil, nil, nil, err
	}
	bodyElab, bodyTy, s2, err := e.Infer(t.Body)
	if err != nil {
		e.unbind(t.Name)
		return nil, nil, nil, err
	}
	e.unbind(t.Name)
	full := subst.Compose(s1, s2)

	// A let is elaborated as an immediate application of a lambda.
	// The lambda's mandatory parameter annotation carries the full
	// generalized scheme, so uses of the bound name inside the body
	// remain let-polymorphic even though the target lambda binder
	// itself is, syntactically, a single parameter.
	desugared := types.FApp{
		Fun: types.FLam{Param: t.Name, Ann: genTy, Body: bodyElab},
		Arg: genVal,
	}
	return desugared, bodyTy, full, nil
}

func (e *Engine) inferAnnot(t types.IAnnot) (types.FTerm, types.Type, subst.Subst, error) {
	sanitized := e.Sanitize(t.Ann)
	elaborated, ty, s, err := e.Check(t.Term, sanitized)
	if err != nil {
		return nil, nil, nil, err
	}
	genTerm, genTy := e.Generalize(elaborated, ty)
	return genTerm, genTy, s, nil
}

func (e *Engine) inferIf(t types.IIf) (types.FTerm, types.Type, subst.Subst, error) {
	condElab, _, s1, err := e.Check(t.Cond, types.Bool())
	if err != nil {
		return nil, nil, nil, err
	}
	branchTy := e.FreshTVar()
	thenElab, thenTy, s2, err := e.Check(t.Then, branchTy)
	if err != nil {
		return nil, nil, nil, err
	}
	elseElab, elseTy, s3, err := e.Check(t.Else, thenTy)
	if err != nil {
		return nil, nil, nil, err
	}
	full := subst.Compose(subst.Compose(s1, s2), s3)
	ifTerm := types.FIf{
		Cond: subst.ApplyFTerm(subst.Compose(s2, s3), condElab),
		Then: subst.ApplyFTerm(s3, thenElab),
		Else: elseElab,
	}
	genTerm, genTy := e.Generalize(ifTerm, elseTy)
	return genTerm, genTy, full, nil
}

func (e *Engine) inferArith(t types.IArith) (types.FTerm, types.Type, subst.Subst, error) {
	leftElab, _, s1, err := e.Check(t.Left, types.Int())
	if err != nil {
		return nil, nil, nil, err
	}
	rightElab, _, s2, err := e.Check(t.Right, types.Int())
	if err != nil {
		return nil, nil, nil, err
	}
	full := subst.Compose(s1, s2)
	term := types.FArith{Op: t.Op, Left: subst.ApplyFTerm(s2, leftElab), Right: rightElab}
	genTerm, genTy := e.Generalize(term, types.Int())
	return genTerm, genTy, full, nil
}

func (e *Engine) inferList(t types.IList) (types.FTerm, types.Type, subst.Subst, error) {
	elemTy := types.Type(e.FreshTVar())
	full := subst.Empty()
	elems := make([]types.FTerm, len(t.Elems))
	for i, el := range t.Elems {
		elab, ty, s, err := e.Check(el, elemTy)
		if err != nil {
			return nil, nil, nil, err
		}
		for j := 0; j < i; j++ {
			elems[j] = subst.ApplyFTerm(s, elems[j])
		}
		elems[i] = elab
		full = subst.Compose(full, s)
		elemTy = ty
	}
	term := types.FList{Elems: elems}
	genTerm, genTy := e.Generalize(term, types.List(elemTy))
	return genTerm, genTy, full, nil
}

func (e *Engine) inferConcat(t types.IConcat) (types.FTerm, types.Type, subst.Subst, error) {
	elem := e.FreshTVar()
	leftElab, leftTy, s1, err := e.Check(t.Left, types.List(elem))
	if err != nil {
		return nil, nil, nil, err
	}
	rightElab, rightTy, s2, err := e.Check(t.Right, leftTy)
	if err != nil {
		return nil, nil, nil, err
	}
	full := subst.Compose(s1, s2)
	term := types.FConcat{Left: subst.ApplyFTerm(s2, leftElab), Right: rightElab}
	genTerm, genTy := e.Generalize(term, rightTy)
	return genTerm, genTy, full, nil
}
