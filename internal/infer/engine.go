// Package infer implements the inference engine: unification,
// subsumption, open, generalize, and the mutually recursive
// infer/check judgement over implicit terms.
package infer

import (
	"fmt"

	"github.com/hmf-lang/hmfc/internal/diagnostics"
	"github.com/hmf-lang/hmfc/internal/subst"
	"github.com/hmf-lang/hmfc/internal/types"
)

// Engine holds the effectful state of one inference run: a fresh-name
// counter, the term-variable typing context, the in-scope
// unification-variable set, and the constructor-arity map. It is not
// safe for concurrent use; two concurrent inference runs must each
// build their own Engine.
type Engine struct {
	counter  int
	ctx      map[string]types.Type
	uvars    types.TVarSet
	conArity map[string]int
}

// New creates a fresh engine: counter at zero, empty context, empty
// unification-variable set, and the primitive constructor arities.
func New() *Engine {
	return &Engine{
		ctx:      make(map[string]types.Type),
		uvars:    types.NewTVarSet(),
		conArity: types.PrimitiveArities(),
	}
}

func (e *Engine) nextID() int {
	id := e.counter
	e.counter++
	return id
}

// FreshTVar allocates a new flexible unification variable and records
// it in the in-scope set.
func (e *Engine) FreshTVar() types.TVar {
	name := fmt.Sprintf("t%d", e.nextID())
	e.uvars.Add(name)
	return types.TVar{Name: name}
}

// freshSkolem allocates a new rigid nullary type constructor and
// registers its (zero) arity.
func (e *Engine) freshSkolem() types.TCon {
	con := types.NewSkolem(e.nextID()).(types.TCon)
	e.conArity[con.Name] = 0
	return con
}

// freshBoundName allocates a name for a newly-introduced TForAll
// binder or FETAbs variable; unlike FreshTVar it is not added to the
// unification-variable set, since bound names are never solved by
// unification.
func (e *Engine) freshBoundName() string {
	return fmt.Sprintf("a%d", e.nextID())
}

// bind extends the context with name ↦ t. Rebinding an already-bound
// user name is a scope error: shadowing by user-name key is
// forbidden.
func (e *Engine) bind(name string, t types.Type) error {
	if _, exists := e.ctx[name]; exists {
		return diagnostics.AlreadyBound(name)
	}
	e.ctx[name] = t
	return nil
}

// unbind removes name from the context. Every bind on every exit path
// (success or failure) must be paired with an unbind, keeping scope
// extension lexical.
func (e *Engine) unbind(name string) {
	delete(e.ctx, name)
}

// applyToContext propagates a solved substitution through every
// binding in the context, in place. Callers that call the unexported
// unify must invoke this themselves in the same step as consuming its
// result; Unify and Subsume already do this internally.
func (e *Engine) applyToContext(s subst.Subst) {
	if len(s) == 0 {
		return
	}
	for name, t := range e.ctx {
		e.ctx[name] = subst.ApplyType(s, t)
	}
}

func (e *Engine) contextFreeVars() types.TVarSet {
	out := types.NewTVarSet()
	for _, t := range e.ctx {
		out = out.Union(types.FreeTypeVars(t))
	}
	return out
}

// Unify computes a most general unifier of t1 and t2 and applies it to
// the context atomically before returning, per the engine's resource
// model: no intermediate step may observe a partially-updated
// context.
func (e *Engine) Unify(t1, t2 types.Type) (subst.Subst, error) {
	s, err := e.unify(t1, t2)
	if err != nil {
		return nil, err
	}
	e.applyToContext(s)
	return s, nil
}

// unify is the pure recursive core of Unify; it never touches the
// context. Rule order follows 4.2: identical variables, a variable
// against anything, matching constructors, matching quantifiers, and
// finally failure.
func (e *Engine) unify(t1, t2 types.Type) (subst.Subst, error) {
	if v1, ok := t1.(types.TVar); ok {
		if v2, ok := t2.(types.TVar); ok && v1.Name == v2.Name {
			return subst.Empty(), nil
		}
		if types.FreeTypeVars(t2).Contains(v1.Name) {
			return nil, diagnostics.HeadMismatch(t1, t2)
		}
		return subst.Singleton(v1.Name, t2), nil
	}
	if v2, ok := t2.(types.TVar); ok {
		if types.FreeTypeVars(t1).Contains(v2.Name) {
			return nil, diagnostics.HeadMismatch(t1, t2)
		}
		return subst.Singleton(v2.Name, t1), nil
	}

	c1, isCon1 := t1.(types.TCon)
	c2, isCon2 := t2.(types.TCon)
	if isCon1 && isCon2 {
		if c1.Name != c2.Name {
			return nil, diagnostics.HeadMismatch(t1, t2)
		}
		if len(c1.Args) != len(c2.Args) {
			return nil, diagnostics.ArityMismatch(c1.Name, len(c1.Args), len(c2.Args))
		}
		acc := subst.Empty()
		for i := range c1.Args {
			left := subst.ApplyType(acc, c1.Args[i])
			right := subst.ApplyType(acc, c2.Args[i])
			s, err := e.unify(left, right)
			if err != nil {
				return nil, err
			}
			acc = subst.Compose(acc, s)
		}
		return acc, nil
	}

	fa1, isForall1 := t1.(types.TForAll)
	fa2, isForall2 := t2.(types.TForAll)
	if isForall1 && isForall2 {
		skolem := e.freshSkolem()
		body1 := subst.ApplyType(subst.Singleton(fa1.Name, skolem), fa1.Body)
		body2 := subst.ApplyType(subst.Singleton(fa2.Name, skolem), fa2.Body)
		s, err := e.unify(body1, body2)
		if err != nil {
			return nil, err
		}
		for _, v := range s {
			if types.ConNames(v).Contains(skolem.Name) {
				return nil, diagnostics.SkolemEscape(skolem.Name)
			}
		}
		return s, nil
	}

	return nil, diagnostics.HeadMismatch(t1, t2)
}
