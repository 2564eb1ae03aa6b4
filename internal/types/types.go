// Package types defines the term and type data model shared by the
// inference engine and the simplifier: implicit source terms, explicit
// target terms, and the three-shape type family they are checked
// against.
package types

import (
	"fmt"
	"strings"
)

// Type is the sealed family of type shapes: type variables, applied
// type constructors, and universal quantification.
type Type interface {
	fmt.Stringer
	isType()
}

// TVar is a type variable. Depending on where it occurs it plays the
// role of a flexible unification variable or a variable bound by an
// enclosing TForAll.
type TVar struct {
	Name string
}

// TCon is a type constructor applied to its argument types. Len(Args)
// must equal the constructor's declared arity (see PrimitiveArities
// and the engine's arity map).
type TCon struct {
	Name string
	Args []Type
}

// TForAll is universal quantification, binding Name in Body.
type TForAll struct {
	Name string
	Body Type
}

func (TVar) isType()    {}
func (TCon) isType()    {}
func (TForAll) isType() {}

// Names of the three built-in type constructors and the uniform binary
// arrow representation.
const (
	ConBool  = "Bool"
	ConInt   = "Int"
	ConList  = "List"
	ConArrow = "Arrow"
)

// PrimitiveArities is the arity map an inference engine is seeded
// with; it grows as freshSkolem allocates Skolem constants (always
// arity 0).
func PrimitiveArities() map[string]int {
	return map[string]int{
		ConBool:  0,
		ConInt:   0,
		ConList:  1,
		ConArrow: 2,
	}
}

// Bool, Int, List and Arrow build the primitive type constructors.
func Bool() Type           { return TCon{Name: ConBool} }
func Int() Type            { return TCon{Name: ConInt} }
func List(elem Type) Type  { return TCon{Name: ConList, Args: []Type{elem}} }
func Arrow(dom, cod Type) Type {
	return TCon{Name: ConArrow, Args: []Type{dom, cod}}
}

// IsArrow reports whether t is an Arrow constructor and, if so,
// returns its domain and codomain.
func IsArrow(t Type) (dom, cod Type, ok bool) {
	c, isCon := t.(TCon)
	if !isCon || c.Name != ConArrow || len(c.Args) != 2 {
		return nil, nil, false
	}
	return c.Args[0], c.Args[1], true
}

// skolemPrefix marks a TCon name as a Skolem constant rather than a
// user- or primitive-named constructor. Skolems are otherwise
// ordinary nullary constructors; the escape checks in subsumption and
// unification match each Skolem's full name, and IsSkolemName tests
// for the prefix.
const skolemPrefix = "#skolem"

// NewSkolem builds a fresh rigid nullary type constructor from a
// unique name handed out by the engine's fresh-name counter.
func NewSkolem(id int) Type {
	return TCon{Name: fmt.Sprintf("%s%d", skolemPrefix, id)}
}

// IsSkolemName reports whether a constructor name was minted by
// NewSkolem.
func IsSkolemName(name string) bool {
	return strings.HasPrefix(name, skolemPrefix)
}

func (t TVar) String() string { return t.Name }

func (t TCon) String() string {
	switch {
	case t.Name == ConArrow && len(t.Args) == 2:
		domStr := t.Args[0].String()
		if _, isArrow := t.Args[0].(TCon); isArrow {
			if d, _, ok := IsArrow(t.Args[0]); ok {
				_ = d
				domStr = "(" + domStr + ")"
			}
		}
		return fmt.Sprintf("%s -> %s", domStr, t.Args[1].String())
	case t.Name == ConList && len(t.Args) == 1:
		return fmt.Sprintf("List %s", t.Args[0].String())
	case len(t.Args) == 0:
		return t.Name
	default:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s %s", t.Name, strings.Join(parts, " "))
	}
}

func (t TForAll) String() string {
	return fmt.Sprintf("forall %s. %s", t.Name, t.Body.String())
}

// TVarSet is an unordered set of type-variable names.
type TVarSet map[string]struct{}

func NewTVarSet(names ...string) TVarSet {
	s := make(TVarSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s TVarSet) Add(name string) { s[name] = struct{}{} }

func (s TVarSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

func (s TVarSet) Union(other TVarSet) TVarSet {
	out := make(TVarSet, len(s)+len(other))
	for n := range s {
		out[n] = struct{}{}
	}
	for n := range other {
		out[n] = struct{}{}
	}
	return out
}

func (s TVarSet) Difference(other TVarSet) TVarSet {
	out := make(TVarSet, len(s))
	for n := range s {
		if !other.Contains(n) {
			out[n] = struct{}{}
		}
	}
	return out
}

// FreeTypeVars returns the free type variables of t: every TVar not
// bound by an enclosing TForAll.
func FreeTypeVars(t Type) TVarSet {
	switch tt := t.(type) {
	case TVar:
		return NewTVarSet(tt.Name)
	case TCon:
		out := NewTVarSet()
		for _, a := range tt.Args {
			out = out.Union(FreeTypeVars(a))
		}
		return out
	case TForAll:
		inner := FreeTypeVars(tt.Body)
		delete(inner, tt.Name)
		return inner
	default:
		return NewTVarSet()
	}
}

// ConNames returns every type-constructor name appearing anywhere in
// t, including nested Skolems. Used by the subsumption escape check.
func ConNames(t Type) TVarSet {
	switch tt := t.(type) {
	case TVar:
		return NewTVarSet()
	case TCon:
		out := NewTVarSet(tt.Name)
		for _, a := range tt.Args {
			out = out.Union(ConNames(a))
		}
		return out
	case TForAll:
		return ConNames(tt.Body)
	default:
		return NewTVarSet()
	}
}

// PeelForAll strips every outer TForAll from t, returning the bound
// names in binding order and the quantifier-free body.
func PeelForAll(t Type) (names []string, body Type) {
	for {
		fa, ok := t.(TForAll)
		if !ok {
			return names, t
		}
		names = append(names, fa.Name)
		t = fa.Body
	}
}

// WrapForAll re-quantifies body over names, outermost name bound
// first, i.e. the inverse of PeelForAll.
func WrapForAll(names []string, body Type) Type {
	t := body
	for i := len(names) - 1; i >= 0; i-- {
		t = TForAll{Name: names[i], Body: t}
	}
	return t
}
