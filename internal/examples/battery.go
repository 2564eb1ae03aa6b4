// Package examples provides a small fixed battery of named implicit
// programs, standing in for the parser the core explicitly treats as
// an external collaborator (see SPEC_FULL.md §1). Both the CLI driver
// and the test suite run programs by name out of this battery so that
// every end-to-end scenario, and every error category reachable from
// well-formed input, has a nameable, reproducible example.
package examples

import "github.com/hmf-lang/hmfc/internal/types"

// Program is one named entry in the battery.
type Program struct {
	Name        string
	Description string
	Term        types.ITerm
	// WantError reports whether type-checking this program is
	// expected to fail; it documents intent for the CLI's "run all"
	// summary, not a promise the type checker itself makes.
	WantError bool
}

func v(name string) types.ITerm { return types.IVar{Name: name} }

func forallAA() types.Type {
	return types.TForAll{Name: "A", Body: types.Arrow(types.TVar{Name: "A"}, types.TVar{Name: "A"})}
}

var identity = types.ILam{Param: "x", Body: v("x")}

// All is the fixed example battery, in a stable, deliberate order:
// the eight end-to-end scenarios of SPEC_FULL.md §8 first, then
// rejected programs for the scope, unification and polymorphism error
// categories of §7. The internal category has no entry.
var All = []Program{
	{
		Name:        "true",
		Description: "the boolean literal true",
		Term:        types.IBool{Value: true},
	},
	{
		Name:        "identity",
		Description: "the unannotated identity function",
		Term:        identity,
	},
	{
		Name:        "identity-applied",
		Description: "(\\x. x) 42; the simplifier removes the type abstraction, leaving (\\x:Int. x) 42",
		Term:        types.IApp{Fun: identity, Arg: types.IInt{Value: 42}},
	},
	{
		Name:        "rank2-apply",
		Description: "a rank-2 annotated parameter applied at Int",
		Term: types.ILam{
			Param: "f",
			Ann:   forallAA(),
			Body:  types.IApp{Fun: v("f"), Arg: types.IInt{Value: 42}},
		},
	},
	{
		Name:        "let-polymorphism",
		Description: "let id = \\x.x in id id, exercising let-polymorphism",
		Term: types.ILet{
			Name:  "id",
			Value: identity,
			Body:  types.IApp{Fun: v("id"), Arg: v("id")},
		},
	},
	{
		Name:        "increment",
		Description: "\\x. x + 1",
		Term:        types.ILam{Param: "x", Body: types.IArith{Op: types.Add, Left: v("x"), Right: types.IInt{Value: 1}}},
	},
	{
		Name:        "if-list",
		Description: "if true then [1, 2] else []",
		Term: types.IIf{
			Cond: types.IBool{Value: true},
			Then: types.IList{Elems: []types.ITerm{types.IInt{Value: 1}, types.IInt{Value: 2}}},
			Else: types.IList{},
		},
	},
	{
		Name:        "self-application",
		Description: "\\x. x x, rejected as an infinite type",
		Term:        types.ILam{Param: "x", Body: types.IApp{Fun: v("x"), Arg: v("x")}},
		WantError:   true,
	},
	{
		Name:        "undefined-variable",
		Description: "a reference to a variable never bound",
		Term:        v("nowhere"),
		WantError:   true,
	},
	{
		Name:        "shadowing",
		Description: "nested lets rebinding the same user name",
		Term: types.ILet{
			Name:  "x",
			Value: types.IInt{Value: 1},
			Body: types.ILet{
				Name:  "x",
				Value: types.IInt{Value: 2},
				Body:  v("x"),
			},
		},
		WantError: true,
	},
	{
		Name:        "arity-mismatch",
		Description: "a singleton list ascribed to a malformed zero-argument List type",
		Term: types.IAnnot{
			Term: types.IList{Elems: []types.ITerm{types.IInt{Value: 1}}},
			Ann:  types.TCon{Name: types.ConList},
		},
		WantError: true,
	},
	{
		Name:        "skolem-escape",
		Description: "an unannotated parameter ascribed polymorphic inside its own body",
		Term: types.ILam{
			Param: "x",
			Body:  types.IAnnot{Term: v("x"), Ann: forallAA()},
		},
		WantError: true,
	},
}

// ByName looks up a battery entry by name.
func ByName(name string) (Program, bool) {
	for _, p := range All {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}
