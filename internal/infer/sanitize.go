package infer

import "github.com/hmf-lang/hmfc/internal/types"

// Sanitize renames every free variable in a type annotation to a
// fresh unification variable, and every bound variable to a fresh
// bound name, consistently within the single annotation occurrence.
// Free variables in an annotation are implicitly existentially bound
// per occurrence; without sanitization, two uses of the same
// annotation (or an annotation whose bound name collides with one
// already in scope) could capture variables during later
// substitution.
func (e *Engine) Sanitize(t types.Type) types.Type {
	free := make(map[string]types.Type)
	bound := make(map[string]string)

	var walk func(types.Type) types.Type
	walk = func(t types.Type) types.Type {
		switch tt := t.(type) {
		case types.TVar:
			if renamed, ok := bound[tt.Name]; ok {
				return types.TVar{Name: renamed}
			}
			if fv, ok := free[tt.Name]; ok {
				return fv
			}
			fv := e.FreshTVar()
			free[tt.Name] = fv
			return fv
		case types.TCon:
			if len(tt.Args) == 0 {
				return tt
			}
			args := make([]types.Type, len(tt.Args))
			for i, a := range tt.Args {
				args[i] = walk(a)
			}
			return types.TCon{Name: tt.Name, Args: args}
		case types.TForAll:
			freshName := e.freshBoundName()
			prev, had := bound[tt.Name]
			bound[tt.Name] = freshName
			body := walk(tt.Body)
			if had {
				bound[tt.Name] = prev
			} else {
				delete(bound, tt.Name)
			}
			return types.TForAll{Name: freshName, Body: body}
		default:
			return t
		}
	}
	return walk(t)
}
