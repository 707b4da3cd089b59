package render

import "strings"

// Env is the shared context entities serialize against.
type Env struct {
	Engine *Engine
	// PackageName namespaces texture paths inside the resource pack.
	PackageName string
}

// Serializable is implemented by every content entity. Serialize is a pure
// function of the entity and env; it never mutates either.
type Serializable interface {
	Serialize(env Env) (string, error)
}

// Join serializes each element and joins the results with sep.
func Join[T Serializable](env Env, xs []T, sep string) (string, error) {
	parts := make([]string, 0, len(xs))
	for _, x := range xs {
		s, err := x.Serialize(env)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}
