package discovery

import "errors"

// Link wires the parent back-reference of every node reachable from a and
// assigns structural paths. It must be called once, after the loader has
// populated the hierarchy and before any derivation query.
//
// Link reports every problem it finds, joined:
//   - a node reachable more than once (shared between owners, or a cycle)
//   - a node already linked under a different parent
//   - two siblings of the same category with the same name
//   - a ParameterOrder entry that names no declared parameter
//
// Calling Link again on an unchanged hierarchy is a no-op.
func (a *API) Link() error {
	l := &linker{seen: make(map[any]bool)}
	l.siblings("", "schemas", schemaNames(a.Schemas))
	for _, s := range a.Schemas {
		l.schema(s, a, joinPath("schemas", s.Name))
	}
	l.container(a, "", a.Methods, a.Resources)

	if len(l.errs) > 0 {
		return errors.Join(l.errs...)
	}
	a.linked = true
	return nil
}

type linker struct {
	seen map[any]bool
	errs []error
}

func (l *linker) fail(path string, format string, args ...any) {
	l.errs = append(l.errs, Errorf(CodeInvalidHierarchy, path, format, args...))
}

// claim records n as visited and reports whether it was new.
func (l *linker) claim(n any, path string) bool {
	if l.seen[n] {
		l.fail(path, "node is reachable more than once")
		return false
	}
	l.seen[n] = true
	return true
}

func (l *linker) adopt(current *Node, parent Node, path string) bool {
	if *current != nil && *current != parent {
		l.fail(path, "node is already linked under %q", (*current).Path())
		return false
	}
	*current = parent
	return true
}

func (l *linker) schema(s *Schema, parent Node, path string) {
	if s == nil || !l.claim(s, path) || !l.adopt(&s.parent, parent, path) {
		return
	}
	s.path = path

	l.siblings(path, "properties", schemaNames(s.Properties))
	for _, p := range s.Properties {
		l.schema(p, s, joinPath(path, "properties", p.Name))
	}
	l.schema(s.Items, s, joinPath(path, "items"))
	l.schema(s.AdditionalProperties, s, joinPath(path, "additionalProperties"))
}

func (l *linker) container(parent Node, path string, methods []*Method, resources []*Resource) {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name
	}
	l.siblings(path, "methods", names)
	for _, m := range methods {
		l.method(m, parent, joinPath(path, "methods", m.Name))
	}

	names = make([]string, len(resources))
	for i, r := range resources {
		names[i] = r.Name
	}
	l.siblings(path, "resources", names)
	for _, r := range resources {
		l.resource(r, parent, joinPath(path, "resources", r.Name))
	}
}

func (l *linker) resource(r *Resource, parent Node, path string) {
	if !l.claim(r, path) || !l.adopt(&r.parent, parent, path) {
		return
	}
	r.path = path
	l.container(r, path, r.Methods, r.Resources)
}

func (l *linker) method(m *Method, parent Node, path string) {
	if !l.claim(m, path) || !l.adopt(&m.parent, parent, path) {
		return
	}
	m.path = path

	names := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		names[i] = p.Name
		if p.method != nil && p.method != m {
			l.fail(joinPath(path, "parameters", p.Name), "parameter is already linked under %q", p.method.path)
			continue
		}
		p.method = m
		p.path = joinPath(path, "parameters", p.Name)
	}
	l.siblings(path, "parameters", names)

	if m.Parameters != nil {
		for _, name := range m.ParameterOrder {
			if m.Parameter(name) == nil {
				l.fail(path, "parameterOrder names undeclared parameter %q", name)
			}
		}
	}

	l.schema(m.Request, m, joinPath(path, "request"))
	l.schema(m.Response, m, joinPath(path, "response"))
}

// siblings reports duplicate names within one category of a node.
func (l *linker) siblings(path, category string, names []string) {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			l.fail(path, "duplicate %s entry %q", category, name)
			continue
		}
		seen[name] = true
	}
}

func schemaNames(schemas []*Schema) []string {
	names := make([]string, len(schemas))
	for i, s := range schemas {
		names[i] = s.Name
	}
	return names
}
