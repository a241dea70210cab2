package discovery

import "github.com/broady/discogen/naming"

// API is the root of a discovery hierarchy.
type API struct {
	// Name and Version are the raw discovery values, e.g. "drive", "v3".
	Name    string
	Version string

	// CanonicalName overrides Name when deriving the service name.
	CanonicalName string

	Title string

	// Schemas holds the top-level schemas in declaration order.
	Schemas []*Schema

	// Methods and Resources are nil when the document declares none.
	Methods   []*Method
	Resources []*Resource

	linked bool
}

// NodeKind returns NodeAPI.
func (a *API) NodeKind() NodeKind { return NodeAPI }

// Parent returns nil; the API is the root.
func (a *API) Parent() Node { return nil }

// Path returns the empty string.
func (a *API) Path() string { return "" }

func (*API) sealed() {}

// Linked reports whether Link has completed successfully.
func (a *API) Linked() bool { return a.linked }

// ModuleName returns the module identifier derived from Name and Version,
// e.g. "DriveV3".
func (a *API) ModuleName() string {
	return naming.ModuleIdentifier(a.Name, a.Version)
}

// ServiceName returns the service class identifier, e.g. "DriveService".
func (a *API) ServiceName() string {
	src := a.CanonicalName
	if src == "" {
		src = a.Name
	}
	return naming.ServiceIdentifier(src)
}

// FindSchema looks up a top-level schema by name. Returns nil if not found.
func (a *API) FindSchema(name string) *Schema {
	for _, s := range a.Schemas {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Subtypes returns the top-level schemas whose BaseRef is name, in
// declaration order.
func (a *API) Subtypes(name string) []*Schema {
	var subtypes []*Schema
	for _, s := range a.Schemas {
		if s.BaseRef == name {
			subtypes = append(subtypes, s)
		}
	}
	return subtypes
}

// AllMethods returns the API's own methods followed by those of every
// resource, depth-first in declaration order.
func (a *API) AllMethods() []*Method {
	return collectMethods(nil, a.Methods, a.Resources)
}

// AllSchemas returns every schema in the hierarchy: top-level schemas and
// everything nested in them, then the request and response schemas of each
// method in AllMethods order.
func (a *API) AllSchemas() []*Schema {
	var schemas []*Schema
	collect := func(s *Schema) { schemas = append(schemas, s) }
	for _, s := range a.Schemas {
		s.walk(collect)
	}
	for _, m := range a.AllMethods() {
		m.Request.walk(collect)
		m.Response.walk(collect)
	}
	return schemas
}
