package discovery

// Parameter locations classified by this package. Discovery documents may
// carry others; those are preserved in Parameter.Location but belong to
// neither PathParameters nor QueryParameters.
const (
	LocationPath  = "path"
	LocationQuery = "query"
)

// Parameter is a single method parameter.
type Parameter struct {
	Name        string
	Location    string
	Required    bool
	Repeated    bool
	Description string

	// GeneratedName is assigned by the generator's naming pass.
	GeneratedName string

	method *Method
	path   string
}

// Method returns the method declaring the parameter.
func (p *Parameter) Method() *Method { return p.method }

// Path returns the parameter's structural location.
func (p *Parameter) Path() string { return p.path }

// Method is one callable REST operation.
type Method struct {
	// Name is the method's key within its resource (e.g. "list").
	Name string

	// ID is the discovery method id (e.g. "drive.files.list").
	ID string

	HTTPMethod string

	// RestPath is the URL path template relative to the service root.
	RestPath string

	// Parameters holds the declared parameters. Nil means the document
	// declares none.
	Parameters []*Parameter

	// ParameterOrder lists parameter names in path-substitution order.
	// Nil means the document omits it.
	ParameterOrder []string

	// Request and Response are the body schemas, if any. They are owned by
	// the method.
	Request  *Schema
	Response *Schema

	// GeneratedName is assigned by the generator's naming pass.
	GeneratedName string

	parent Node
	path   string
}

// NodeKind returns NodeMethod.
func (m *Method) NodeKind() NodeKind { return NodeMethod }

// Parent returns the owning resource or API.
func (m *Method) Parent() Node { return m.parent }

// Path returns the method's structural location.
func (m *Method) Path() string { return m.path }

func (*Method) sealed() {}

// Parameter looks up a parameter by name. Returns nil if not found.
func (m *Method) Parameter(name string) *Parameter {
	for _, p := range m.Parameters {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// PathParameters returns the path parameters in ParameterOrder order, which
// is the order they substitute into the URL template. It returns nil when
// either ParameterOrder or Parameters is absent.
func (m *Method) PathParameters() []*Parameter {
	if m.ParameterOrder == nil || m.Parameters == nil {
		return nil
	}
	var params []*Parameter
	for _, name := range m.ParameterOrder {
		p := m.Parameter(name)
		if p == nil || p.Location != LocationPath {
			continue
		}
		params = append(params, p)
	}
	return params
}

// QueryParameters returns the query parameters in declaration order. It
// returns nil when Parameters is absent.
func (m *Method) QueryParameters() []*Parameter {
	var params []*Parameter
	for _, p := range m.Parameters {
		if p.Location == LocationQuery {
			params = append(params, p)
		}
	}
	return params
}

// Resource groups methods and nested resources under a name.
type Resource struct {
	Name string

	// Methods and Resources are nil when the document declares none.
	Methods   []*Method
	Resources []*Resource

	parent Node
	path   string
}

// NodeKind returns NodeResource.
func (r *Resource) NodeKind() NodeKind { return NodeResource }

// Parent returns the owning resource or API.
func (r *Resource) Parent() Node { return r.parent }

// Path returns the resource's structural location.
func (r *Resource) Path() string { return r.path }

func (*Resource) sealed() {}

// AllMethods returns the resource's own methods followed by those of each
// nested resource, depth-first in declaration order.
func (r *Resource) AllMethods() []*Method {
	return collectMethods(nil, r.Methods, r.Resources)
}

func collectMethods(dst []*Method, methods []*Method, resources []*Resource) []*Method {
	dst = append(dst, methods...)
	for _, r := range resources {
		dst = collectMethods(dst, r.Methods, r.Resources)
	}
	return dst
}
