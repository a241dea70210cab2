// Package discovery holds the in-memory model of a REST API discovery
// document: schemas, parameters, methods, resources and the API root.
//
// A loader fills the exported fields and then calls (*API).Link once to
// wire parent back-references. After Link the hierarchy is read-only and
// may be queried from multiple goroutines. The generator's name assignment
// pass is the one exception: it fills the Generated* fields before any
// qualified name is derived.
package discovery

import "strings"

// NodeKind identifies the category of a hierarchy node.
type NodeKind int

const (
	NodeAPI NodeKind = iota
	NodeResource
	NodeMethod
	NodeSchema
)

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeAPI:
		return "API"
	case NodeResource:
		return "Resource"
	case NodeMethod:
		return "Method"
	case NodeSchema:
		return "Schema"
	default:
		return "Unknown"
	}
}

// Node is implemented by every element of the API hierarchy that can own
// schemas: *API, *Resource, *Method and *Schema.
type Node interface {
	// NodeKind returns the node category for type switching.
	NodeKind() NodeKind

	// Parent returns the owning node, or nil for the API root and for
	// nodes that have not been linked.
	Parent() Node

	// Path returns the node's structural location, e.g.
	// "schemas/File/properties/owners/items". Empty for the API root.
	Path() string

	// Ensure only types in this package can implement Node.
	sealed()
}

// Root walks the parent chain from n and returns the API at its top, or
// nil if the chain does not end at an API.
func Root(n Node) *API {
	for n != nil {
		if api, ok := n.(*API); ok {
			return api
		}
		n = n.Parent()
	}
	return nil
}

// joinPath joins path segments with "/", skipping an empty prefix.
func joinPath(prefix string, segments ...string) string {
	rest := strings.Join(segments, "/")
	if prefix == "" {
		return rest
	}
	return prefix + "/" + rest
}
