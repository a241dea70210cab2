// Package codegen derives the names and type expressions a client library
// generator emits for a linked discovery.API.
package codegen

import (
	"log/slog"
	"strings"

	"github.com/broady/discogen/discovery"
)

// scopeSeparator joins the segments of a qualified name.
const scopeSeparator = "::"

// Resolver maps schemas to type expressions and nodes to qualified names.
// A configured Resolver is safe for concurrent use.
type Resolver struct {
	cfg    Config
	logger *slog.Logger
}

// NewResolver validates cfg and returns a Resolver using it.
func NewResolver(cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg}, nil
}

// WithLogger sets a custom logger for diagnostics.
// If not set, slog.Default() will be used.
func (r *Resolver) WithLogger(logger *slog.Logger) *Resolver {
	r.logger = logger
	return r
}

func (r *Resolver) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// Config returns the resolver's configuration.
func (r *Resolver) Config() Config { return r.cfg }

// Type returns the type expression for s.
//
// Primitive kinds map through the configured table, with the "date-time"
// and "date" formats taking precedence. Arrays and hashes wrap the resolved
// type of their element schema. Objects resolve to their qualified name.
func (r *Resolver) Type(s *discovery.Schema) (string, error) {
	types := r.cfg.Types

	switch s.Type {
	case discovery.KindString, discovery.KindBoolean, discovery.KindNumber, discovery.KindInteger, discovery.KindAny:
		switch s.Format {
		case discovery.FormatDateTime:
			return types.DateTime, nil
		case discovery.FormatDate:
			return types.Date, nil
		}
		return r.primitive(s.Type), nil

	case discovery.KindArray:
		if s.Items == nil {
			return "", discovery.Errorf(discovery.CodeMalformedSchema, schemaPath(s), "array schema has no items")
		}
		elem, err := r.Type(s.Items)
		if err != nil {
			return "", err
		}
		return fill(types.Array, elem), nil

	case discovery.KindHash:
		if s.AdditionalProperties == nil {
			return "", discovery.Errorf(discovery.CodeMalformedSchema, schemaPath(s), "hash schema has no additionalProperties")
		}
		value, err := r.Type(s.AdditionalProperties)
		if err != nil {
			return "", err
		}
		return fill(types.Hash, value), nil

	case discovery.KindObject:
		return r.QualifiedName(s)

	default:
		return "", discovery.Errorf(discovery.CodeUnknownSchemaType, schemaPath(s), "cannot resolve schema type %q", s.Type)
	}
}

func (r *Resolver) primitive(k discovery.Kind) string {
	types := r.cfg.Types
	switch k {
	case discovery.KindString:
		return types.String
	case discovery.KindBoolean:
		return types.Boolean
	case discovery.KindNumber:
		return types.Number
	case discovery.KindInteger:
		return types.Integer
	default:
		return types.Any
	}
}

// QualifiedName returns the fully scoped name of n.
//
//   - API: Namespace::ModuleName
//   - Schema: the enclosing scope's qualified name, then the schema's
//     generated class name. The class name must already be assigned.
//   - Method, Resource: the enclosing scope's qualified name. Methods and
//     resources are not namespaces in generated code.
//
// The enclosing scope of a node is its nearest ancestor that is not an
// array, hash or primitive schema, so the element type of an array
// property nests directly under the object declaring the property.
func (r *Resolver) QualifiedName(n discovery.Node) (string, error) {
	switch n := n.(type) {
	case *discovery.API:
		return r.cfg.Namespace + scopeSeparator + n.ModuleName(), nil

	case *discovery.Schema:
		if n.GeneratedClassName == "" {
			return "", discovery.Errorf(discovery.CodeMalformedSchema, schemaPath(n), "schema has no generated class name")
		}
		prefix, err := r.scopeName(n)
		if err != nil {
			return "", err
		}
		return prefix + scopeSeparator + n.GeneratedClassName, nil

	case *discovery.Method, *discovery.Resource:
		return r.scopeName(n)

	default:
		return "", discovery.Errorf(discovery.CodeInvalidHierarchy, "", "cannot qualify %T", n)
	}
}

// scopeName returns the qualified name of n's enclosing scope.
func (r *Resolver) scopeName(n discovery.Node) (string, error) {
	parent := n.Parent()
	for {
		s, ok := parent.(*discovery.Schema)
		if !ok || s.Type == discovery.KindObject {
			break
		}
		parent = s.Parent()
	}
	if parent == nil {
		return "", discovery.Errorf(discovery.CodeInvalidHierarchy, nodePath(n), "%s is not linked to an API", strings.ToLower(n.NodeKind().String()))
	}
	return r.QualifiedName(parent)
}

// BaseType returns the qualified name of the schema s extends, or "" when
// s has no base reference. The base is looked up among the top-level
// schemas of s's API.
func (r *Resolver) BaseType(s *discovery.Schema) (string, error) {
	if s.BaseRef == "" {
		return "", nil
	}
	api := discovery.Root(s)
	if api == nil {
		return "", discovery.Errorf(discovery.CodeInvalidHierarchy, schemaPath(s), "schema is not linked to an API")
	}
	base := api.FindSchema(s.BaseRef)
	if base == nil {
		return "", discovery.Errorf(discovery.CodeUnresolvedReference, schemaPath(s), "base schema %q does not exist", s.BaseRef)
	}
	return r.QualifiedName(base)
}

// fill substitutes typ for the single "%s" in pattern.
func fill(pattern, typ string) string {
	return strings.Replace(pattern, "%s", typ, 1)
}

// schemaPath identifies s in diagnostics, falling back to its name before
// the hierarchy is linked.
func schemaPath(s *discovery.Schema) string {
	if p := s.Path(); p != "" {
		return p
	}
	return s.Name
}

func nodePath(n discovery.Node) string {
	if s, ok := n.(*discovery.Schema); ok {
		return schemaPath(s)
	}
	return n.Path()
}
