package codegen

import (
	"errors"
	"log/slog"

	"github.com/broady/discogen/discovery"
	"github.com/goccy/go-json"
)

// Manifest is the derived metadata for one API, in the shape handed to the
// emission engine.
type Manifest struct {
	API     APIEntry      `json:"api"`
	Schemas []SchemaEntry `json:"schemas"`
	Methods []MethodEntry `json:"methods"`
}

// APIEntry holds the identifiers derived from the API's name and version.
type APIEntry struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	ModuleName    string `json:"moduleName"`
	QualifiedName string `json:"qualifiedName"`
	ServiceName   string `json:"serviceName"`
}

// SchemaEntry describes one schema.
type SchemaEntry struct {
	Path string         `json:"path"`
	Kind discovery.Kind `json:"kind"`
	Type string         `json:"type"`

	// QualifiedName is set for object schemas only.
	QualifiedName string `json:"qualifiedName,omitempty"`

	BaseType          string `json:"baseType,omitempty"`
	Discriminant      string `json:"discriminant,omitempty"`
	DiscriminantValue string `json:"discriminantValue,omitempty"`
}

// MethodEntry describes one method and its parameter groups.
type MethodEntry struct {
	Path            string   `json:"path"`
	ID              string   `json:"id,omitempty"`
	GeneratedName   string   `json:"generatedName,omitempty"`
	HTTPMethod      string   `json:"httpMethod,omitempty"`
	RestPath        string   `json:"restPath,omitempty"`
	PathParameters  []string `json:"pathParameters"`
	QueryParameters []string `json:"queryParameters"`
}

// BuildManifest derives metadata for every schema and method of api, which
// must be linked.
//
// A schema whose type or base type cannot be resolved is left out of the
// manifest. Its error is logged and joined into the returned error, and the
// partial manifest is still returned so the caller can choose to continue.
func (r *Resolver) BuildManifest(api *discovery.API) (*Manifest, error) {
	if !api.Linked() {
		return nil, discovery.Errorf(discovery.CodeInvalidHierarchy, "", "api %s %s is not linked", api.Name, api.Version)
	}

	qualified, err := r.QualifiedName(api)
	if err != nil {
		return nil, err
	}
	m := &Manifest{
		API: APIEntry{
			Name:          api.Name,
			Version:       api.Version,
			ModuleName:    api.ModuleName(),
			QualifiedName: qualified,
			ServiceName:   api.ServiceName(),
		},
	}

	var errs []error
	for _, s := range api.AllSchemas() {
		entry, err := r.schemaEntry(s)
		if err != nil {
			r.logFailure(s.Path(), err)
			errs = append(errs, err)
			continue
		}
		r.log().Debug("resolved schema",
			slog.String("path", entry.Path),
			slog.String("type", entry.Type),
		)
		m.Schemas = append(m.Schemas, entry)
	}

	for _, method := range api.AllMethods() {
		m.Methods = append(m.Methods, MethodEntry{
			Path:            method.Path(),
			ID:              method.ID,
			GeneratedName:   method.GeneratedName,
			HTTPMethod:      method.HTTPMethod,
			RestPath:        method.RestPath,
			PathParameters:  parameterNames(method.PathParameters()),
			QueryParameters: parameterNames(method.QueryParameters()),
		})
	}

	return m, errors.Join(errs...)
}

func (r *Resolver) schemaEntry(s *discovery.Schema) (SchemaEntry, error) {
	typ, err := r.Type(s)
	if err != nil {
		return SchemaEntry{}, err
	}
	base, err := r.BaseType(s)
	if err != nil {
		return SchemaEntry{}, err
	}
	entry := SchemaEntry{
		Path:              s.Path(),
		Kind:              s.Type,
		Type:              typ,
		BaseType:          base,
		Discriminant:      s.Discriminant,
		DiscriminantValue: s.DiscriminantValue,
	}
	if s.Type == discovery.KindObject {
		entry.QualifiedName = typ
	}
	return entry, nil
}

func (r *Resolver) logFailure(path string, err error) {
	attrs := []any{slog.String("path", path), slog.Any("error", err)}
	var derr *discovery.Error
	if errors.As(err, &derr) {
		attrs = append(attrs, slog.String("code", string(derr.Code)))
	}
	r.log().Warn("schema resolution failed", attrs...)
}

// JSON returns the manifest as indented JSON.
func (m *Manifest) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// FindSchema returns the entry for the schema at path, or nil.
func (m *Manifest) FindSchema(path string) *SchemaEntry {
	for i := range m.Schemas {
		if m.Schemas[i].Path == path {
			return &m.Schemas[i]
		}
	}
	return nil
}

// FindMethod returns the entry for the method at path, or nil.
func (m *Manifest) FindMethod(path string) *MethodEntry {
	for i := range m.Methods {
		if m.Methods[i].Path == path {
			return &m.Methods[i]
		}
	}
	return nil
}

func parameterNames(params []*discovery.Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}
