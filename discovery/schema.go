package discovery

// Format refinements recognized for primitive kinds.
const (
	FormatDateTime = "date-time"
	FormatDate     = "date"
)

// Schema is one type definition: a top-level schema, an object property,
// an array element or a map value.
type Schema struct {
	// Name is the raw key of the schema: the schema id for top-level
	// schemas, the property name for properties. Empty for array items and
	// map values.
	Name string

	// Type is the declared kind.
	Type Kind

	// Format refines primitive kinds, e.g. "date-time", "int64".
	Format string

	// Description is the schema's documentation, if any.
	Description string

	// Items is the element schema. Required when Type is KindArray.
	Items *Schema

	// AdditionalProperties is the map value schema. Required when Type is
	// KindHash.
	AdditionalProperties *Schema

	// Properties holds the object's properties in declaration order.
	// Each property's Name is its key.
	Properties []*Schema

	// Discriminant is the property that selects a concrete subtype of a
	// polymorphic schema.
	Discriminant string

	// DiscriminantValue is the value of the base schema's discriminant that
	// selects this schema.
	DiscriminantValue string

	// BaseRef names the top-level schema this one extends.
	BaseRef string

	// GeneratedName and GeneratedClassName are assigned by the generator's
	// naming pass. GeneratedClassName must be set before the schema's
	// qualified name is derived.
	GeneratedName      string
	GeneratedClassName string

	parent Node
	path   string
}

// NodeKind returns NodeSchema.
func (s *Schema) NodeKind() NodeKind { return NodeSchema }

// Parent returns the enclosing schema, method or API.
func (s *Schema) Parent() Node { return s.parent }

// Path returns the schema's structural location.
func (s *Schema) Path() string { return s.path }

func (*Schema) sealed() {}

// Property looks up a property by name. Returns nil if not found.
func (s *Schema) Property(name string) *Schema {
	for _, p := range s.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// walk calls fn for s and every schema nested in it, depth-first:
// properties, then items, then additionalProperties.
func (s *Schema) walk(fn func(*Schema)) {
	if s == nil {
		return
	}
	fn(s)
	for _, p := range s.Properties {
		p.walk(fn)
	}
	s.Items.walk(fn)
	s.AdditionalProperties.walk(fn)
}
