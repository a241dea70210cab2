package discovery

// Kind identifies the declared type of a schema node.
//
// Kind is a closed set. Code that switches on it should handle every
// constant below and treat anything else as UnknownSchemaType.
type Kind int

const (
	KindInvalid Kind = iota // Zero value; never valid on a loaded schema

	// Primitive-like kinds. Only these honor Schema.Format.
	KindString
	KindBoolean
	KindNumber  // Floating point
	KindInteger // Machine integer
	KindAny     // Untyped / dynamic

	// Compound kinds.
	KindArray  // Sequence of Schema.Items
	KindHash   // String-keyed map of Schema.AdditionalProperties
	KindObject // Named type with Schema.Properties
)

// String returns the discovery spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindAny:
		return "any"
	case KindArray:
		return "array"
	case KindHash:
		return "hash"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// IsPrimitive reports whether k is one of string, boolean, number,
// integer or any.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindString, KindBoolean, KindNumber, KindInteger, KindAny:
		return true
	}
	return false
}

// ParseKind maps a raw discovery type to a Kind.
//
// "hash" is not a discovery type; generators synthesize it for objects that
// only carry additionalProperties. It is accepted here, along with the
// "hash-map" spelling, so a loader can tag such schemas directly.
func ParseKind(raw string) (Kind, error) {
	switch raw {
	case "string":
		return KindString, nil
	case "boolean":
		return KindBoolean, nil
	case "number":
		return KindNumber, nil
	case "integer":
		return KindInteger, nil
	case "any":
		return KindAny, nil
	case "array":
		return KindArray, nil
	case "hash", "hash-map":
		return KindHash, nil
	case "object":
		return KindObject, nil
	default:
		return KindInvalid, Errorf(CodeUnknownSchemaType, "", "unknown schema type %q", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
