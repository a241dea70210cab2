package discovery

import "fmt"

// ErrorCode is a machine-readable derivation error category.
type ErrorCode string

const (
	// CodeMalformedSchema: a compound schema lacks its element schema, or an
	// object schema is qualified before its class name was assigned.
	CodeMalformedSchema ErrorCode = "malformed_schema"

	// CodeUnknownSchemaType: a schema's type is outside the known kinds.
	CodeUnknownSchemaType ErrorCode = "unknown_schema_type"

	// CodeUnresolvedReference: a base reference names no top-level schema.
	CodeUnresolvedReference ErrorCode = "unresolved_reference"

	// CodeInvalidHierarchy: parent links are missing, shared or cyclic, or a
	// method's parameter order names an undeclared parameter.
	CodeInvalidHierarchy ErrorCode = "invalid_hierarchy"
)

// Sentinels for use with errors.Is. They match any *Error with the same code.
var (
	ErrMalformedSchema     = &Error{Code: CodeMalformedSchema}
	ErrUnknownSchemaType   = &Error{Code: CodeUnknownSchemaType}
	ErrUnresolvedReference = &Error{Code: CodeUnresolvedReference}
	ErrInvalidHierarchy    = &Error{Code: CodeInvalidHierarchy}
)

// Error reports a derivation failure for the node at Path.
type Error struct {
	Code    ErrorCode
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

// Is matches on Code so that errors.Is(err, ErrMalformedSchema) holds for
// every malformed-schema error regardless of path.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Errorf creates a new error for the node at path with a formatted message.
func Errorf(code ErrorCode, path string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}
