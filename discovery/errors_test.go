package discovery

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with path",
			err:  Errorf(CodeMalformedSchema, "schemas/File/properties/owners", "array schema has no items"),
			want: "malformed_schema: schemas/File/properties/owners: array schema has no items",
		},
		{
			name: "without path",
			err:  Errorf(CodeUnknownSchemaType, "", "unknown schema type %q", "null"),
			want: `unknown_schema_type: unknown schema type "null"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("resolving File: %w", Errorf(CodeMalformedSchema, "schemas/File", "boom"))

	if !errors.Is(err, ErrMalformedSchema) {
		t.Error("errors.Is(err, ErrMalformedSchema) = false, want true")
	}
	if errors.Is(err, ErrUnknownSchemaType) {
		t.Error("errors.Is(err, ErrUnknownSchemaType) = true, want false")
	}

	var derr *Error
	if !errors.As(err, &derr) {
		t.Fatal("errors.As(err, *Error) = false")
	}
	if derr.Path != "schemas/File" {
		t.Errorf("Path = %q, want %q", derr.Path, "schemas/File")
	}
}

func TestError_IsJoined(t *testing.T) {
	err := errors.Join(
		Errorf(CodeInvalidHierarchy, "a", "x"),
		Errorf(CodeUnresolvedReference, "b", "y"),
	)
	if !errors.Is(err, ErrInvalidHierarchy) {
		t.Error("joined error should match ErrInvalidHierarchy")
	}
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Error("joined error should match ErrUnresolvedReference")
	}
	if errors.Is(err, ErrMalformedSchema) {
		t.Error("joined error should not match ErrMalformedSchema")
	}
}
