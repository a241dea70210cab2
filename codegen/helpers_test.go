package codegen

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/broady/discogen/discovery"
)

// testAPI returns a linked drive-like API whose object schemas already
// carry generated class names.
func testAPI(t *testing.T) *discovery.API {
	t.Helper()
	api := &discovery.API{
		Name:    "drive",
		Version: "v3",
		Schemas: []*discovery.Schema{
			{
				Name:               "File",
				Type:               discovery.KindObject,
				GeneratedClassName: "File",
				Properties: []*discovery.Schema{
					{Name: "name", Type: discovery.KindString},
					{Name: "size", Type: discovery.KindInteger, Format: "int64"},
					{Name: "modifiedTime", Type: discovery.KindString, Format: discovery.FormatDateTime},
					{Name: "owners", Type: discovery.KindArray, Items: &discovery.Schema{
						Type: discovery.KindObject, GeneratedClassName: "Owner",
					}},
					{Name: "properties", Type: discovery.KindHash, AdditionalProperties: &discovery.Schema{
						Type: discovery.KindString,
					}},
				},
			},
			{
				Name:               "Outer",
				Type:               discovery.KindObject,
				GeneratedClassName: "Outer",
				Properties: []*discovery.Schema{
					{Name: "inner", Type: discovery.KindObject, GeneratedClassName: "Inner"},
				},
			},
			{Name: "Principal", Type: discovery.KindObject, GeneratedClassName: "Principal", Discriminant: "kind"},
			{Name: "User", Type: discovery.KindObject, GeneratedClassName: "User", BaseRef: "Principal", DiscriminantValue: "user"},
		},
		Resources: []*discovery.Resource{
			{
				Name: "files",
				Methods: []*discovery.Method{
					{
						Name:           "get",
						ID:             "drive.files.get",
						GeneratedName:  "get_file",
						HTTPMethod:     "GET",
						RestPath:       "files/{fileId}",
						ParameterOrder: []string{"fileId"},
						Parameters: []*discovery.Parameter{
							{Name: "fields", Location: discovery.LocationQuery},
							{Name: "fileId", Location: discovery.LocationPath},
						},
						Response: &discovery.Schema{Type: discovery.KindObject, GeneratedClassName: "GetFileResponse"},
					},
				},
				Resources: []*discovery.Resource{
					{
						Name: "revisions",
						Methods: []*discovery.Method{
							{Name: "list", ID: "drive.revisions.list", GeneratedName: "list_revisions", HTTPMethod: "GET"},
						},
					},
				},
			},
		},
	}
	if err := api.Link(); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	return api
}

// newTestResolver returns a Resolver with default config that logs to buf.
// Pass nil to discard logs.
func newTestResolver(t *testing.T, buf *bytes.Buffer) *Resolver {
	t.Helper()
	var w io.Writer = io.Discard
	if buf != nil {
		w = buf
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := NewResolver(DefaultConfig())
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	return r.WithLogger(logger)
}
