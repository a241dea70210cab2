package discovery

import "testing"

// testAPI returns a small, unlinked drive-like hierarchy:
//
//	schemas: File{name, modifiedTime, owners[]User, labels{string}}, User, Outer{inner: Inner}
//	methods: about
//	resources: files{list, get; revisions{list}; comments{create}}
func testAPI() *API {
	return &API{
		Name:    "drive",
		Version: "v3",
		Schemas: []*Schema{
			{
				Name:               "File",
				Type:               KindObject,
				GeneratedClassName: "File",
				Properties: []*Schema{
					{Name: "name", Type: KindString},
					{Name: "modifiedTime", Type: KindString, Format: FormatDateTime},
					{Name: "owners", Type: KindArray, Items: &Schema{Type: KindObject, GeneratedClassName: "User"}},
					{Name: "labels", Type: KindHash, AdditionalProperties: &Schema{Type: KindString}},
				},
			},
			{Name: "User", Type: KindObject, GeneratedClassName: "User", BaseRef: "Principal", DiscriminantValue: "user"},
			{
				Name:               "Outer",
				Type:               KindObject,
				GeneratedClassName: "Outer",
				Properties: []*Schema{
					{Name: "inner", Type: KindObject, GeneratedClassName: "Inner"},
				},
			},
		},
		Methods: []*Method{
			{Name: "about", ID: "drive.about", HTTPMethod: "GET", RestPath: "about"},
		},
		Resources: []*Resource{
			{
				Name: "files",
				Methods: []*Method{
					{
						Name:       "list",
						ID:         "drive.files.list",
						HTTPMethod: "GET",
						RestPath:   "files",
						Parameters: []*Parameter{
							{Name: "pageSize", Location: LocationQuery},
							{Name: "pageToken", Location: LocationQuery},
						},
					},
					{
						Name:           "get",
						ID:             "drive.files.get",
						HTTPMethod:     "GET",
						RestPath:       "files/{fileId}",
						ParameterOrder: []string{"fileId"},
						Parameters: []*Parameter{
							{Name: "fields", Location: LocationQuery},
							{Name: "fileId", Location: LocationPath, Required: true},
						},
						Response: &Schema{Type: KindObject, GeneratedClassName: "GetResponse"},
					},
				},
				Resources: []*Resource{
					{
						Name: "revisions",
						Methods: []*Method{
							{Name: "list", ID: "drive.revisions.list"},
						},
					},
					{
						Name: "comments",
						Methods: []*Method{
							{Name: "create", ID: "drive.comments.create"},
						},
					},
				},
			},
		},
	}
}

// linkedTestAPI returns testAPI after a successful Link.
func linkedTestAPI(t *testing.T) *API {
	t.Helper()
	api := testAPI()
	if err := api.Link(); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	return api
}

func methodIDs(methods []*Method) []string {
	ids := make([]string, len(methods))
	for i, m := range methods {
		ids[i] = m.ID
	}
	return ids
}

func paramNames(params []*Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}
