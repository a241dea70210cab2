package codegen

import (
	"fmt"
	"strings"

	"github.com/broady/discogen/discovery"
	"github.com/xlab/treeprint"
)

// Tree renders the API hierarchy with its derived names, for debugging a
// generation run:
//
//	DriveService (Google::Apis::DriveV3)
//	├── schemas
//	│   └── File: Google::Apis::DriveV3::File
//	│       └── name: String
//	└── resources/files
//	    └── get GET files/{fileId}
//	        └── path: fileId
//
// Resolution failures are rendered inline as "!" followed by the error.
func (r *Resolver) Tree(api *discovery.API) string {
	root := api.ServiceName()
	if qualified, err := r.QualifiedName(api); err == nil {
		root += " (" + qualified + ")"
	}
	tree := treeprint.NewWithRoot(root)

	if len(api.Schemas) > 0 {
		schemas := tree.AddBranch("schemas")
		for _, s := range api.Schemas {
			r.addSchema(schemas, s.Name, s)
		}
	}
	r.addContainer(tree, api.Methods, api.Resources)

	return tree.String()
}

func (r *Resolver) addSchema(tree treeprint.Tree, label string, s *discovery.Schema) {
	typ, err := r.Type(s)
	if err != nil {
		typ = "!" + err.Error()
	}
	if len(s.Properties) == 0 {
		tree.AddNode(label + ": " + typ)
		return
	}
	branch := tree.AddBranch(label + ": " + typ)
	for _, p := range s.Properties {
		r.addSchema(branch, p.Name, p)
	}
}

func (r *Resolver) addContainer(tree treeprint.Tree, methods []*discovery.Method, resources []*discovery.Resource) {
	for _, m := range methods {
		r.addMethod(tree, m)
	}
	for _, res := range resources {
		branch := tree.AddBranch("resources/" + res.Name)
		r.addContainer(branch, res.Methods, res.Resources)
	}
}

func (r *Resolver) addMethod(tree treeprint.Tree, m *discovery.Method) {
	label := strings.TrimSpace(fmt.Sprintf("%s %s %s", m.Name, m.HTTPMethod, m.RestPath))
	path := parameterNames(m.PathParameters())
	query := parameterNames(m.QueryParameters())
	if len(path) == 0 && len(query) == 0 && m.Request == nil && m.Response == nil {
		tree.AddNode(label)
		return
	}

	branch := tree.AddBranch(label)
	if len(path) > 0 {
		branch.AddNode("path: " + strings.Join(path, ", "))
	}
	if len(query) > 0 {
		branch.AddNode("query: " + strings.Join(query, ", "))
	}
	if m.Request != nil {
		r.addSchema(branch, "request", m.Request)
	}
	if m.Response != nil {
		r.addSchema(branch, "response", m.Response)
	}
}
