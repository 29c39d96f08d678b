// Package rbacfile loads an rbac.RBAC from a declarative data record: a
// list of roles, each with its permissions and optional children. The
// record shape is §6.2's RbacData.
package rbacfile

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/elycruz/walrs-go/rbac"
)

// RoleRecord is one role declaration in a Data record.
type RoleRecord struct {
	Name        string   `json:"name" yaml:"name"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Children    []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// Data is the declarative record an RBAC is built from.
type Data struct {
	Roles []RoleRecord `json:"roles" yaml:"roles"`
}

// Build constructs an RBAC from data, failing if any child reference is
// undeclared or the child-of relation contains a cycle.
func Build(data *Data) (*rbac.RBAC, error) {
	b := rbac.NewBuilder()
	for _, r := range data.Roles {
		b.AddRole(r.Name, r.Permissions, r.Children...)
	}
	return b.Build()
}

// LoadJSON decodes a Data record as JSON and builds an RBAC from it.
func LoadJSON(r io.Reader) (*rbac.RBAC, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("rbacfile: decode json: %w", err)
	}
	return Build(&data)
}

// LoadYAML decodes a Data record as YAML and builds an RBAC from it.
func LoadYAML(r io.Reader) (*rbac.RBAC, error) {
	var data Data
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("rbacfile: decode yaml: %w", err)
	}
	return Build(&data)
}
