// Package aclfile loads an acl.ACL from a declarative data record: ordered
// lists of roles and resources with optional parents, plus ordered
// allow/deny rule lists keyed by resource. The record shape is grounded on
// the source implementation's AclData; this package adds JSON and YAML
// encodings of the same shape.
package aclfile

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/elycruz/walrs-go/acl"
)

// RolePrivileges is one entry in an allow/deny list: a role and the
// privileges granted or denied for it. An empty Privileges means "all
// privileges" for that role.
type RolePrivileges struct {
	Role       string   `json:"role" yaml:"role"`
	Privileges []string `json:"privileges,omitempty" yaml:"privileges,omitempty"`
}

// RoleRecord is one role declaration in a Data record: a symbol plus its
// parents (nil or empty means no parents).
type RoleRecord struct {
	Name    string   `json:"name" yaml:"name"`
	Parents []string `json:"parents,omitempty" yaml:"parents,omitempty"`
}

// ResourceRecord is one resource declaration in a Data record.
type ResourceRecord struct {
	Name    string   `json:"name" yaml:"name"`
	Parents []string `json:"parents,omitempty" yaml:"parents,omitempty"`
}

// ResourceRules is one resource's allow/deny entry: the roles/privileges
// granted or denied on it. A nil or empty Entries means "all roles, all
// privileges" for that resource.
type ResourceRules struct {
	Resource string           `json:"resource" yaml:"resource"`
	Entries  []RolePrivileges `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// Data is the declarative record an ACL is built from. Roles, Resources,
// Allow, and Deny are ordered lists, not maps: §6.1 requires roles and
// resources to be inserted in listed order, and Go map iteration order is
// randomized per run, so a map-keyed record would make Build's insertion
// order (and therefore ACL.Roles()/Resources() for file-built ACLs)
// nondeterministic.
type Data struct {
	Roles     []RoleRecord     `json:"roles,omitempty" yaml:"roles,omitempty"`
	Resources []ResourceRecord `json:"resources,omitempty" yaml:"resources,omitempty"`
	Allow     []ResourceRules  `json:"allow,omitempty" yaml:"allow,omitempty"`
	Deny      []ResourceRules  `json:"deny,omitempty" yaml:"deny,omitempty"`
}

// Build constructs an ACL from data: roles first, then resources, checking
// each graph for cycles before any rule is applied, then allow rules, then
// deny rules (so a deny always wins over an allow at the same specificity,
// since rules are applied in record order and the lattice is
// update-by-assignment).
func Build(data *Data, opts ...acl.Option) (*acl.ACL, error) {
	a := acl.New(opts...)

	for _, role := range data.Roles {
		a.AddRole(role.Name, role.Parents...)
	}
	if trace, err := a.CheckRolesForCycles(); err != nil {
		return nil, fmt.Errorf("aclfile: role graph: %w (%v)", err, trace)
	}

	for _, resource := range data.Resources {
		a.AddResource(resource.Name, resource.Parents...)
	}
	if trace, err := a.CheckResourcesForCycles(); err != nil {
		return nil, fmt.Errorf("aclfile: resource graph: %w (%v)", err, trace)
	}

	if err := checkRulesKnown(a, data.Allow); err != nil {
		return nil, fmt.Errorf("aclfile: allow: %w", err)
	}
	if err := checkRulesKnown(a, data.Deny); err != nil {
		return nil, fmt.Errorf("aclfile: deny: %w", err)
	}

	applyRules(a.Allow, data.Allow)
	applyRules(a.Deny, data.Deny)

	return a, nil
}

// checkRulesKnown rejects a rule list naming a role or resource not already
// declared in Roles/Resources. acl.ACL.Allow/Deny silently skip unknown
// symbols (§4.2), so without this check a typo'd role or resource in a rule
// would be dropped rather than reported.
func checkRulesKnown(a *acl.ACL, rules []ResourceRules) error {
	for _, rule := range rules {
		if !a.HasResource(rule.Resource) {
			return fmt.Errorf("%w: %q", acl.ErrUnknownResource, rule.Resource)
		}
		for _, entry := range rule.Entries {
			if !a.HasRole(entry.Role) {
				return fmt.Errorf("%w: %q", acl.ErrUnknownRole, entry.Role)
			}
		}
	}
	return nil
}

func applyRules(apply func(roles, resources, privileges []string), rules []ResourceRules) {
	for _, rule := range rules {
		if len(rule.Entries) == 0 {
			apply(nil, []string{rule.Resource}, nil)
			continue
		}
		for _, entry := range rule.Entries {
			apply([]string{entry.Role}, []string{rule.Resource}, entry.Privileges)
		}
	}
}

// LoadJSON decodes a Data record as JSON and builds an ACL from it.
func LoadJSON(r io.Reader, opts ...acl.Option) (*acl.ACL, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("aclfile: decode json: %w", err)
	}
	return Build(&data, opts...)
}

// LoadYAML decodes a Data record as YAML and builds an ACL from it.
func LoadYAML(r io.Reader, opts ...acl.Option) (*acl.ACL, error) {
	var data Data
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("aclfile: decode yaml: %w", err)
	}
	return Build(&data, opts...)
}
