// Package rbac implements Role-Based Access Control: a permission tree
// queried by recursive descent, as distinct from acl's rule lattice.
//
// A role carries a set of permission strings and an ordered list of child
// roles. A parent role subsumes every permission of its children — adding
// viewer as a child of editor grants editor every permission viewer has.
// This is the Laminas convention and is the opposite of a naive "admin
// extends user" reading.
package rbac

import (
	"fmt"

	"github.com/elycruz/walrs-go/digraph"
)

type roleNode struct {
	name        string
	permissions map[string]struct{}
	children    []string
}

// RBAC is an immutable, built permission tree. Construct one with a
// Builder; the zero value is not usable.
type RBAC struct {
	roles map[string]*roleNode
	order []string
}

// HasRole reports whether name was declared.
func (r *RBAC) HasRole(name string) bool {
	_, ok := r.roles[name]
	return ok
}

// RoleCount returns the number of declared roles.
func (r *RBAC) RoleCount() int { return len(r.roles) }

// Roles returns every declared role name in declaration order.
func (r *RBAC) Roles() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Permissions returns role's full, already-inherited permission set: its
// own declared permissions plus every permission reachable through its
// children, flattened and deduplicated. Order is unspecified. Returns
// ErrRoleNotFound for an unknown role.
func (r *RBAC) Permissions(role string) ([]string, error) {
	node, ok := r.roles[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoleNotFound, role)
	}
	seen := make(map[string]struct{})
	r.collectPermissions(node, seen)
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	return out, nil
}

func (r *RBAC) collectPermissions(node *roleNode, seen map[string]struct{}) {
	for p := range node.permissions {
		seen[p] = struct{}{}
	}
	for _, child := range node.children {
		if childNode, ok := r.roles[child]; ok {
			r.collectPermissions(childNode, seen)
		}
	}
}

// IsGranted reports whether role has permission, either directly or
// through a child role. A missing role or permission is not an error; it
// folds into false.
func (r *RBAC) IsGranted(role, permission string) bool {
	node, ok := r.roles[role]
	if !ok {
		return false
	}
	if _, ok := node.permissions[permission]; ok {
		return true
	}
	for _, child := range node.children {
		if r.IsGranted(child, permission) {
			return true
		}
	}
	return false
}

type roleDecl struct {
	name        string
	permissions []string
	children    []string
}

// Builder accumulates role declarations before Build validates and
// resolves them into an RBAC.
type Builder struct {
	decls map[string]*roleDecl
	order []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{decls: make(map[string]*roleDecl)}
}

// AddRole records a role declaration. Calling AddRole again for the same
// name overwrites its prior declaration. children need not already be
// declared; Build validates every reference exists.
func (b *Builder) AddRole(name string, permissions []string, children ...string) *Builder {
	if _, exists := b.decls[name]; !exists {
		b.order = append(b.order, name)
	}
	b.decls[name] = &roleDecl{name: name, permissions: permissions, children: children}
	return b
}

// Build validates every child reference exists and that the child-of
// relation is acyclic, then resolves the declarations into an RBAC.
func (b *Builder) Build() (*RBAC, error) {
	g := digraph.New()
	for _, name := range b.order {
		decl := b.decls[name]
		g.AddVertex(name)
		for _, child := range decl.children {
			if _, ok := b.decls[child]; !ok {
				return nil, fmt.Errorf("%w: role %q references undeclared child %q", ErrInvalidConfiguration, name, child)
			}
			g.AddEdge(name, child)
		}
	}
	if trace, err := g.CheckForCycles(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, trace)
	}

	roles := make(map[string]*roleNode, len(b.order))
	for _, name := range b.order {
		decl := b.decls[name]
		permissions := make(map[string]struct{}, len(decl.permissions))
		for _, p := range decl.permissions {
			permissions[p] = struct{}{}
		}
		roles[name] = &roleNode{name: name, permissions: permissions, children: append([]string(nil), decl.children...)}
	}

	order := make([]string, len(b.order))
	copy(order, b.order)
	return &RBAC{roles: roles, order: order}, nil
}
