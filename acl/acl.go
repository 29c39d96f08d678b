// Package acl implements an Access Control List engine: a deny-by-default
// rule lattice over role, resource, and privilege coordinates, each of
// which may inherit through a role or resource graph.
//
// An ACL is built by declaring roles and resources (with optional parents)
// and then recording allow/deny rules over the Cartesian product of role,
// resource, and privilege symbols. Once built, IsAllowed and IsAllowedAny
// are pure, side-effect-free queries (aside from the optional read-through
// cache, which never changes the answer) and are safe to share across
// concurrent readers.
package acl

import "github.com/elycruz/walrs-go/digraph"

// Rule is a lattice value: Deny (bottom) or Allow (top).
type Rule int

const (
	// Deny is the lattice bottom and the default for every unset cell.
	Deny Rule = iota
	// Allow is the lattice top.
	Allow
)

func (r Rule) String() string {
	if r == Allow {
		return "allow"
	}
	return "deny"
}

// privilegeLevel is the innermost lattice level: a fallback rule for "all
// privileges" plus per-privilege overrides.
type privilegeLevel struct {
	fallback    Rule
	byPrivilege map[string]Rule
}

func newPrivilegeLevel() *privilegeLevel {
	return &privilegeLevel{byPrivilege: make(map[string]Rule)}
}

func (pl *privilegeLevel) ruleFor(privilege string) Rule {
	if privilege == "" {
		return pl.fallback
	}
	if r, ok := pl.byPrivilege[privilege]; ok {
		return r
	}
	return pl.fallback
}

// roleLevel is the middle lattice level: a fallback privilegeLevel for "all
// roles" plus per-role privilegeLevels.
type roleLevel struct {
	fallback *privilegeLevel
	byRole   map[string]*privilegeLevel
}

func newRoleLevel() *roleLevel {
	return &roleLevel{fallback: newPrivilegeLevel(), byRole: make(map[string]*privilegeLevel)}
}

func (rl *roleLevel) privilegeLevelForRead(role string) *privilegeLevel {
	if role == "" {
		return rl.fallback
	}
	if pl, ok := rl.byRole[role]; ok {
		return pl
	}
	return rl.fallback
}

func (rl *roleLevel) privilegeLevelForWrite(role string) *privilegeLevel {
	if role == "" {
		return rl.fallback
	}
	pl, ok := rl.byRole[role]
	if !ok {
		pl = newPrivilegeLevel()
		rl.byRole[role] = pl
	}
	return pl
}

// ACL is the rule lattice of §3.3 plus the role/resource inheritance graphs
// of §3.2 that IsAllowed walks.
//
// The zero value is not usable; construct one with New.
type ACL struct {
	resourceFallback *roleLevel
	byResource       map[string]*roleLevel

	roles     *digraph.Graph
	resources *digraph.Graph

	decision Decision
	cache    Cache
}

// Decision overrides IsAllowed's normal lattice lookup, for admin tooling
// or tests that need to force an answer without touching the rule data.
type Decision int

const (
	// DecisionUnset performs the normal lattice lookup.
	DecisionUnset Decision = iota
	// DecisionAllow makes IsAllowed always return true.
	DecisionAllow
	// DecisionDeny makes IsAllowed always return false.
	DecisionDeny
)

// Option configures an ACL at construction time.
type Option func(*ACL)

// WithDecision pins a Decision override on the ACL, bypassing the rule
// lattice entirely. Intended for admin tools or tests exercising code paths
// that require a fixed allow/deny answer.
func WithDecision(d Decision) Option {
	return func(a *ACL) { a.decision = d }
}

// WithCache enables a read-through cache for IsAllowed. The cache is
// cleared on every subsequent Allow, Deny, or Remove call, since those
// calls can change the answer for any previously-cached query.
func WithCache(c Cache) Option {
	return func(a *ACL) { a.cache = c }
}

// New returns an empty ACL: every role, resource, and privilege is denied
// until Allow is called.
func New(opts ...Option) *ACL {
	a := &ACL{
		resourceFallback: newRoleLevel(),
		byResource:       make(map[string]*roleLevel),
		roles:            digraph.New(),
		resources:        digraph.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddRole records role in the role graph. Any parent not already known is
// auto-inserted. A self-referential parent forms a cycle that
// CheckRolesForCycles will later reject; AddRole itself never fails.
func (a *ACL) AddRole(role string, parents ...string) {
	if len(parents) == 0 {
		a.roles.AddVertex(role)
		return
	}
	a.roles.AddEdge(role, parents...)
}

// AddResource records resource in the resource graph, analogous to AddRole.
func (a *ACL) AddResource(resource string, parents ...string) {
	if len(parents) == 0 {
		a.resources.AddVertex(resource)
		return
	}
	a.resources.AddEdge(resource, parents...)
}

// HasRole reports whether role has been added (directly or as a parent).
func (a *ACL) HasRole(role string) bool { return a.roles.HasVertex(role) }

// HasResource reports whether resource has been added.
func (a *ACL) HasResource(resource string) bool { return a.resources.HasVertex(resource) }

// RoleCount returns the number of known roles.
func (a *ACL) RoleCount() int { return a.roles.VertexCount() }

// ResourceCount returns the number of known resources.
func (a *ACL) ResourceCount() int { return a.resources.VertexCount() }

// Roles returns every known role symbol in insertion order.
func (a *ACL) Roles() []string { return a.roles.Symbols() }

// Resources returns every known resource symbol in insertion order.
func (a *ACL) Resources() []string { return a.resources.Symbols() }

// CheckRolesForCycles runs cycle detection on the role graph.
func (a *ACL) CheckRolesForCycles() ([]string, error) { return a.roles.CheckForCycles() }

// CheckResourcesForCycles runs cycle detection on the resource graph.
func (a *ACL) CheckResourcesForCycles() ([]string, error) { return a.resources.CheckForCycles() }

// CheckForCycles runs cycle detection on both graphs, returning the first
// failure encountered (roles checked before resources).
func (a *ACL) CheckForCycles() ([]string, error) {
	if trace, err := a.CheckRolesForCycles(); err != nil {
		return trace, err
	}
	return a.CheckResourcesForCycles()
}

func (a *ACL) roleLevelForWrite(resource string) *roleLevel {
	if resource == "" {
		return a.resourceFallback
	}
	rl, ok := a.byResource[resource]
	if !ok {
		rl = newRoleLevel()
		a.byResource[resource] = rl
	}
	return rl
}

// isDirectlyAllowed is a strict lattice lookup with no ancestor walk. It
// selects the resource level (falling through to the all-resources
// fallback when resource is unknown or wildcard), then the role level
// within it.
//
// A role that has no entry at all under the specific resource falls
// through not to that resource's own all-roles level first, but to the
// role's entry under the all-resources level, if one exists — a rule
// set globally for a role (e.g. Allow(admin, nil, nil)) must still apply
// to a resource that happens to already carry entries for other roles.
// Only when the role has no entry anywhere does the lookup fall to the
// resource's own all-roles level. A role that DOES have an entry under
// the specific resource uses only that entry, local fallback included;
// an explicit rule at the specific resource always wins over anything
// global.
func (a *ACL) isDirectlyAllowed(role, resource, privilege string) bool {
	if resource != "" {
		if rl, ok := a.byResource[resource]; ok {
			if role != "" {
				if pl, ok := rl.byRole[role]; ok {
					return pl.ruleFor(privilege) == Allow
				}
				if pl, ok := a.resourceFallback.byRole[role]; ok {
					return pl.ruleFor(privilege) == Allow
				}
			}
			return rl.fallback.ruleFor(privilege) == Allow
		}
	}
	pl := a.resourceFallback.privilegeLevelForRead(role)
	return pl.ruleFor(privilege) == Allow
}

// wildcardSlots returns symbols unchanged if non-empty, or a single ""
// wildcard slot if empty — the normative semantics for Allow, Deny, and
// IsAllowedAny coordinates (§9 Open Question 2).
func wildcardSlots(symbols []string) []string {
	if len(symbols) == 0 {
		return []string{""}
	}
	return symbols
}

func (a *ACL) filterKnownRoles(roles []string) []string {
	slots := wildcardSlots(roles)
	if len(roles) == 0 {
		return slots
	}
	out := make([]string, 0, len(slots))
	for _, r := range slots {
		if a.HasRole(r) {
			out = append(out, r)
		}
	}
	return out
}

func (a *ACL) filterKnownResources(resources []string) []string {
	slots := wildcardSlots(resources)
	if len(resources) == 0 {
		return slots
	}
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if a.HasResource(s) {
			out = append(out, s)
		}
	}
	return out
}

// setRule records rule for the Cartesian product of roles x resources x
// privileges. Empty/nil on any coordinate means the wildcard for that
// coordinate. Unknown role or resource symbols are silently skipped.
func (a *ACL) setRule(rule Rule, roles, resources, privileges []string) {
	rs := a.filterKnownRoles(roles)
	ss := a.filterKnownResources(resources)
	ps := wildcardSlots(privileges)

	for _, s := range ss {
		rl := a.roleLevelForWrite(s)
		for _, r := range rs {
			pl := rl.privilegeLevelForWrite(r)
			for _, p := range ps {
				if p == "" {
					pl.fallback = rule
				} else {
					pl.byPrivilege[p] = rule
				}
			}
		}
	}
	if a.cache != nil {
		a.cache.Clear()
	}
}

// Allow records an Allow rule for the Cartesian product of roles, resources,
// and privileges. The lattice is update-by-assignment: the last Allow/Deny
// call at a given cell wins.
func (a *ACL) Allow(roles, resources, privileges []string) { a.setRule(Allow, roles, resources, privileges) }

// Deny records a Deny rule, symmetric to Allow.
func (a *ACL) Deny(roles, resources, privileges []string) { a.setRule(Deny, roles, resources, privileges) }

// Remove resets the Cartesian product of roles x resources x privileges
// back to whatever their enclosing fallback would otherwise resolve to,
// undoing a prior Allow or Deny at that specificity. RemoveAllow and
// RemoveDeny are both aliases for Remove: the lattice stores only the
// final rule value, not who set it, so there is nothing to distinguish.
func (a *ACL) Remove(roles, resources, privileges []string) {
	rs := a.filterKnownRoles(roles)
	ss := a.filterKnownResources(resources)
	ps := wildcardSlots(privileges)

	for _, s := range ss {
		var rl *roleLevel
		if s == "" {
			rl = a.resourceFallback
		} else {
			var ok bool
			rl, ok = a.byResource[s]
			if !ok {
				continue
			}
		}
		for _, r := range rs {
			for _, p := range ps {
				if p == "" {
					switch {
					case r == "" && s == "":
						rl.fallback = newPrivilegeLevel()
					case r == "":
						delete(a.byResource, s)
					default:
						delete(rl.byRole, r)
					}
					continue
				}
				var pl *privilegeLevel
				if r == "" {
					pl = rl.fallback
				} else {
					found, ok := rl.byRole[r]
					if !ok {
						continue
					}
					pl = found
				}
				delete(pl.byPrivilege, p)
			}
		}
	}
	if a.cache != nil {
		a.cache.Clear()
	}
}

// RemoveAllow is an alias for Remove; see Remove.
func (a *ACL) RemoveAllow(roles, resources, privileges []string) { a.Remove(roles, resources, privileges) }

// RemoveDeny is an alias for Remove; see Remove.
func (a *ACL) RemoveDeny(roles, resources, privileges []string) { a.Remove(roles, resources, privileges) }
