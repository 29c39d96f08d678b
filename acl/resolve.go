package acl

// IsAllowed decides whether role may perform privilege on resource. Any of
// the three coordinates may be "" to mean the wildcard for that coordinate.
//
// A Decision override (WithDecision) short-circuits the lattice entirely.
// Otherwise the optional cache is consulted, then the four-step resolution
// algorithm of §4.2 runs:
//
//  1. If both role and resource have direct parents, iterate the parent
//     resources in reverse, and for each, the parent roles in reverse;
//     return true on the first direct allow.
//  2. Else if only role has direct parents, iterate them in reverse against
//     the requested resource.
//  3. Else if only resource has direct parents, iterate them in reverse
//     against the requested role.
//  4. Otherwise (or if no inherited check matched), fall back to a direct
//     lookup of (role, resource, privilege).
//
// "Direct parents" deliberately means graph.Adj — the role/resource's
// immediate neighbors, not their full transitive closure. This matches the
// documented bug-compatible behavior of the source implementation (§9 Open
// Question 1) and is preserved here rather than silently "fixed".
func (a *ACL) IsAllowed(role, resource, privilege string) bool {
	if a.decision != DecisionUnset {
		return a.decision == DecisionAllow
	}
	if a.cache != nil {
		if allowed, ok := a.cache.Get(role, resource, privilege); ok {
			return allowed
		}
	}

	result := a.resolve(role, resource, privilege)

	if a.cache != nil {
		a.cache.Set(role, resource, privilege, result)
	}
	return result
}

func (a *ACL) resolve(role, resource, privilege string) bool {
	var inheritedRoles, inheritedResources []string
	if role != "" {
		inheritedRoles = a.roles.Adj(role)
	}
	if resource != "" {
		inheritedResources = a.resources.Adj(resource)
	}

	switch {
	case len(inheritedRoles) > 0 && len(inheritedResources) > 0:
		for i := len(inheritedResources) - 1; i >= 0; i-- {
			s := inheritedResources[i]
			for j := len(inheritedRoles) - 1; j >= 0; j-- {
				if a.isDirectlyAllowed(inheritedRoles[j], s, privilege) {
					return true
				}
			}
		}
	case len(inheritedRoles) > 0:
		for j := len(inheritedRoles) - 1; j >= 0; j-- {
			if a.isDirectlyAllowed(inheritedRoles[j], resource, privilege) {
				return true
			}
		}
	case len(inheritedResources) > 0:
		for i := len(inheritedResources) - 1; i >= 0; i-- {
			if a.isDirectlyAllowed(role, inheritedResources[i], privilege) {
				return true
			}
		}
	}

	return a.isDirectlyAllowed(role, resource, privilege)
}

// IsAllowedAny reports whether any combination of roles x resources x
// privileges is allowed, short-circuiting on the first true. Nil or empty
// on a coordinate is a single wildcard slot (the outer loop runs once for
// that coordinate), and unknown roles/resources are filtered out before the
// Cartesian product is formed.
func (a *ACL) IsAllowedAny(roles, resources, privileges []string) bool {
	rs := a.filterKnownRoles(roles)
	ss := a.filterKnownResources(resources)
	ps := wildcardSlots(privileges)

	for _, r := range rs {
		for _, s := range ss {
			for _, p := range ps {
				if a.IsAllowed(r, s, p) {
					return true
				}
			}
		}
	}
	return false
}
