package acl

import "errors"

// ErrUnknownRole and ErrUnknownResource are returned by aclfile.Build when
// an allow/deny rule names a role or resource that was never declared in
// the record's roles/resources list. IsAllowed and IsAllowedAny never
// return these; they silently treat unknown symbols as non-matching, per
// §4.2 — it's only the file loader, which has a complete declared-symbol
// set to check a rule against, that treats the same situation as an error.
var (
	ErrUnknownRole     = errors.New("acl: unknown role")
	ErrUnknownResource = errors.New("acl: unknown resource")
)

// IsUnknownRoleErr reports whether err is or wraps ErrUnknownRole.
func IsUnknownRoleErr(err error) bool { return errors.Is(err, ErrUnknownRole) }

// IsUnknownResourceErr reports whether err is or wraps ErrUnknownResource.
func IsUnknownResourceErr(err error) bool { return errors.Is(err, ErrUnknownResource) }
