package rbac

import "errors"

var (
	// ErrInvalidConfiguration is returned by Build when a role declaration
	// references a child role that was never declared.
	ErrInvalidConfiguration = errors.New("rbac: invalid configuration")
	// ErrCycleDetected is returned by Build when the child-of relation
	// contains a cycle.
	ErrCycleDetected = errors.New("rbac: cycle detected")
	// ErrRoleNotFound is returned by RBAC.Permissions when the named role
	// was never declared.
	ErrRoleNotFound = errors.New("rbac: role not found")
)

// IsInvalidConfigurationErr reports whether err is or wraps ErrInvalidConfiguration.
func IsInvalidConfigurationErr(err error) bool { return errors.Is(err, ErrInvalidConfiguration) }

// IsCycleDetectedErr reports whether err is or wraps ErrCycleDetected.
func IsCycleDetectedErr(err error) bool { return errors.Is(err, ErrCycleDetected) }

// IsRoleNotFoundErr reports whether err is or wraps ErrRoleNotFound.
func IsRoleNotFoundErr(err error) bool { return errors.Is(err, ErrRoleNotFound) }
