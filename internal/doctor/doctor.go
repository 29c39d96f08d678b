// Package doctor provides structural health checks for a built ACL and/or
// RBAC, adapted from the teacher's internal/doctor/doctor.go: the same
// Status/CheckResult/Report shape and Report.Print rendering, repurposed
// to run in-memory graph checks against acl.ACL/rbac.RBAC instead of
// querying a live Postgres connection for schema/migration/tuple health.
//
// Example usage:
//
//	d := doctor.New(loadedACL, loadedRBAC)
//	report := d.Run()
//	report.Print(os.Stdout, true) // verbose=true
package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/elycruz/walrs-go/acl"
	"github.com/elycruz/walrs-go/rbac"
)

// Status represents the result of a health check.
type Status int

const (
	// StatusPass indicates the check passed.
	StatusPass Status = iota
	// StatusWarn indicates a non-critical issue.
	StatusWarn
	// StatusFail indicates a critical issue.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns a status indicator symbol for terminal output.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusFail:
		return "✗"
	default:
		return "?"
	}
}

// CheckResult represents the outcome of a single health check.
type CheckResult struct {
	// Category groups related checks (e.g. "ACL Roles", "RBAC Tree").
	Category string

	// Name is a short identifier for the check.
	Name string

	// Status is the check outcome.
	Status Status

	// Message is a human-readable description of the result.
	Message string

	// Details provides additional information for verbose output.
	Details string

	// FixHint suggests how to resolve issues.
	FixHint string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult

	Passed   int
	Warnings int
	Errors   int
}

// AddCheck adds a check result and updates summary counts.
func (r *Report) AddCheck(check CheckResult) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case StatusPass:
		r.Passed++
	case StatusWarn:
		r.Warnings++
	case StatusFail:
		r.Errors++
	}
}

// Print writes the report to the given writer.
func (r *Report) Print(w io.Writer, verbose bool) {
	categories := make(map[string][]CheckResult)
	var categoryOrder []string
	for _, check := range r.Checks {
		if _, exists := categories[check.Category]; !exists {
			categoryOrder = append(categoryOrder, check.Category)
		}
		categories[check.Category] = append(categories[check.Category], check)
	}

	for _, cat := range categoryOrder {
		_, _ = fmt.Fprintf(w, "\n%s\n", cat)
		for _, check := range categories[cat] {
			_, _ = fmt.Fprintf(w, "  %s %s\n", check.Status.Symbol(), check.Message)
			if verbose && check.Details != "" {
				for _, line := range strings.Split(check.Details, "\n") {
					_, _ = fmt.Fprintf(w, "      %s\n", line)
				}
			}
			if check.Status != StatusPass && check.FixHint != "" {
				_, _ = fmt.Fprintf(w, "      Fix: %s\n", check.FixHint)
			}
		}
	}

	_, _ = fmt.Fprintf(w, "\nSummary: %d passed, %d warnings, %d errors\n",
		r.Passed, r.Warnings, r.Errors)
}

// HasErrors returns true if any check failed.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Doctor runs structural health checks against a built ACL and/or RBAC.
// Either may be nil; a nil component's checks are skipped rather than
// reported as failures, since a walrsctl invocation may configure only
// one of the two.
type Doctor struct {
	acl  *acl.ACL
	rbac *rbac.RBAC
}

// New creates a Doctor over the given (possibly nil) ACL and RBAC.
func New(a *acl.ACL, r *rbac.RBAC) *Doctor {
	return &Doctor{acl: a, rbac: r}
}

// Run executes all applicable health checks and returns a report. Unlike
// the teacher's Doctor.Run, this never returns an error: every check here
// is an in-memory graph traversal with no I/O to fail on.
func (d *Doctor) Run() *Report {
	report := &Report{}

	if d.acl != nil {
		d.checkACLRoleGraph(report)
		d.checkACLResourceGraph(report)
		d.checkACLCoverage(report)
	}
	if d.rbac != nil {
		d.checkRBACRoles(report)
	}

	return report
}

func (d *Doctor) checkACLRoleGraph(report *Report) {
	trace, err := d.acl.CheckRolesForCycles()
	if err != nil {
		report.AddCheck(CheckResult{
			Category: "ACL Role Graph",
			Name:     "cycles",
			Status:   StatusFail,
			Message:  "Role graph contains a cycle",
			Details:  strings.Join(trace, " -> "),
			FixHint:  "Remove the cyclic parent relationship between roles",
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: "ACL Role Graph",
		Name:     "cycles",
		Status:   StatusPass,
		Message:  fmt.Sprintf("Role graph is acyclic (%d roles)", d.acl.RoleCount()),
		Details:  strings.Join(d.acl.Roles(), ", "),
	})
}

func (d *Doctor) checkACLResourceGraph(report *Report) {
	trace, err := d.acl.CheckResourcesForCycles()
	if err != nil {
		report.AddCheck(CheckResult{
			Category: "ACL Resource Graph",
			Name:     "cycles",
			Status:   StatusFail,
			Message:  "Resource graph contains a cycle",
			Details:  strings.Join(trace, " -> "),
			FixHint:  "Remove the cyclic parent relationship between resources",
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: "ACL Resource Graph",
		Name:     "cycles",
		Status:   StatusPass,
		Message:  fmt.Sprintf("Resource graph is acyclic (%d resources)", d.acl.ResourceCount()),
		Details:  strings.Join(d.acl.Resources(), ", "),
	})
}

// checkACLCoverage warns about configurations unlikely to be useful: no
// roles or no resources declared means every IsAllowed call falls through
// to deny-by-default with nothing to match against.
func (d *Doctor) checkACLCoverage(report *Report) {
	if d.acl.RoleCount() == 0 {
		report.AddCheck(CheckResult{
			Category: "ACL Rules",
			Name:     "roles",
			Status:   StatusWarn,
			Message:  "No roles declared",
			FixHint:  "Call AddRole or populate the acl data file's roles list",
		})
	}
	if d.acl.ResourceCount() == 0 {
		report.AddCheck(CheckResult{
			Category: "ACL Rules",
			Name:     "resources",
			Status:   StatusWarn,
			Message:  "No resources declared",
			FixHint:  "Call AddResource or populate the acl data file's resources list",
		})
	}
	if d.acl.RoleCount() > 0 && d.acl.ResourceCount() > 0 {
		report.AddCheck(CheckResult{
			Category: "ACL Rules",
			Name:     "coverage",
			Status:   StatusPass,
			Message:  fmt.Sprintf("%d roles over %d resources", d.acl.RoleCount(), d.acl.ResourceCount()),
		})
	}
}

// checkRBACRoles reports the role tree's size and flags, in one warning,
// every role that grants no permissions, neither its own nor through its
// children — a configuration that still works but is usually a typo in a
// permission or child name.
func (d *Doctor) checkRBACRoles(report *Report) {
	roles := d.rbac.Roles()
	if len(roles) == 0 {
		report.AddCheck(CheckResult{
			Category: "RBAC Roles",
			Name:     "roles",
			Status:   StatusWarn,
			Message:  "No roles declared",
			FixHint:  "Call Builder.AddRole or populate the rbac data file's roles list",
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: "RBAC Roles",
		Name:     "roles",
		Status:   StatusPass,
		Message:  fmt.Sprintf("%d roles declared", len(roles)),
		Details:  strings.Join(roles, ", "),
	})

	var empty []string
	for _, name := range roles {
		perms, err := d.rbac.Permissions(name)
		if err == nil && len(perms) == 0 {
			empty = append(empty, name)
		}
	}
	if len(empty) > 0 {
		report.AddCheck(CheckResult{
			Category: "RBAC Roles",
			Name:     "empty",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("%d role(s) grant no permissions, directly or inherited", len(empty)),
			Details:  strings.Join(empty, ", "),
			FixHint:  "Confirm this role is meant to carry no access, or add permissions/children",
		})
	}
}
