package doctor

import (
	"testing"

	"github.com/elycruz/walrs-go/acl"
	"github.com/elycruz/walrs-go/rbac"
)

func TestRun_NilComponentsProduceEmptyReport(t *testing.T) {
	d := New(nil, nil)
	report := d.Run()
	if len(report.Checks) != 0 {
		t.Fatalf("expected no checks when both components are nil, got %d", len(report.Checks))
	}
	if report.HasErrors() {
		t.Fatal("an empty report must not report errors")
	}
}

func TestRun_ACLWithNoRolesOrResourcesWarns(t *testing.T) {
	d := New(acl.New(), nil)
	report := d.Run()
	if report.HasErrors() {
		t.Fatal("missing roles/resources is a warning, not an error")
	}
	if report.Warnings != 2 {
		t.Fatalf("expected 2 warnings (no roles, no resources), got %d", report.Warnings)
	}
}

func TestRun_ACLWithCyclicRoleGraphFails(t *testing.T) {
	a := acl.New()
	a.AddRole("a", "b")
	a.AddRole("b", "a")

	report := New(a, nil).Run()
	if !report.HasErrors() {
		t.Fatal("expected a cycle to be reported as an error")
	}
}

func TestRun_HealthyACLPasses(t *testing.T) {
	a := acl.New()
	a.AddRole("admin")
	a.AddResource("blog")
	a.Allow([]string{"admin"}, []string{"blog"}, []string{"write"})

	report := New(a, nil).Run()
	if report.HasErrors() || report.Warnings != 0 {
		t.Fatalf("expected a clean report, got %d errors, %d warnings", report.Errors, report.Warnings)
	}
}

func TestRun_RBACWithNoRolesWarns(t *testing.T) {
	r, err := rbac.NewBuilder().Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report := New(nil, r).Run()
	if report.Warnings != 1 {
		t.Fatalf("expected 1 warning (no roles), got %d", report.Warnings)
	}
}

func TestRun_RBACWithEmptyRoleWarns(t *testing.T) {
	r, err := rbac.NewBuilder().
		AddRole("admin", []string{"manage"}).
		AddRole("ghost", nil).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report := New(nil, r).Run()
	if report.Warnings != 1 {
		t.Fatalf("expected 1 warning for the empty role, got %d", report.Warnings)
	}
}

func TestRun_CombinedACLAndRBAC(t *testing.T) {
	a := acl.New()
	a.AddRole("admin")
	a.AddResource("blog")
	a.Allow([]string{"admin"}, []string{"blog"}, []string{"write"})

	r, err := rbac.NewBuilder().AddRole("admin", []string{"manage"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := New(a, r).Run()
	if report.HasErrors() {
		t.Fatal("expected a clean combined report")
	}
	// ACL role graph, ACL resource graph, ACL coverage, RBAC roles.
	if len(report.Checks) != 4 {
		t.Fatalf("expected 4 checks (2 graphs + coverage + rbac roles), got %d", len(report.Checks))
	}
}
