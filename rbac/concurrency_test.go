package rbac

import (
	"sync"
	"testing"

	"go.uber.org/goleak"
)

// TestIsGranted_ConcurrentReadersLeaveNoGoroutines hammers IsGranted from
// many goroutines against one shared, already-built RBAC and confirms none
// of them leak, per §5's "safe to share after build" guarantee.
func TestIsGranted_ConcurrentReadersLeaveNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, err := NewBuilder().
		AddRole("viewer", []string{"article.read"}).
		AddRole("editor", []string{"article.edit", "article.delete"}, "viewer").
		AddRole("admin", []string{"user.manage"}, "editor").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(n int) {
			defer wg.Done()
			roles := []string{"viewer", "editor", "admin"}
			perms := []string{"article.read", "article.edit", "user.manage"}
			for j := 0; j < iterations; j++ {
				role := roles[(n+j)%len(roles)]
				perm := perms[(n+j)%len(perms)]
				_ = r.IsGranted(role, perm)
			}
		}(i)
	}
	wg.Wait()
}
