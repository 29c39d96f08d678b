// Command walrsctl is a CLI for the walrs-go authorization and
// input-filter libraries.
//
// The CLI supports:
//   - validate: Check the ACL and RBAC data files load and build cleanly
//   - check: Evaluate acl.IsAllowed against a loaded ACL
//   - grant: Evaluate rbac.IsGranted against a loaded RBAC
//   - doctor: Run structural health checks on a loaded ACL/RBAC
package main

func main() {
	Execute()
}
