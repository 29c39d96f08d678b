package main

import (
	"fmt"
	"os"

	"github.com/elycruz/walrs-go/acl"
	"github.com/elycruz/walrs-go/acl/aclfile"
	"github.com/elycruz/walrs-go/internal/clierr"
	"github.com/elycruz/walrs-go/rbac"
	"github.com/elycruz/walrs-go/rbac/rbacfile"
)

// loadACL opens path and builds an acl.ACL from it per format ("json" or
// "yaml"). A missing path is reported as a config error rather than a
// data-parse error, since no file to parse means nothing was configured.
func loadACL(path, format string) (*acl.ACL, error) {
	if path == "" {
		return nil, clierr.ConfigError("no acl file configured", nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, clierr.ConfigError(fmt.Sprintf("opening acl file %s", path), err)
	}
	defer func() { _ = f.Close() }()

	var a *acl.ACL
	switch format {
	case "json":
		a, err = aclfile.LoadJSON(f)
	default:
		a, err = aclfile.LoadYAML(f)
	}
	if err != nil {
		return nil, clierr.DataParseError(fmt.Sprintf("loading acl file %s", path), err)
	}
	return a, nil
}

// loadRBAC opens path and builds an rbac.RBAC from it per format, mirroring
// loadACL.
func loadRBAC(path, format string) (*rbac.RBAC, error) {
	if path == "" {
		return nil, clierr.ConfigError("no rbac file configured", nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, clierr.ConfigError(fmt.Sprintf("opening rbac file %s", path), err)
	}
	defer func() { _ = f.Close() }()

	var r *rbac.RBAC
	switch format {
	case "json":
		r, err = rbacfile.LoadJSON(f)
	default:
		r, err = rbacfile.LoadYAML(f)
	}
	if err != nil {
		return nil, clierr.DataParseError(fmt.Sprintf("loading rbac file %s", path), err)
	}
	return r, nil
}
