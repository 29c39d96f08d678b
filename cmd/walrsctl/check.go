package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elycruz/walrs-go/internal/clierr"
)

// errCheckDenied signals a clean "not allowed" result: the outcome has
// already been printed, so ExitWithError should just set the exit code.
var errCheckDenied = &clierr.ExitError{Code: clierr.ExitGeneral}

var checkACL string

var checkCmd = &cobra.Command{
	Use:   "check <role> <resource> <privilege>",
	Short: "Evaluate an ACL permission check",
	Long:  `Load the configured ACL data file and report whether role is allowed privilege on resource.`,
	Example: `  # Is "editor" allowed to "write" the "blog" resource?
  walrsctl check editor blog write`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		aclPath := resolveString(checkACL, cfg.ACL.File)
		a, err := loadACL(aclPath, cfg.ACL.Format)
		if err != nil {
			return err
		}

		role, resource, privilege := args[0], args[1], args[2]
		allowed := a.IsAllowed(role, resource, privilege)

		if !quiet {
			if allowed {
				fmt.Printf("allow: %s may %s on %s\n", role, privilege, resource)
			} else {
				fmt.Printf("deny: %s may not %s on %s\n", role, privilege, resource)
			}
		}
		if !allowed {
			return errCheckDenied
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkACL, "acl", "", "path to acl data file")
}
