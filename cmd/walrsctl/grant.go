package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elycruz/walrs-go/internal/clierr"
)

// errGrantDenied signals a clean "not granted" result.
var errGrantDenied = &clierr.ExitError{Code: clierr.ExitGeneral}

var grantRBAC string

var grantCmd = &cobra.Command{
	Use:   "grant <role> <permission>",
	Short: "Evaluate an RBAC permission check",
	Long:  `Load the configured RBAC data file and report whether role is granted permission, directly or through a child role.`,
	Example: `  # Is "editor" granted "article.delete"?
  walrsctl grant editor article.delete`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rbacPath := resolveString(grantRBAC, cfg.RBAC.File)
		r, err := loadRBAC(rbacPath, cfg.RBAC.Format)
		if err != nil {
			return err
		}

		role, permission := args[0], args[1]
		granted := r.IsGranted(role, permission)

		if !quiet {
			if granted {
				fmt.Printf("granted: %s has %s\n", role, permission)
			} else {
				fmt.Printf("not granted: %s does not have %s\n", role, permission)
			}
		}
		if !granted {
			return errGrantDenied
		}
		return nil
	},
}

func init() {
	grantCmd.Flags().StringVar(&grantRBAC, "rbac", "", "path to rbac data file")
}
