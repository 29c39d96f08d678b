package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	validateACL  string
	validateRBAC string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate ACL and RBAC data files",
	Long:  `Load and build the configured ACL and RBAC data files, reporting any structural error. Both files are checked: the command fails if either one cannot be opened or built.`,
	Example: `  # Validate using config file settings
  walrsctl validate

  # Validate a specific ACL file (the RBAC file still comes from config)
  walrsctl validate --acl acl.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		aclPath := resolveString(validateACL, cfg.ACL.File)
		rbacPath := resolveString(validateRBAC, cfg.RBAC.File)

		a, err := loadACL(aclPath, cfg.ACL.Format)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("acl: valid (%d roles, %d resources)\n", a.RoleCount(), a.ResourceCount())
		}

		r, err := loadRBAC(rbacPath, cfg.RBAC.Format)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("rbac: valid (%d roles)\n", r.RoleCount())
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateACL, "acl", "", "path to acl data file")
	validateCmd.Flags().StringVar(&validateRBAC, "rbac", "", "path to rbac data file")
}
