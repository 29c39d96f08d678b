package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elycruz/walrs-go/acl"
	"github.com/elycruz/walrs-go/internal/clierr"
	"github.com/elycruz/walrs-go/internal/doctor"
	"github.com/elycruz/walrs-go/internal/logging"
	"github.com/elycruz/walrs-go/rbac"
)

var (
	doctorACLPath  string
	doctorRBACPath string
	doctorVerbose  bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run structural health checks",
	Long:  `Load the configured ACL and/or RBAC data files and run structural health checks against them.`,
	Example: `  # Run health checks using config file settings
  walrsctl doctor

  # Run with verbose output
  walrsctl doctor --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		aclPath := resolveString(doctorACLPath, cfg.ACL.File)
		rbacPath := resolveString(doctorRBACPath, cfg.RBAC.File)
		verboseFlag := resolveBool(doctorVerbose, cfg.Doctor.Verbose)

		var logger *zap.Logger
		if quiet {
			logger = logging.Noop()
		} else {
			built, err := logging.New(verboseFlag)
			if err != nil {
				return clierr.GeneralError("initializing logger", err)
			}
			logger = built
		}
		defer func() { _ = logger.Sync() }()

		var a *acl.ACL
		if loaded, err := loadACL(aclPath, cfg.ACL.Format); err == nil {
			a = loaded
		} else {
			logger.Sugar().Warnf("skipping acl checks: %v", err)
		}

		var r *rbac.RBAC
		if loaded, err := loadRBAC(rbacPath, cfg.RBAC.Format); err == nil {
			r = loaded
		} else {
			logger.Sugar().Warnf("skipping rbac checks: %v", err)
		}

		if a == nil && r == nil {
			return clierr.GeneralError("doctor", fmt.Errorf("neither the acl nor the rbac data file could be loaded"))
		}

		if !quiet {
			fmt.Println("walrsctl doctor - Health Check")
		}

		report := doctor.New(a, r).Run()
		report.Print(os.Stdout, verboseFlag)

		if report.HasErrors() {
			return clierr.GeneralError("health checks failed", nil)
		}

		return nil
	},
}

func init() {
	f := doctorCmd.Flags()
	f.StringVar(&doctorACLPath, "acl", "", "path to acl data file")
	f.StringVar(&doctorRBACPath, "rbac", "", "path to rbac data file")
	f.BoolVar(&doctorVerbose, "verbose", false, "show detailed output")
}
