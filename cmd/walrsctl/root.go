package main

import (
	"github.com/spf13/cobra"

	"github.com/elycruz/walrs-go/internal/clierr"
	"github.com/elycruz/walrs-go/internal/config"
)

var (
	// Global state set during PersistentPreRunE.
	cfg        *config.Config
	configPath string

	// Persistent flags.
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "walrsctl",
	Short: "ACL/RBAC authorization and input-filter tooling",
	Long: `walrsctl - ACL/RBAC authorization and input-filter tooling

walrsctl loads ACL and RBAC data files and lets you validate them, run
permission checks against them, and diagnose structural problems, without
writing a throwaway Go program against the library.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = config.LoadConfig(cfgFile)
		if err != nil {
			return clierr.ConfigError("loading configuration", err)
		}

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command group IDs.
const (
	groupData    = "data"
	groupUtility = "utility"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover walrs.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupData, Title: "Data:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	validateCmd.GroupID = groupData
	checkCmd.GroupID = groupData
	grantCmd.GroupID = groupData
	doctorCmd.GroupID = groupData
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(doctorCmd)

	versionCmd.GroupID = groupUtility
	configCmd.GroupID = groupUtility
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		clierr.ExitWithError(err)
	}
}

// resolveString returns the first non-empty string from the provided
// values, implementing flag > config > default precedence.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveBool returns true if any of the provided values is true.
func resolveBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
