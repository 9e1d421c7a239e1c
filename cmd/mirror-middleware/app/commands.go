// Package app holds the cobra commands of the mirror middleware binary.
package app

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/casamatriz/mirror-middleware/internal/versions"
)

// NewRootCmd builds the command tree. Each call returns a fresh root.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "mirror-middleware",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Mirror middleware for the library cluster",
		Long: `Mirror middleware routes writes to the current primary of the library Postgres
cluster and mirrors the inventory service and the hospital store into local tables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("config", "", "Path to configuration file (YAML format, optional)")
	if err := viper.BindPFlag("config", root.PersistentFlags().Lookup("config")); err != nil {
		slog.Error("Failed to bind config flag", "error", err)
	}

	root.AddCommand(serveCmd, versionCmd, migrateCmd)
	return root
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := versions.GetVersionInfo()
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		case "", "text":
			_, err = fmt.Fprintf(out, "mirror-middleware %s (commit %s, built %s, %s, %s)\n",
				info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Platform)
			return err
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "text", "Output format (text or json)")
}
