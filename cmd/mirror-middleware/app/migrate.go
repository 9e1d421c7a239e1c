package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/casamatriz/mirror-middleware/database"
	"github.com/casamatriz/mirror-middleware/internal/cluster"
	"github.com/casamatriz/mirror-middleware/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tool",
	Long: `Manage the mirror tables on the current primary. Use with 'up' or 'down'
subcommands.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Usage()
	},
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE:  runMigrateUp,
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert migrations",
	Long: `Revert migrations on the current primary.
WARNING: reverting drops mirror tables and their rows.`,
	RunE: runMigrateDown,
}

func init() {
	migrateCmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to all questions")
	migrateDownCmd.Flags().UintP("num-steps", "n", 0, "Number of steps to revert (0 = all)")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

// primaryConnString probes the cluster and returns the connection string of the
// discovered primary. When no node confirms, the first candidate is used.
func primaryConnString(ctx context.Context, cfg *config.Config) (string, string, error) {
	checker := cluster.NewPgxChecker(cfg.ConnectionStringFor, cfg.Cluster.GetProbeTimeout())
	prober, err := cluster.NewProber(cfg.Cluster.Candidates, checker, cluster.WithPort(cfg.Cluster.Port))
	if err != nil {
		return "", "", fmt.Errorf("failed to create prober: %w", err)
	}

	primary := prober.DiscoverPrimary(ctx)
	connString, err := cfg.ConnectionStringFor(primary)
	if err != nil {
		return "", "", fmt.Errorf("failed to build connection string: %w", err)
	}
	return primary, connString, nil
}

func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return false, fmt.Errorf("failed to get yes flag: %w", err)
	}
	if yes {
		return true, nil
	}

	// a piped or redirected stdin would block or answer by accident
	if f, ok := cmd.InOrStdin().(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return false, errors.New("stdin is not a terminal, pass --yes to confirm")
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (yes/no): ", prompt); err != nil {
		return false, err
	}
	var response string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "yes" || response == "y", nil
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	primary, connString, err := primaryConnString(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	ok, err := confirm(cmd, fmt.Sprintf("Apply migrations to %s/%s?", primary, cfg.Database.Name))
	if err != nil {
		return err
	}
	if !ok {
		slog.Info("Migration cancelled by user")
		return nil
	}

	slog.Info("Applying database migrations", "primary", primary)
	if err := database.MigrateUp(connString); err != nil {
		return err
	}
	slog.Info("Migrations applied successfully")
	return nil
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	numSteps, err := cmd.Flags().GetUint("num-steps")
	if err != nil {
		return fmt.Errorf("failed to get num-steps flag: %w", err)
	}

	primary, connString, err := primaryConnString(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Revert %d migration(s) on %s?", numSteps, primary)
	if numSteps == 0 {
		prompt = fmt.Sprintf("WARNING: this reverts ALL migrations on %s. Continue?", primary)
	}
	ok, err := confirm(cmd, prompt)
	if err != nil {
		return err
	}
	if !ok {
		slog.Info("Migration cancelled by user")
		return nil
	}

	if err := database.MigrateDown(connString, int(numSteps)); err != nil {
		return err
	}
	slog.Info("Migrations reverted", "primary", primary, "steps", numSteps)
	return nil
}
