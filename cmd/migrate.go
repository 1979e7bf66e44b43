package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/xianplay-api/internal/database"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the library database schema",
	Long: `Manage database migrations for the XianPlay API library.

The schema is derived from the library models and applied with GORM
auto-migration. The server also migrates on start, so these commands
are mostly useful for provisioning and inspection.

Available subcommands:
  up      - Create or update the library tables
  status  - Show which library tables exist
  reset   - Drop the library tables`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the library tables",
	Long: `Apply the library schema to the configured database.

Missing tables, columns and indexes are created. Existing data is kept.`,
	RunE: runMigrateUp,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  `Display the current status of the library tables in the configured database.`,
	RunE:  runMigrateStatus,
}

var migrateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the library tables",
	Long: `Drop every library table, deleting all saved dramas and watch history.

Requires --force.`,
	RunE: runMigrateReset,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	migrateCmd.AddCommand(migrateResetCmd)

	migrateCmd.PersistentFlags().String("db", "", "SQLite database path (overrides config)")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
	migrateResetCmd.Flags().Bool("force", false, "confirm dropping all library data")
}

// openDatabase resolves the database path from flags or config and opens it
func openDatabase(cmd *cobra.Command) (*database.DB, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		dbPath = cfg.Database.Path
	}
	if dbPath == "" {
		return nil, fmt.Errorf("no database path configured")
	}

	db, err := database.Initialize(dbPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		return printStatus(cmd, db)
	}

	if err := db.Migrate(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Library schema is up to date")
	return printStatus(cmd, db)
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	return printStatus(cmd, db)
}

func runMigrateReset(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if !force && !dryRun {
		return fmt.Errorf("refusing to drop library tables without --force")
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run mode - these tables would be dropped:")
		return printStatus(cmd, db)
	}

	if err := db.DropAll(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Library tables dropped")
	return nil
}

func printStatus(cmd *cobra.Command, db *database.DB) error {
	statuses, err := db.MigrationStatus()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, s := range statuses {
		state := "pending"
		if s.Exists {
			state = "applied"
		}
		fmt.Fprintf(out, "  %-30s %s\n", s.Table, state)
	}
	return nil
}
