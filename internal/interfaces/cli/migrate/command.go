package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sellora-inc/sellora/internal/infrastructure/config"
	"github.com/sellora-inc/sellora/internal/infrastructure/database"
	"github.com/sellora-inc/sellora/internal/infrastructure/migration"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including applying, rolling back, and checking status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	manager, err := migration.NewManager(&cfg.Migration)
	if err != nil {
		return fmt.Errorf("failed to create migration manager: %w", err)
	}

	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("migrations applied successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	manager, err := migration.NewManager(&cfg.Migration)
	if err != nil {
		return fmt.Errorf("failed to create migration manager: %w", err)
	}

	switch strategy := manager.GetStrategy().(type) {
	case *migration.GolangMigrateStrategy:
		if err := strategy.MigrateDown(database.Get(), steps); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
	case *migration.GooseStrategy:
		if err := strategy.MigrateDown(database.Get(), steps); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
	default:
		return fmt.Errorf("strategy %q does not support rollback", manager.GetStrategy().GetName())
	}

	fmt.Printf("rolled back %d migration(s)\n", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	manager, err := migration.NewManager(&cfg.Migration)
	if err != nil {
		return fmt.Errorf("failed to create migration manager: %w", err)
	}

	strategy, ok := manager.GetStrategy().(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("strategy %q does not support status", manager.GetStrategy().GetName())
	}

	return strategy.Status(database.Get())
}
