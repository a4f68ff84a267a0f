package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"weiyue/internal/infrastructure/auth"
	"weiyue/internal/infrastructure/config"
	"weiyue/internal/infrastructure/database"
	"weiyue/internal/infrastructure/repository"
	"weiyue/internal/infrastructure/seed"
	infraSequence "weiyue/internal/infrastructure/sequence"
	sharedDB "weiyue/internal/shared/db"
	"weiyue/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		Long:  `Upsert customers and users and create missing default and recovery reasons from a YAML seed file.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "./configs/seed.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.WithComponent("seed")

	doc, err := seed.LoadFile(file)
	if err != nil {
		return err
	}

	hasher, err := auth.NewPasswordHasher(cfg.Auth.PasswordScheme, cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to build password hasher: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gdb := database.Get()
	repoLog := logger.NewLogger()
	seeder := seed.NewSeeder(
		repository.NewCustomerRepository(gdb, repoLog),
		repository.NewUserRepository(gdb, repoLog),
		repository.NewReasonRepository(gdb, repoLog),
		infraSequence.NewGormSequencer(gdb),
		hasher,
		sharedDB.NewGateway(gdb),
		repoLog,
	)

	res, err := seeder.Apply(context.Background(), doc)
	if err != nil {
		log.Errorw("seed failed", "file", file, "error", err)
		return fmt.Errorf("seed failed: %w", err)
	}

	log.Infow("seed applied",
		"file", file,
		"customers", res.Customers,
		"users", res.Users,
		"reasons", res.Reasons)
	return nil
}
